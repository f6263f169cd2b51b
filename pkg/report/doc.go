// Package report renders the outcome of a violation check (challenge brief,
// rule summaries, violations) into display formats behind a named renderer
// registry. It sits strictly above enforcement: nothing here feeds back into
// the evaluator.
package report
