// Package scene models the editor's canvas snapshot and derives the facts
// the violation evaluator needs: shape counts, the distinct color set,
// text/image presence, and per-text font sizes. Everything here is a pure
// read-side projection; the editor owns the objects and this package never
// mutates them.
package scene
