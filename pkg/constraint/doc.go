// Package constraint defines the typed model for challenge rules and the
// operations over it: construction with optional validation, normalization
// of historical free-text rules, defensive effective-value queries, and
// display summaries. The RawConstraints sum type resolves the legacy-versus-
// structured ambiguity exactly once at the boundary; everything downstream
// speaks only the structured Set. Evaluation never happens here; see
// pkg/violations for the scene checks.
package constraint
