// Package violations combines the constraint query layer with the scene
// inspector to produce the ordered list of human-readable rule violations
// for the current canvas state. Every evaluation is a fresh, complete pass:
// no memory of prior results, no short-circuiting between checks, and no
// failure mode that raises: missing inputs degrade to an empty report so a
// broken constraint never blocks the editing experience.
package violations
