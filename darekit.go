package darekit

import (
	"github.com/pixeldare/darekit/pkg/constraint"
	"github.com/pixeldare/darekit/pkg/scene"
	"github.com/pixeldare/darekit/pkg/violations"
)

// Constraint aliases the structured rule type for convenience imports.
type Constraint = constraint.Constraint

// Set aliases the ordered constraint collection.
type Set = constraint.Set

// RawConstraints aliases the boundary sum type for rule payloads.
type RawConstraints = constraint.RawConstraints

// LegacyStrings aliases the historical free-text rule form.
type LegacyStrings = constraint.LegacyStrings

// Structured aliases the typed rule form.
type Structured = constraint.Structured

// Snapshot aliases the editor's canvas snapshot.
type Snapshot = scene.Snapshot

// Object aliases one canvas snapshot item.
type Object = scene.Object

// NormalizeConstraints converts either raw rule form into the structured
// set the evaluator and query layer consume.
func NormalizeConstraints(raw RawConstraints) Set {
	return constraint.Normalize(raw)
}

// ResolveRawConstraints decides once, at the boundary, whether a JSON rule
// payload carries legacy strings or structured constraints.
func ResolveRawConstraints(data []byte) (RawConstraints, error) {
	return constraint.ResolveRaw(data)
}

// CheckViolations returns the ordered violation messages for the current
// snapshot. The editor calls this after every scene mutation and whenever
// the active constraint set changes.
func CheckViolations(snap Snapshot, set Set) []string {
	return violations.Check(snap, set)
}

// ConstraintSummary renders the set into short display labels.
func ConstraintSummary(set Set) []string {
	return constraint.Summaries(set)
}

// IsTextAllowed gates the text tool ahead of reactive violation detection.
func IsTextAllowed(set Set) bool { return set.IsTextAllowed() }

// IsShapesAllowed gates the shape tools.
func IsShapesAllowed(set Set) bool { return set.IsShapesAllowed() }

// IsImagesAllowed gates image placement.
func IsImagesAllowed(set Set) bool { return set.IsImagesAllowed() }

// IsShapeAllowed gates one specific shape category.
func IsShapeAllowed(set Set, shape string) bool { return set.IsShapeAllowed(shape) }
