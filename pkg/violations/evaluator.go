package violations

import (
	"fmt"

	"github.com/pixeldare/darekit/pkg/constraint"
	"github.com/pixeldare/darekit/pkg/scene"
)

// Fallback messages used when a forbidden-tools constraint carries no
// description of its own.
const (
	msgNoText   = "No text allowed by challenge"
	msgNoShapes = "No shapes allowed by challenge"
	msgNoImages = "No images allowed by challenge"

	// The forbidden-content image check always uses this fixed message,
	// independent of the forbidden-tools image check. Both can fire for the
	// same object: one bans the image tool, the other bans image content.
	msgNoImageContent = "External images are not allowed by this challenge"
)

// Check returns every rule violation for the current snapshot, in a fixed
// report order: tool bans, content bans, shape count bounds, color count
// bounds, then per-text-object font bounds. It is stateless and never
// panics; a nil snapshot yields no violations, and constraints of a kind
// that is absent from the set are true no-ops.
func Check(snap scene.Snapshot, set constraint.Set) []string {
	if snap == nil {
		return nil
	}

	var found []string
	shapeCount := snap.ShapeCount()

	if tools, ok := set.First(constraint.TypeForbiddenTools); ok {
		if tools.Value.ContainsTag(constraint.ToolText) && snap.HasText() {
			found = append(found, messageOr(tools, msgNoText))
		}
		if tools.Value.ContainsTag(constraint.ToolShapes) && shapeCount > 0 {
			found = append(found, messageOr(tools, msgNoShapes))
		}
		if tools.Value.ContainsTag(constraint.ToolImages) && snap.HasImage() {
			found = append(found, messageOr(tools, msgNoImages))
		}
	}

	if content, ok := set.First(constraint.TypeForbiddenContent); ok {
		if content.Value.ContainsTag(constraint.ContentImages) && snap.HasImage() {
			found = append(found, msgNoImageContent)
		}
	}

	// Count bounds render with %g so a fractional bound shows as stored
	// instead of silently truncating in the message.
	if max, ok := set.MaxShapes(); ok && float64(shapeCount) > max {
		found = append(found, fmt.Sprintf("Only %g shapes allowed (you have %d)", max, shapeCount))
	}
	if min, ok := set.MinShapes(); ok && float64(shapeCount) < min {
		found = append(found, fmt.Sprintf("At least %g shapes required (you have %d)", min, shapeCount))
	}

	colorCount := len(snap.UsedColors())
	if max, ok := set.MaxColors(); ok && float64(colorCount) > max {
		found = append(found, fmt.Sprintf("Only %g colors allowed (you use %d)", max, colorCount))
	}
	if min, ok := set.MinColors(); ok && float64(colorCount) < min {
		found = append(found, fmt.Sprintf("At least %g colors required (you use %d)", min, colorCount))
	}

	texts := snap.TextObjects()
	if min, ok := set.MinFontSize(); ok {
		for _, o := range texts {
			if size := o.EffectiveFontSize(); size < min {
				found = append(found, fmt.Sprintf("Text size %g is below the minimum of %g", size, min))
			}
		}
	}
	if max, ok := set.MaxFontSize(); ok {
		for _, o := range texts {
			if size := o.EffectiveFontSize(); size > max {
				found = append(found, fmt.Sprintf("Text size %g exceeds the maximum of %g", size, max))
			}
		}
	}

	return found
}

func messageOr(c constraint.Constraint, fallback string) string {
	if c.Description != "" {
		return c.Description
	}
	return fallback
}
