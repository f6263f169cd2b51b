package constraint

import (
	"regexp"
	"strconv"
	"strings"
)

// Legacy rule strings come from older challenge records as free text
// ("2 shapes max", "No text"). They are normalized on read into structured
// constraints and never written back. Matching is heuristic and first-match:
// an unrecognized rule degrades to an empty FORBIDDEN_TOOLS no-op that still
// carries the original text as its description, so the rule stays visible
// even though nothing enforces it.

var (
	legacyShapesPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:shapes|layers)`)
	legacyColorsPattern = regexp.MustCompile(`(?i)(\d+)\s*colors?`)
)

// ParseLegacy converts one free-text rule string into a structured
// constraint. The description is always the original input, verbatim.
func ParseLegacy(text string) Constraint {
	low := strings.ToLower(text)

	switch {
	case strings.Contains(low, "no text"),
		strings.Contains(low, "no type"),
		strings.Contains(low, "text forbidden"):
		return Constraint{Type: TypeForbiddenTools, Value: Tags(ToolText), Description: text}
	case strings.Contains(low, "no shapes"),
		strings.Contains(low, "shapes forbidden"):
		return Constraint{Type: TypeForbiddenTools, Value: Tags(ToolShapes), Description: text}
	case strings.Contains(low, "no images"),
		strings.Contains(low, "images forbidden"),
		strings.Contains(low, "no photos"):
		return Constraint{Type: TypeForbiddenTools, Value: Tags(ToolImages), Description: text}
	}

	if m := legacyShapesPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return Constraint{Type: TypeMaxShapes, Value: Number(float64(n)), Description: text}
		}
	}

	if m := legacyColorsPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			t := TypeMaxColors
			if strings.Contains(low, "minimum") || strings.Contains(low, "at least") {
				t = TypeMinColors
			}
			return Constraint{Type: t, Value: Number(float64(n)), Description: text}
		}
	}

	return Constraint{Type: TypeForbiddenTools, Value: Tags(), Description: text}
}

// NormalizeLegacy converts an ordered list of legacy rule strings into an
// equivalent Set, one constraint per input string, order preserved.
func NormalizeLegacy(texts []string) Set {
	if len(texts) == 0 {
		return nil
	}
	out := make(Set, 0, len(texts))
	for _, text := range texts {
		out = append(out, ParseLegacy(text))
	}
	return out
}
