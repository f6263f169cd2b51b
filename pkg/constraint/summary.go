package constraint

import (
	"fmt"
	"strings"
)

// Summaries renders a constraint list into short display labels, one per
// constraint, in set order. Purely presentational: the violation evaluator
// falls back to its own generic messages and never consults this output.
func Summaries(s Set) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, c := range s {
		out = append(out, Summary(c))
	}
	return out
}

// Summary renders one constraint: its description when present, otherwise a
// type-specific label.
func Summary(c Constraint) string {
	if c.Description != "" {
		return c.Description
	}

	switch c.Type {
	case TypeForbiddenTools:
		if label := joinTags(c.Value); label != "" {
			return fmt.Sprintf("No %s allowed", label)
		}
	case TypeForbiddenShapes:
		if label := joinTags(c.Value); label != "" {
			return fmt.Sprintf("No %s shapes", label)
		}
	case TypeForbiddenContent:
		if label := joinTags(c.Value); label != "" {
			return fmt.Sprintf("No %s content", label)
		}
	case TypeRequiredColors:
		if label := joinTags(c.Value); label != "" {
			return fmt.Sprintf("Use colors: %s", label)
		}
	case TypeMaxShapes:
		if n, ok := c.Value.Number(); ok {
			return fmt.Sprintf("Max %d shapes", int(n))
		}
	case TypeMinShapes:
		if n, ok := c.Value.Number(); ok {
			return fmt.Sprintf("Min %d shapes", int(n))
		}
	case TypeMaxColors:
		if n, ok := c.Value.Number(); ok {
			return fmt.Sprintf("Max %d colors", int(n))
		}
	case TypeMinColors:
		if n, ok := c.Value.Number(); ok {
			return fmt.Sprintf("Min %d colors", int(n))
		}
	case TypeMinFontSize:
		if n, ok := c.Value.Number(); ok {
			return fmt.Sprintf("Min font size %g", n)
		}
	case TypeMaxFontSize:
		if n, ok := c.Value.Number(); ok {
			return fmt.Sprintf("Max font size %g", n)
		}
	}

	if def, ok := Definitions[c.Type]; ok {
		return def.Label
	}
	return string(c.Type)
}

func joinTags(v Value) string {
	return strings.Join(v.TagList(), ", ")
}
