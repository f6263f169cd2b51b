package constraint

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Challenge records supply their rules in one of two forms: the historical
// free-text list or the structured constraint list. RawConstraints is the
// boundary sum type for that ambiguity; ResolveRaw and ResolveAny decide the
// form exactly once so downstream code never duck-types.

// RawConstraints is either LegacyStrings or Structured.
type RawConstraints interface {
	rawConstraints()
}

// LegacyStrings is the historical free-text rule form.
type LegacyStrings []string

func (LegacyStrings) rawConstraints() {}

// Structured is the typed constraint form.
type Structured []Constraint

func (Structured) rawConstraints() {}

// ResolveRaw decides which form a JSON payload carries. Empty and null
// payloads resolve to an empty structured form.
func ResolveRaw(data []byte) (RawConstraints, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Structured(nil), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("constraint: constraints payload is not a list: %w", err)
	}
	if len(items) == 0 {
		return Structured(nil), nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(items[0]), []byte(`"`)) {
		var texts LegacyStrings
		if err := json.Unmarshal(trimmed, &texts); err != nil {
			return nil, fmt.Errorf("constraint: decode legacy constraints: %w", err)
		}
		return texts, nil
	}

	var structured Structured
	if err := json.Unmarshal(trimmed, &structured); err != nil {
		return nil, fmt.Errorf("constraint: decode structured constraints: %w", err)
	}
	return structured, nil
}

// ResolveAny resolves an already-decoded rule list, as produced by yaml.v3
// or a generic JSON decode, into the boundary sum type.
func ResolveAny(items []any) (RawConstraints, error) {
	if len(items) == 0 {
		return Structured(nil), nil
	}

	if _, ok := items[0].(string); ok {
		texts := make(LegacyStrings, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("constraint: element %d mixes legacy and structured forms", i)
			}
			texts = append(texts, s)
		}
		return texts, nil
	}

	structured := make(Structured, 0, len(items))
	for i, item := range items {
		fields, ok := toStringMap(item)
		if !ok {
			return nil, fmt.Errorf("constraint: element %d has unsupported form %T", i, item)
		}
		c := Constraint{Value: ValueFromAny(fields["value"])}
		if t, ok := fields["type"].(string); ok {
			c.Type = Type(t)
		}
		if d, ok := fields["description"].(string); ok {
			c.Description = d
		}
		structured = append(structured, c)
	}
	return structured, nil
}

func toStringMap(item any) (map[string]any, bool) {
	switch m := item.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	}
	return nil, false
}

// Normalize converts either raw form into the structured Set. A nil input
// yields a nil Set.
func Normalize(raw RawConstraints) Set {
	switch rc := raw.(type) {
	case LegacyStrings:
		return NormalizeLegacy(rc)
	case Structured:
		return Set(rc)
	}
	return nil
}
