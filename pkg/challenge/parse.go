package challenge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pixeldare/darekit/pkg/constraint"
)

// ParseCatalog decodes a catalog document. YAML and JSON payloads are both
// accepted; the document is schema-validated before any challenge is built,
// so a malformed record is rejected at the boundary instead of surfacing as
// a half-decoded challenge later.
func ParseCatalog(raw []byte) (Catalog, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Catalog{}, errors.New("challenge: catalog document is empty")
	}

	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return Catalog{}, fmt.Errorf("challenge: decode catalog: %w", err)
	}

	normalized, err := jsonNormalize(decoded)
	if err != nil {
		return Catalog{}, fmt.Errorf("challenge: normalize catalog: %w", err)
	}
	if err := validateCatalogDocument(normalized); err != nil {
		return Catalog{}, err
	}

	doc := normalized.(map[string]any)
	items, _ := doc["challenges"].([]any)

	catalog := Catalog{Challenges: make([]Challenge, 0, len(items))}
	for i, item := range items {
		entry, _ := item.(map[string]any)
		ch, err := challengeFromMap(entry)
		if err != nil {
			return Catalog{}, fmt.Errorf("challenge: entry %d: %w", i, err)
		}
		catalog.Challenges = append(catalog.Challenges, ch)
	}
	return catalog, nil
}

func challengeFromMap(entry map[string]any) (Challenge, error) {
	ch := Challenge{}
	if title, ok := entry["title"].(string); ok {
		ch.Title = SanitizeText(title)
	}
	if desc, ok := entry["description"].(string); ok {
		ch.Description = SanitizeText(desc)
	}
	if format, ok := entry["suggestedFormat"].(string); ok {
		ch.SuggestedFormat = format
	}
	if duration, ok := entry["suggestedDuration"].(float64); ok {
		ch.SuggestedDuration = int(duration)
	}

	rules, _ := entry["constraints"].([]any)
	raw, err := constraint.ResolveAny(rules)
	if err != nil {
		return Challenge{}, err
	}
	ch.Constraints = raw
	return ch, nil
}

// jsonNormalize round-trips a yaml-decoded value through encoding/json so
// numbers and map key types match what the schema validator and the
// constraint resolver expect.
func jsonNormalize(value any) (any, error) {
	data, err := json.Marshal(normalizeKeys(value))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeKeys(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeKeys(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeKeys(item)
		}
		return out
	default:
		return value
	}
}
