package constraint_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pixeldare/darekit/pkg/constraint"
)

func TestResolveRawLegacyForm(t *testing.T) {
	raw, err := constraint.ResolveRaw([]byte(`["2 shapes max","No text"]`))
	if err != nil {
		t.Fatalf("ResolveRaw: %v", err)
	}

	legacy, ok := raw.(constraint.LegacyStrings)
	if !ok {
		t.Fatalf("resolved to %T, want LegacyStrings", raw)
	}
	if diff := cmp.Diff(constraint.LegacyStrings{"2 shapes max", "No text"}, legacy); diff != "" {
		t.Fatalf("legacy strings mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRawStructuredForm(t *testing.T) {
	payload := []byte(`[
		{"type":"MAX_SHAPES","value":1},
		{"type":"FORBIDDEN_TOOLS","value":["text"],"description":"keep it shapes-only"}
	]`)

	raw, err := constraint.ResolveRaw(payload)
	if err != nil {
		t.Fatalf("ResolveRaw: %v", err)
	}

	structured, ok := raw.(constraint.Structured)
	if !ok {
		t.Fatalf("resolved to %T, want Structured", raw)
	}
	if len(structured) != 2 {
		t.Fatalf("len = %d, want 2", len(structured))
	}
	if n, _ := structured[0].Value.Number(); n != 1 {
		t.Fatalf("first value = %g, want 1", n)
	}
	if structured[1].Description != "keep it shapes-only" {
		t.Fatalf("description = %q", structured[1].Description)
	}
}

func TestResolveRawEmptyAndNull(t *testing.T) {
	for _, payload := range []string{"", "null", "[]", "  "} {
		raw, err := constraint.ResolveRaw([]byte(payload))
		if err != nil {
			t.Fatalf("ResolveRaw(%q): %v", payload, err)
		}
		if set := constraint.Normalize(raw); len(set) != 0 {
			t.Fatalf("ResolveRaw(%q) normalized to %d constraints", payload, len(set))
		}
	}
}

func TestResolveRawNullValueReadsAsAbsent(t *testing.T) {
	raw, err := constraint.ResolveRaw([]byte(`[{"type":"MAX_SHAPES","value":null}]`))
	if err != nil {
		t.Fatalf("ResolveRaw: %v", err)
	}

	set := constraint.Normalize(raw)
	if len(set) != 1 {
		t.Fatalf("len = %d, want 1", len(set))
	}
	if set[0].Value.Kind() != constraint.KindInvalid {
		t.Fatalf("kind = %d, want invalid", set[0].Value.Kind())
	}
	if n, ok := set.MaxShapes(); ok {
		t.Fatalf("MaxShapes = (%g, true), want absent for a null value", n)
	}
}

func TestResolveRawRejectsNonList(t *testing.T) {
	if _, err := constraint.ResolveRaw([]byte(`{"type":"MAX_SHAPES"}`)); err == nil {
		t.Fatal("ResolveRaw accepted a non-list payload")
	}
}

func TestResolveAny(t *testing.T) {
	raw, err := constraint.ResolveAny([]any{"No text", "3 colors only"})
	if err != nil {
		t.Fatalf("ResolveAny legacy: %v", err)
	}
	if _, ok := raw.(constraint.LegacyStrings); !ok {
		t.Fatalf("resolved to %T, want LegacyStrings", raw)
	}

	raw, err = constraint.ResolveAny([]any{
		map[string]any{"type": "MAX_COLORS", "value": float64(2)},
	})
	if err != nil {
		t.Fatalf("ResolveAny structured: %v", err)
	}
	structured, ok := raw.(constraint.Structured)
	if !ok {
		t.Fatalf("resolved to %T, want Structured", raw)
	}
	if n, _ := structured[0].Value.Number(); n != 2 {
		t.Fatalf("value = %g, want 2", n)
	}

	if _, err := constraint.ResolveAny([]any{"No text", map[string]any{}}); err == nil {
		t.Fatal("ResolveAny accepted a mixed list")
	}
}

func TestNormalize(t *testing.T) {
	legacy := constraint.Normalize(constraint.LegacyStrings{"No text"})
	if len(legacy) != 1 || legacy[0].Type != constraint.TypeForbiddenTools {
		t.Fatalf("legacy normalize = %+v", legacy)
	}

	structured := constraint.Structured{
		{Type: constraint.TypeMaxShapes, Value: constraint.Number(2)},
	}
	set := constraint.Normalize(structured)
	if diff := cmp.Diff(constraint.Set(structured), set); diff != "" {
		t.Fatalf("structured normalize mismatch (-want +got):\n%s", diff)
	}

	if set := constraint.Normalize(nil); set != nil {
		t.Fatalf("Normalize(nil) = %v, want nil", set)
	}
}
