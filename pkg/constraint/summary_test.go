package constraint_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pixeldare/darekit/pkg/constraint"
)

func TestSummaryTypeSpecificLabels(t *testing.T) {
	cases := []struct {
		name string
		c    constraint.Constraint
		want string
	}{
		{
			name: "forbidden tools",
			c:    constraint.Constraint{Type: constraint.TypeForbiddenTools, Value: constraint.Tags("text", "images")},
			want: "No text, images allowed",
		},
		{
			name: "forbidden shapes",
			c:    constraint.Constraint{Type: constraint.TypeForbiddenShapes, Value: constraint.Tags("circle")},
			want: "No circle shapes",
		},
		{
			name: "max shapes",
			c:    constraint.Constraint{Type: constraint.TypeMaxShapes, Value: constraint.Number(3)},
			want: "Max 3 shapes",
		},
		{
			name: "min colors",
			c:    constraint.Constraint{Type: constraint.TypeMinColors, Value: constraint.Number(2)},
			want: "Min 2 colors",
		},
		{
			name: "min font size",
			c:    constraint.Constraint{Type: constraint.TypeMinFontSize, Value: constraint.Number(18)},
			want: "Min font size 18",
		},
		{
			name: "required colors",
			c:    constraint.Constraint{Type: constraint.TypeRequiredColors, Value: constraint.Tags("#FF0000", "#0000FF")},
			want: "Use colors: #FF0000, #0000FF",
		},
		{
			name: "description wins",
			c:    constraint.Constraint{Type: constraint.TypeMaxShapes, Value: constraint.Number(3), Description: "Keep it to three"},
			want: "Keep it to three",
		},
		{
			name: "empty tags fall back to label",
			c:    constraint.Constraint{Type: constraint.TypeForbiddenTools, Value: constraint.Tags()},
			want: "Forbidden Tools",
		},
		{
			name: "malformed value falls back to label",
			c:    constraint.Constraint{Type: constraint.TypeMaxColors, Value: constraint.Tags("oops")},
			want: "Maximum Colors",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := constraint.Summary(tc.c); got != tc.want {
				t.Fatalf("Summary = %q, want %q", got, tc.want)
			}
		})
	}
}

// Legacy rule strings that fall into the no-op branch keep their text
// verbatim, so normalizing and summarizing them reproduces the input.
func TestSummaryRoundTripsUnrecognizedLegacyRules(t *testing.T) {
	inputs := []string{"Asymmetrical layout", "High contrast", "Single focal point"}

	set := constraint.NormalizeLegacy(inputs)
	got := constraint.Summaries(set)

	if diff := cmp.Diff(inputs, got); diff != "" {
		t.Fatalf("summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestSummariesEmptySet(t *testing.T) {
	if got := constraint.Summaries(nil); got != nil {
		t.Fatalf("Summaries(nil) = %v, want nil", got)
	}
}
