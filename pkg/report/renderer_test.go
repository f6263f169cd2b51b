package report_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pixeldare/darekit/pkg/challenge"
	"github.com/pixeldare/darekit/pkg/constraint"
	"github.com/pixeldare/darekit/pkg/report"
	"github.com/pixeldare/darekit/pkg/scene"
)

func fixtureChallenge() challenge.Challenge {
	return challenge.Challenge{
		Title:       "Minimalist Logo",
		Description: "Two shapes, one accent color.",
		Constraints: constraint.LegacyStrings{"2 shapes max", "No text"},
	}
}

func TestBuild(t *testing.T) {
	snap := scene.Snapshot{
		{Type: "rect", Fill: "#FF5722"},
		{Type: "circle", Fill: "#000000"},
		{Type: "line", Stroke: "#000000"},
	}

	rep := report.Build(fixtureChallenge(), snap)

	wantSummary := []string{"2 shapes max", "No text"}
	if diff := cmp.Diff(wantSummary, rep.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	wantViolations := []string{"Only 2 shapes allowed (you have 3)"}
	if diff := cmp.Diff(wantViolations, rep.Violations); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
	if rep.Clean() {
		t.Fatal("Clean = true on a report with violations")
	}
}

func TestTextRenderer(t *testing.T) {
	rep := report.Build(fixtureChallenge(), scene.Snapshot{
		{Type: "rect"}, {Type: "circle"}, {Type: "triangle"},
	})

	out, err := report.NewTextRenderer().Render(context.Background(), rep)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"Minimalist Logo",
		"2 shapes max",
		"Only 2 shapes allowed (you have 3)",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestTextRendererCleanRun(t *testing.T) {
	rep := report.Build(fixtureChallenge(), scene.Snapshot{{Type: "rect"}})

	out, err := report.NewTextRenderer().Render(context.Background(), rep)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "No violations.") {
		t.Fatalf("clean run output missing marker:\n%s", out)
	}
}

func TestHTMLRendererEscapes(t *testing.T) {
	ch := fixtureChallenge()
	ch.Title = `Logo <script>alert(1)</script>`

	out, err := report.NewHTMLRenderer().Render(context.Background(), report.Build(ch, scene.Snapshot{}))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<script>") {
		t.Fatalf("markup leaked unescaped:\n%s", html)
	}
	if !strings.Contains(html, "dare-report") {
		t.Fatalf("output missing report markup:\n%s", html)
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := report.DefaultRegistry()

	if diff := cmp.Diff([]string{"html", "text"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if _, err := registry.Get("text"); err != nil {
		t.Fatalf("Get(text): %v", err)
	}
	if _, err := registry.Get("pdf"); err == nil {
		t.Fatal("Get(pdf) should fail")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := report.NewRegistry()
	if err := registry.Register(report.NewTextRenderer()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := registry.Register(report.NewTextRenderer()); err == nil {
		t.Fatal("duplicate register should fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("nil register should fail")
	}
}
