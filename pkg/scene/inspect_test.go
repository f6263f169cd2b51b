package scene_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pixeldare/darekit/pkg/scene"
)

func TestShapeCount(t *testing.T) {
	snap := scene.Snapshot{
		{Type: "rect"},
		{Type: "circle"},
		{Type: "textbox"},
		{Type: "image"},
		{Type: "line"},
	}

	if got := snap.ShapeCount(); got != 3 {
		t.Fatalf("ShapeCount = %d, want 3", got)
	}
	if got := scene.Snapshot(nil).ShapeCount(); got != 0 {
		t.Fatalf("nil ShapeCount = %d, want 0", got)
	}
}

func TestUsedColorsExcludesTransparent(t *testing.T) {
	snap := scene.Snapshot{
		{Type: "rect", Fill: "transparent", Stroke: "#000000"},
		{Type: "circle", Fill: "transparent"},
		{Type: "triangle", Fill: "#FF0000", Stroke: "#000000"},
		{Type: "textbox"},
	}

	want := []string{"#000000", "#FF0000"}
	if diff := cmp.Diff(want, snap.UsedColors()); diff != "" {
		t.Fatalf("colors mismatch (-want +got):\n%s", diff)
	}
}

func TestUsedColorsEmpty(t *testing.T) {
	snap := scene.Snapshot{{Type: "rect", Fill: "transparent"}}
	if got := snap.UsedColors(); got != nil {
		t.Fatalf("UsedColors = %v, want nil", got)
	}
}

func TestPresencePredicates(t *testing.T) {
	snap := scene.Snapshot{
		{Type: "rect"},
		{Type: "i-text"},
	}

	if !snap.HasText() {
		t.Fatal("HasText = false, want true")
	}
	if snap.HasImage() {
		t.Fatal("HasImage = true, want false")
	}

	withImage := append(snap, scene.Object{Type: "image"})
	if !withImage.HasImage() {
		t.Fatal("HasImage = false, want true")
	}
}

func TestTextObjectsAndFontDefault(t *testing.T) {
	snap := scene.Snapshot{
		{Type: "textbox", FontSize: 36},
		{Type: "rect"},
		{Type: "text"},
	}

	texts := snap.TextObjects()
	if len(texts) != 2 {
		t.Fatalf("len(TextObjects) = %d, want 2", len(texts))
	}
	if got := texts[0].EffectiveFontSize(); got != 36 {
		t.Fatalf("EffectiveFontSize = %g, want 36", got)
	}
	if got := texts[1].EffectiveFontSize(); got != scene.DefaultFontSize {
		t.Fatalf("EffectiveFontSize = %g, want default %d", got, scene.DefaultFontSize)
	}
}

func TestIsShapeMatchesCanonicalListOnly(t *testing.T) {
	for _, typ := range scene.ShapeTypes {
		if !(scene.Object{Type: typ}).IsShape() {
			t.Fatalf("%q should be a shape", typ)
		}
	}
	for _, typ := range []string{"textbox", "image", "group", ""} {
		if (scene.Object{Type: typ}).IsShape() {
			t.Fatalf("%q should not be a shape", typ)
		}
	}
}
