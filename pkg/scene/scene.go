package scene

import "strings"

// DefaultFontSize applies when a text object carries no explicit size.
const DefaultFontSize = 16

// Transparent is the fill/stroke sentinel that never counts as a used color.
const Transparent = "transparent"

// ShapeTypes is the canonical, closed list of shape categories. Both the
// violation evaluator and editor tool gating consult this single list so the
// two can never disagree about what counts as a shape.
var ShapeTypes = []string{"rect", "circle", "ellipse", "triangle", "polygon", "line"}

// Object is one item in the editor's canvas snapshot. The struct mirrors the
// serialized editor object graph: Type is the category tag, Fill and Stroke
// are optional color strings, FontSize applies to text objects only.
type Object struct {
	Type     string  `json:"type"`
	Fill     string  `json:"fill,omitempty"`
	Stroke   string  `json:"stroke,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// Snapshot is a read-only view of the canvas contents. The editor owns and
// mutates the objects; this package only derives facts from them.
type Snapshot []Object

// IsShape reports whether the object's type is one of the canonical shape
// categories.
func (o Object) IsShape() bool {
	for _, t := range ShapeTypes {
		if o.Type == t {
			return true
		}
	}
	return false
}

// IsText reports whether the object is a text variant. Editor object graphs
// carry several text types ("text", "textbox", "i-text"), so this matches on
// substring like the editor does.
func (o Object) IsText() bool {
	return strings.Contains(o.Type, "text")
}

// IsImage reports whether the object is an image variant.
func (o Object) IsImage() bool {
	return strings.Contains(o.Type, "image")
}

// EffectiveFontSize returns the object's font size, defaulting when the
// snapshot carries none.
func (o Object) EffectiveFontSize() float64 {
	if o.FontSize > 0 {
		return o.FontSize
	}
	return DefaultFontSize
}
