package constraint

// The query layer extracts effective values from a Set without ever
// panicking: malformed values read as absent, missing constraints read as
// absent or empty, and a nil Set behaves like an empty one.

// First returns the first constraint of the given type. Later constraints of
// the same type are shadowed.
func (s Set) First(t Type) (Constraint, bool) {
	for _, c := range s {
		if c.Type == t {
			return c, true
		}
	}
	return Constraint{}, false
}

func (s Set) number(t Type) (float64, bool) {
	c, ok := s.First(t)
	if !ok {
		return 0, false
	}
	return c.Value.Number()
}

func (s Set) tags(t Type) []string {
	c, ok := s.First(t)
	if !ok {
		return []string{}
	}
	list := c.Value.TagList()
	if list == nil {
		return []string{}
	}
	return list
}

// MaxShapes returns the effective shape ceiling, if any.
func (s Set) MaxShapes() (float64, bool) { return s.number(TypeMaxShapes) }

// MinShapes returns the effective shape floor, if any.
func (s Set) MinShapes() (float64, bool) { return s.number(TypeMinShapes) }

// MaxColors returns the effective unique-color ceiling, if any.
func (s Set) MaxColors() (float64, bool) { return s.number(TypeMaxColors) }

// MinColors returns the effective unique-color floor, if any.
func (s Set) MinColors() (float64, bool) { return s.number(TypeMinColors) }

// MinFontSize returns the effective font-size floor, if any.
func (s Set) MinFontSize() (float64, bool) { return s.number(TypeMinFontSize) }

// MaxFontSize returns the effective font-size ceiling, if any.
func (s Set) MaxFontSize() (float64, bool) { return s.number(TypeMaxFontSize) }

// ForbiddenTools returns the forbidden tool tags. Category queries never
// report absence; a missing constraint yields an empty list.
func (s Set) ForbiddenTools() []string { return s.tags(TypeForbiddenTools) }

// ForbiddenShapes returns the forbidden shape tags.
func (s Set) ForbiddenShapes() []string { return s.tags(TypeForbiddenShapes) }

// ForbiddenContent returns the forbidden content tags.
func (s Set) ForbiddenContent() []string { return s.tags(TypeForbiddenContent) }

// RequiredColors returns the required color tags.
func (s Set) RequiredColors() []string { return s.tags(TypeRequiredColors) }

func (s Set) toolForbidden(tool string) bool {
	c, ok := s.First(TypeForbiddenTools)
	return ok && c.Value.ContainsTag(tool)
}

// IsTextAllowed reports whether the text tool may be used.
func (s Set) IsTextAllowed() bool { return !s.toolForbidden(ToolText) }

// IsShapesAllowed reports whether shape tools may be used.
func (s Set) IsShapesAllowed() bool { return !s.toolForbidden(ToolShapes) }

// IsImagesAllowed reports whether image placement may be used.
func (s Set) IsImagesAllowed() bool { return !s.toolForbidden(ToolImages) }

// IsShapeAllowed reports whether a specific shape category may be used.
func (s Set) IsShapeAllowed(shape string) bool {
	c, ok := s.First(TypeForbiddenShapes)
	return !ok || !c.Value.ContainsTag(shape)
}
