package constraint

import "fmt"

// Validate reports whether the constraint's value shape matches the domain
// its type requires: tag lists for the four category types, a strictly
// positive number for the six bound types. Zero and negative bounds are
// invalid. Unknown types are invalid.
func Validate(c Constraint) bool {
	switch c.Type {
	case TypeForbiddenTools, TypeForbiddenShapes, TypeForbiddenContent, TypeRequiredColors:
		return c.Value.Kind() == KindTags
	case TypeMaxShapes, TypeMinShapes, TypeMaxColors, TypeMinColors, TypeMinFontSize, TypeMaxFontSize:
		n, ok := c.Value.Number()
		return ok && n > 0
	default:
		return false
	}
}

// New constructs a constraint, defaulting the description to the type's
// canonical description when the supplied one is empty. It does not
// validate; callers that need rejection of malformed values use NewChecked.
func New(t Type, v Value, description string) Constraint {
	if description == "" {
		if def, ok := Definitions[t]; ok {
			description = def.Description
		}
	}
	return Constraint{Type: t, Value: v, Description: description}
}

// NewChecked constructs a constraint like New but rejects value shapes that
// do not match the type's domain.
func NewChecked(t Type, v Value, description string) (Constraint, error) {
	c := New(t, v, description)
	if !Validate(c) {
		return Constraint{}, fmt.Errorf("constraint: value %s does not match domain of %s", v, t)
	}
	return c, nil
}
