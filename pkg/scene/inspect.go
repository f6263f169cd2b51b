package scene

import "sort"

// ShapeCount returns how many objects fall into the canonical shape
// categories.
func (s Snapshot) ShapeCount() int {
	count := 0
	for _, o := range s {
		if o.IsShape() {
			count++
		}
	}
	return count
}

// UsedColors returns the distinct fill and stroke values across all objects,
// sorted for determinism. The transparent sentinel and empty strings are
// excluded.
func (s Snapshot) UsedColors() []string {
	seen := make(map[string]struct{})
	for _, o := range s {
		for _, color := range []string{o.Fill, o.Stroke} {
			if color == "" || color == Transparent {
				continue
			}
			seen[color] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	colors := make([]string, 0, len(seen))
	for color := range seen {
		colors = append(colors, color)
	}
	sort.Strings(colors)
	return colors
}

// HasText reports whether any text object is present.
func (s Snapshot) HasText() bool {
	for _, o := range s {
		if o.IsText() {
			return true
		}
	}
	return false
}

// HasImage reports whether any image object is present.
func (s Snapshot) HasImage() bool {
	for _, o := range s {
		if o.IsImage() {
			return true
		}
	}
	return false
}

// TextObjects returns the subset of objects categorized as text, in
// snapshot order.
func (s Snapshot) TextObjects() []Object {
	var texts []Object
	for _, o := range s {
		if o.IsText() {
			texts = append(texts, o)
		}
	}
	return texts
}
