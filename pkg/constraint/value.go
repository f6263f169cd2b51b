package constraint

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the runtime shape carried by a Value.
type ValueKind int

const (
	// KindInvalid marks a value whose payload matched no supported shape.
	// Invalid values flow through untouched; queries treat them as absent.
	KindInvalid ValueKind = iota
	// KindTags marks a list of category tags.
	KindTags
	// KindNumber marks a single numeric bound.
	KindNumber
)

// Value is the polymorphic constraint payload. Its shape is resolved once,
// at construction or at the JSON boundary, so downstream code can branch on
// Kind instead of re-inspecting raw data.
type Value struct {
	kind ValueKind
	tags []string
	num  float64
}

// Tags constructs a category-tag value.
func Tags(tags ...string) Value {
	copied := append([]string(nil), tags...)
	return Value{kind: KindTags, tags: copied}
}

// Number constructs a numeric bound value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Kind reports the runtime shape of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// TagList returns a copy of the tag payload, or nil for non-tag values.
// The copy is never nil for tag values, even when the tag list is empty.
func (v Value) TagList() []string {
	if v.kind != KindTags {
		return nil
	}
	out := make([]string, len(v.tags))
	copy(out, v.tags)
	return out
}

// Number returns the numeric payload and whether the value carries one.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// ContainsTag reports whether the tag payload includes tag. Non-tag values
// contain nothing.
func (v Value) ContainsTag(tag string) bool {
	if v.kind != KindTags {
		return false
	}
	for _, t := range v.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MarshalJSON renders tags as a string array and bounds as a number.
// Invalid values serialise as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindTags:
		if v.tags == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.tags)
	case KindNumber:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number or a string array. Anything else decodes to
// the invalid kind rather than failing, so a malformed constraint degrades
// to "not enforced" instead of aborting the whole payload. A JSON null must
// be caught before the number branch: unmarshalling null into a float64 is
// a no-op that reports no error, which would coerce null to a present 0.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*v = Value{}
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = Number(num)
		return nil
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err == nil {
		*v = Tags(tags...)
		return nil
	}
	*v = Value{}
	return nil
}

// ValueFromAny resolves an already-decoded payload (as produced by
// encoding/json or yaml.v3) into a Value. Unsupported shapes resolve to the
// invalid kind.
func ValueFromAny(raw any) Value {
	switch val := raw.(type) {
	case float64:
		return Number(val)
	case int:
		return Number(float64(val))
	case int64:
		return Number(float64(val))
	case []any:
		tags := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return Value{}
			}
			tags = append(tags, s)
		}
		return Tags(tags...)
	case []string:
		return Tags(val...)
	}
	return Value{}
}

// Equal reports whether two values carry the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindTags:
		if len(v.tags) != len(other.tags) {
			return false
		}
		for i := range v.tags {
			if v.tags[i] != other.tags[i] {
				return false
			}
		}
	}
	return true
}

// String implements fmt.Stringer for debugging output.
func (v Value) String() string {
	switch v.kind {
	case KindTags:
		return fmt.Sprintf("%v", v.tags)
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	default:
		return "<invalid>"
	}
}
