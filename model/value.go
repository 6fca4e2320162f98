package model

import (
	"encoding/json"

	"github.com/quantfall/resolution/valuetype"
)

// Value is one observed attribute value. Serialized is the JSON-escaped
// textual form the matcher template engine splices into a query clause;
// Raw is the typed Go value used for set-membership equality. Two Values
// are equal iff (Type, Raw) are equal — never by comparing Serialized,
// since a JSON string "1" and a JSON number 1 serialize to different text
// but spec.md is explicit that type carries the distinction, not text.
type Value struct {
	Type       valuetype.Kind `json:"type"`
	Serialized string         `json:"serialized"`
	Raw        any            `json:"raw"`
}

// NewValue validates raw against kind and returns the canonical Value. An
// invalid raw value (e.g. a malformed email, a private IP where a public
// one is required) is rejected here rather than deeper in the planner, so
// bad harvested data never reaches a query.
func NewValue(kind valuetype.Kind, raw any) (Value, error) {
	normalized, _, err := valuetype.Normalize(kind, raw)
	if err != nil {
		return Value{}, err
	}

	serialized, err := json.Marshal(normalized)
	if err != nil {
		return Value{}, err
	}

	return Value{Type: kind, Serialized: string(serialized), Raw: normalized}, nil
}

// Equal reports (Type, Raw) equality per spec.md §3.
func (v Value) Equal(other Value) bool {
	return v.Type == other.Type && v.Raw == other.Raw
}

// RuntimeAttribute is the job-state counterpart of AttributeConfig: a named
// attribute together with the ordered, deduplicated set of values observed
// so far in the run.
type RuntimeAttribute struct {
	Name   string         `json:"name"`
	Type   valuetype.Kind `json:"type"`
	Values []Value        `json:"values"`
}

// Add appends v if no existing value is Equal to it, and reports whether it
// was newly added. Values never shrink within a run (spec.md §3 invariant).
func (a *RuntimeAttribute) Add(v Value) bool {
	for _, existing := range a.Values {
		if existing.Equal(v) {
			return false
		}
	}
	a.Values = append(a.Values, v)
	return true
}

// NonEmptyValues returns the values whose Serialized form is non-empty,
// matching spec.md §4.B Step 1's "v ∈ attributes[attributeName].values with
// non-empty serialized" filter.
func (a *RuntimeAttribute) NonEmptyValues() []Value {
	out := make([]Value, 0, len(a.Values))
	for _, v := range a.Values {
		if v.Serialized != "" {
			out = append(out, v)
		}
	}
	return out
}
