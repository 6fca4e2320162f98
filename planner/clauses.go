package planner

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/os"
)

// Combiner is the bool clause key used to combine a list of sibling
// clauses: spec.md §4.B only ever allows "should" or "filter".
type Combiner string

const (
	Should Combiner = "should"
	Filter Combiner = "filter"
)

func validateCombiner(c Combiner) error {
	if c != Should && c != Filter {
		return catcher.ValidationError(fmt.Sprintf("invalid combiner %q, must be 'should' or 'filter'", c), nil, nil)
	}
	return nil
}

// wrapMulti combines queries under combiner: nil for zero queries (the
// caller contributes nothing), the query itself for exactly one, and a
// {bool:{combiner:[...]}} wrapper for two or more. Building this
// structurally, rather than string-concatenating "{bool:{...}}" by hand,
// is the structured-AST approach spec.md §9's design notes recommend.
func wrapMulti(combiner Combiner, queries []os.Query) *os.Query {
	switch len(queries) {
	case 0:
		return nil
	case 1:
		return &queries[0]
	default:
		b := &os.Bool{}
		if combiner == Should {
			b.Should = queries
		} else {
			b.Filter = queries
		}
		return &os.Query{Bool: b}
	}
}

// MakeIndexFieldClauses implements component B's makeIndexFieldClauses: for
// every field of index mapped to attributeName that carries a matcher, it
// builds one clause per non-empty value and combines them under combiner.
// Fields are visited in lexicographic order (model.Index.FieldsFor already
// guarantees that) and fields with no matcher or no non-empty values
// contribute nothing.
func MakeIndexFieldClauses(m *model.Model, idx *model.Index, attributes map[string]*model.RuntimeAttribute, attributeName string, combiner Combiner) ([]os.Query, error) {
	if err := validateCombiner(combiner); err != nil {
		return nil, err
	}

	attr, ok := attributes[attributeName]
	if !ok {
		return nil, nil
	}
	attrConfig := m.Attributes[attributeName]

	var out []os.Query
	for _, field := range idx.FieldsFor(attributeName) {
		if field.Matcher == nil {
			continue
		}
		matcher := m.Matchers[*field.Matcher]

		var valueClauses []os.Query
		for _, v := range attr.NonEmptyValues() {
			clauseStr, err := Populate(matcher, field.Path, v.Serialized, attrConfig)
			if err != nil {
				return nil, err
			}
			valueClauses = append(valueClauses, os.Query{Raw: json.RawMessage(clauseStr)})
		}

		if wrapped := wrapMulti(combiner, valueClauses); wrapped != nil {
			out = append(out, *wrapped)
		}
	}

	return out, nil
}

// MakeAttributeClauses implements component B's makeAttributeClauses: it
// applies MakeIndexFieldClauses per attribute, in lexicographic attribute
// name order, wrapping each attribute's multi-field result under combiner
// and skipping attributes that contribute nothing.
func MakeAttributeClauses(m *model.Model, idx *model.Index, attributes map[string]*model.RuntimeAttribute, combiner Combiner) ([]os.Query, error) {
	if err := validateCombiner(combiner); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []os.Query
	for _, name := range names {
		fieldClauses, err := MakeIndexFieldClauses(m, idx, attributes, name, combiner)
		if err != nil {
			return nil, err
		}
		if wrapped := wrapMulti(combiner, fieldClauses); wrapped != nil {
			out = append(out, *wrapped)
		}
	}

	return out, nil
}
