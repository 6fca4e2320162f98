package planner

import (
	"testing"

	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/valuetype"
)

// testModel returns a model with one index "ppl", attributes "name" and
// "phone" each matched via "name.keyword"/"phone.keyword", a matcher
// "exact" and a single resolver {name, phone}, mirroring spec.md §8's
// concrete scenarios.
func testModel(t *testing.T) *model.Model {
	t.Helper()
	doc := []byte(`{
		"name": "person",
		"attributes": {
			"name": {"type": "string"},
			"phone": {"type": "string"}
		},
		"matchers": {
			"exact": {"clause": "{\"term\":{\"{{field}}\":{\"value\":{{value}}}}}", "params": {}}
		},
		"resolvers": {
			"name_phone": ["name", "phone"]
		},
		"indices": {
			"ppl": {
				"fields": {
					"name.keyword": {"attribute": "name", "matcher": "exact", "path": "name.keyword"},
					"phone.keyword": {"attribute": "phone", "matcher": "exact", "path": "phone.keyword"}
				}
			}
		}
	}`)

	m, err := model.ParseModel(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func testAttributes(t *testing.T, values map[string]string) map[string]*model.RuntimeAttribute {
	t.Helper()
	out := make(map[string]*model.RuntimeAttribute, len(values))
	for name, raw := range values {
		v, err := model.NewValue(valuetype.KindString, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out[name] = &model.RuntimeAttribute{Name: name, Type: valuetype.KindString, Values: []model.Value{v}}
	}
	return out
}

func fakeInput(t *testing.T, m *model.Model, values map[string]string) *model.Input {
	t.Helper()
	return &model.Input{Model: m, Attributes: testAttributes(t, values)}
}
