package model

import "testing"

func testModel(t *testing.T) *Model {
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

	m, err := ParseModel(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestParseModelBuildsFieldMap(t *testing.T) {
	m := testModel(t)

	idx := m.Indices["ppl"]
	fields := idx.FieldsFor("name")
	if len(fields) != 1 || fields[0].Name != "name.keyword" {
		t.Fatalf("expected one field for name, got %+v", fields)
	}
	if fields[0].PathParent != "name" {
		t.Errorf("expected derived path_parent 'name', got %q", fields[0].PathParent)
	}
}

func TestParseModelRejectsUnknownMatcher(t *testing.T) {
	doc := []byte(`{
		"name": "person",
		"attributes": {"name": {"type": "string"}},
		"matchers": {},
		"resolvers": {},
		"indices": {
			"ppl": {"fields": {"name.keyword": {"attribute": "name", "matcher": "missing", "path": "name.keyword"}}}
		}
	}`)

	if _, err := ParseModel(doc); err == nil {
		t.Fatal("expected validation error for unknown matcher")
	}
}

func TestParseModelRejectsDottedAttributeName(t *testing.T) {
	doc := []byte(`{
		"name": "person",
		"attributes": {"a.b": {"type": "string"}},
		"matchers": {},
		"resolvers": {},
		"indices": {}
	}`)

	if _, err := ParseModel(doc); err == nil {
		t.Fatal("expected validation error for dotted attribute name")
	}
}

func TestMatcherReplace(t *testing.T) {
	m := &Matcher{Clause: `{"term":{"{{field}}":{{value}}}}`}
	m.compile()

	out := m.Replace(m.Clause, "field", "name.keyword")
	out = m.Replace(out, "value", `"Alice"`)

	expected := `{"term":{"name.keyword":"Alice"}}`
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestMatcherReplaceRepeatedPlaceholder(t *testing.T) {
	m := &Matcher{Clause: `{{field}}-{{field}}`}
	m.compile()

	out := m.Replace(m.Clause, "field", "x")
	if out != "x-x" {
		t.Errorf("expected both occurrences replaced, got %q", out)
	}
}
