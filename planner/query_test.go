package planner

import "testing"

func TestCanQueryRequiresValuesAndMatcher(t *testing.T) {
	m := testModel(t)
	idx := m.Indices["ppl"]

	withBoth := testAttributes(t, map[string]string{"name": "Alice", "phone": "555"})
	if !CanQuery(idx, []string{"name", "phone"}, withBoth) {
		t.Error("expected resolver to be queryable when both attributes have values")
	}

	onlyName := testAttributes(t, map[string]string{"name": "Alice"})
	if CanQuery(idx, []string{"name", "phone"}, onlyName) {
		t.Error("expected resolver to be unqueryable when phone has no values")
	}
}

func TestAssembleSkipsIndexWithNoApplicableResolver(t *testing.T) {
	m := testModel(t)
	idx := m.Indices["ppl"]
	in := fakeInput(t, m, map[string]string{"name": "Alice"})

	var cache ResolverTreeCache
	_, applied, err := Assemble(in, idx, nil, in.Attributes, &cache, AssembleOptions{MaxDocsPerQuery: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Error("expected no resolver to apply when phone has no values")
	}
}

func TestAssembleBuildsQueryWhenResolverApplies(t *testing.T) {
	m := testModel(t)
	idx := m.Indices["ppl"]
	in := fakeInput(t, m, map[string]string{"name": "Alice", "phone": "555"})

	var cache ResolverTreeCache
	req, applied, err := Assemble(in, idx, nil, in.Attributes, &cache, AssembleOptions{MaxDocsPerQuery: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatal("expected the resolver to apply")
	}
	if req.Query.Bool == nil {
		t.Fatal("expected a bool query")
	}
	if len(req.Query.Bool.Filter) == 0 {
		t.Error("expected a filter clause from the resolver tree")
	}
	if req.Size != 1000 {
		t.Errorf("expected size 1000, got %d", req.Size)
	}
}

func TestAssembleAddsMustNotForSeenDocIDs(t *testing.T) {
	m := testModel(t)
	idx := m.Indices["ppl"]
	in := fakeInput(t, m, map[string]string{"name": "Alice", "phone": "555"})

	var cache ResolverTreeCache
	req, applied, err := Assemble(in, idx, []string{"d1"}, in.Attributes, &cache, AssembleOptions{MaxDocsPerQuery: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatal("expected the resolver to apply")
	}
	if len(req.Query.Bool.MustNot) != 1 {
		t.Fatalf("expected exactly one must_not clause for the doc id exclusion, got %d", len(req.Query.Bool.MustNot))
	}
}
