package planner

import (
	"testing"

	"github.com/quantfall/resolution/model"
)

func TestBuildResolverTreeSharesPrefix(t *testing.T) {
	// spec.md §8 scenario 6: three resolvers {a,b}, {a,c}, {b,c}. Every
	// attribute has count 2 (a tie), so each resolver's path sorts by name
	// ascending: {a,b}, {a,c}, {b,c}. The tree must share the "a" prefix
	// between the first two.
	applicable := map[string][]string{
		"r1": {"a", "b"},
		"r2": {"a", "c"},
		"r3": {"b", "c"},
	}

	tree := BuildResolverTree(applicable)

	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 top-level children (a, b), got %d", len(tree.Children))
	}

	aNode, ok := tree.Children["a"]
	if !ok {
		t.Fatal("expected a top-level 'a' child")
	}
	if len(aNode.Children) != 2 {
		t.Fatalf("expected 'a' to have two children (b, c) from the two resolvers sharing it, got %d", len(aNode.Children))
	}
	if _, ok := aNode.Children["b"]; !ok {
		t.Error("expected a->b path from resolver r1")
	}
	if _, ok := aNode.Children["c"]; !ok {
		t.Error("expected a->c path from resolver r2")
	}

	bNode, ok := tree.Children["b"]
	if !ok {
		t.Fatal("expected a top-level 'b' child from resolver r3")
	}
	if _, ok := bNode.Children["c"]; !ok {
		t.Error("expected b->c path from resolver r3")
	}
}

func TestResolverTreeCacheReusesBuild(t *testing.T) {
	var cache ResolverTreeCache
	m := testModel(t)
	applicable := map[string][]string{"name_phone": {"name", "phone"}}

	first := cache.Build(m, applicable)
	second := cache.Build(m, applicable)

	if first != second {
		t.Error("expected cache to return the same tree pointer on a repeat key")
	}
}

func TestPopulateResolversFilterTreeSkipsEmptyAttributes(t *testing.T) {
	m := testModel(t)
	idx := m.Indices["ppl"]
	tree := BuildResolverTree(map[string][]string{"name_phone": {"name", "phone"}})

	// No attribute values at all: every child contributes nothing, so the
	// result must be nil (spec.md's "{}").
	clause, err := PopulateResolversFilterTree(m, idx, tree, map[string]*model.RuntimeAttribute{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause != nil {
		t.Error("expected nil clause when no attributes have values")
	}
}
