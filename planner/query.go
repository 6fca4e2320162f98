package planner

import (
	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/os"
)

// CanQuery implements component D's canQuery predicate: every attribute of
// a resolver must be present in attributes with at least one non-empty
// value, mapped to at least one field of idx, and at least one such field
// must carry a matcher.
func CanQuery(idx *model.Index, resolverAttributes []string, attributes map[string]*model.RuntimeAttribute) bool {
	for _, a := range resolverAttributes {
		attr, ok := attributes[a]
		if !ok || len(attr.NonEmptyValues()) == 0 {
			return false
		}

		fields := idx.FieldsFor(a)
		if len(fields) == 0 {
			return false
		}

		hasMatcher := false
		for _, f := range fields {
			if f.Matcher != nil {
				hasMatcher = true
				break
			}
		}
		if !hasMatcher {
			return false
		}
	}
	return true
}

// ApplicableResolvers returns the subset of resolvers for which CanQuery
// holds against idx and attributes (component D Step 1's R).
func ApplicableResolvers(idx *model.Index, resolvers map[string][]string, attributes map[string]*model.RuntimeAttribute) map[string][]string {
	out := make(map[string][]string)
	for name, attrs := range resolvers {
		if CanQuery(idx, attrs, attributes) {
			out[name] = attrs
		}
	}
	return out
}

// AssembleOptions bounds the per-query result size and enables the
// OpenSearch profiler, both job-facade-controlled (spec.md §4.F).
type AssembleOptions struct {
	MaxDocsPerQuery int64
	Profile         bool
}

// Assemble implements component D in full: given the applicable resolvers
// for idx, it builds must_not (already-seen doc ids plus scope excludes),
// filter (scope includes plus the resolver tree clause), and the final
// SearchRequest body. The second return value reports whether any resolver
// applied; when false the caller must skip this index entirely rather than
// submit a vacuous query.
func Assemble(in *model.Input, idx *model.Index, docIDs []string, attributes map[string]*model.RuntimeAttribute, cache *ResolverTreeCache, opts AssembleOptions) (*os.SearchRequest, bool, error) {
	R := ApplicableResolvers(idx, in.ActiveResolvers(), attributes)
	if len(R) == 0 {
		return nil, false, nil
	}

	var mustNot []os.Query
	if len(docIDs) > 0 {
		values := make([]interface{}, len(docIDs))
		for i, id := range docIDs {
			values[i] = id
		}
		mustNot = append(mustNot, os.Query{IDs: map[string][]interface{}{"values": values}})
	}
	if len(in.Scope.Exclude) > 0 {
		excludeClauses, err := MakeAttributeClauses(in.Model, idx, in.Scope.Exclude, Should)
		if err != nil {
			return nil, false, err
		}
		if wrapped := wrapMulti(Should, excludeClauses); wrapped != nil {
			mustNot = append(mustNot, *wrapped)
		}
	}

	var filter []os.Query
	if len(in.Scope.Include) > 0 {
		includeClauses, err := MakeAttributeClauses(in.Model, idx, in.Scope.Include, Filter)
		if err != nil {
			return nil, false, err
		}
		if wrapped := wrapMulti(Filter, includeClauses); wrapped != nil {
			filter = append(filter, *wrapped)
		}
	}

	tree := cache.Build(in.Model, R)
	resolverClause, err := PopulateResolversFilterTree(in.Model, idx, tree, attributes)
	if err != nil {
		return nil, false, err
	}
	if resolverClause != nil {
		filter = append(filter, *resolverClause)
	}

	req := &os.SearchRequest{Size: opts.MaxDocsPerQuery, Profile: opts.Profile}
	if len(mustNot) == 0 && len(filter) == 0 {
		req.Query = &os.Query{}
	} else {
		req.Query = &os.Query{Bool: &os.Bool{MustNot: mustNot, Filter: filter}}
	}

	return req, true, nil
}
