package model

import (
	"fmt"

	"github.com/quantfall/resolution/catcher"
)

// Scope narrows which indices/resolvers participate in a run and which
// documents are eligible, via attribute-value include/exclude sets
// (spec.md §6 request body `scope`).
type Scope struct {
	Indices   []string                     `json:"indices,omitempty"`
	Resolvers []string                     `json:"resolvers,omitempty"`
	Include   map[string]*RuntimeAttribute `json:"include,omitempty"`
	Exclude   map[string]*RuntimeAttribute `json:"exclude,omitempty"`
}

// Input is the job's seed state: the model to resolve against, the seed
// attribute values, and the request-time scope (spec.md §3).
type Input struct {
	Model      *Model
	Attributes map[string]*RuntimeAttribute
	Scope      Scope
}

// Validate enforces spec.md §7's "malformed scope" ValidationError: every
// seed and scope attribute name must be declared on the model, and every
// scoped index/resolver name must exist. A name that can never match
// anything signals a caller mistake, not a legitimately empty result.
func (in *Input) Validate() error {
	for name := range in.Attributes {
		if _, ok := in.Model.Attributes[name]; !ok {
			return catcher.ValidationError(fmt.Sprintf("unknown attribute %q in seed attributes", name), nil, nil)
		}
	}
	for name := range in.Scope.Include {
		if _, ok := in.Model.Attributes[name]; !ok {
			return catcher.ValidationError(fmt.Sprintf("unknown attribute %q in scope.include", name), nil, nil)
		}
	}
	for name := range in.Scope.Exclude {
		if _, ok := in.Model.Attributes[name]; !ok {
			return catcher.ValidationError(fmt.Sprintf("unknown attribute %q in scope.exclude", name), nil, nil)
		}
	}
	for _, index := range in.Scope.Indices {
		if _, ok := in.Model.Indices[index]; !ok {
			return catcher.ValidationError(fmt.Sprintf("unknown index %q in scope.indices", index), nil, nil)
		}
	}
	for _, resolver := range in.Scope.Resolvers {
		if _, ok := in.Model.Resolvers[resolver]; !ok {
			return catcher.ValidationError(fmt.Sprintf("unknown resolver %q in scope.resolvers", resolver), nil, nil)
		}
	}
	return nil
}

// ActiveIndices returns the model indices participating in this run: all of
// them, unless scope.indices narrows the set.
func (in *Input) ActiveIndices() map[string]*Index {
	if len(in.Scope.Indices) == 0 {
		return in.Model.Indices
	}
	out := make(map[string]*Index, len(in.Scope.Indices))
	for _, name := range in.Scope.Indices {
		if idx, ok := in.Model.Indices[name]; ok {
			out[name] = idx
		}
	}
	return out
}

// ActiveResolvers returns the model resolvers participating in this run:
// all of them, unless scope.resolvers narrows the set.
func (in *Input) ActiveResolvers() map[string][]string {
	if len(in.Scope.Resolvers) == 0 {
		return in.Model.Resolvers
	}
	out := make(map[string][]string, len(in.Scope.Resolvers))
	for _, name := range in.Scope.Resolvers {
		if attrs, ok := in.Model.Resolvers[name]; ok {
			out[name] = attrs
		}
	}
	return out
}
