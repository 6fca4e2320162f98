// Package resolution implements the traversal engine and job facade
// (spec.md §4.E-§4.F): the breadth-first hop loop that submits queries
// built by the planner package, harvests new attribute values from result
// documents, and decides when to stop.
package resolution

import (
	"context"
	"encoding/json"
)

// SearchBackend is the sole external collaborator the traversal engine
// calls into (spec.md §6): one search per (index, query) pair. It must
// faithfully forward the query body and return a document shaped
// {hits:{hits:[{_id,_source,_score?,...}]}}.
type SearchBackend interface {
	Search(ctx context.Context, index string, query json.RawMessage) (json.RawMessage, error)
}
