// Package opensearchbackend adapts the os package's OpenSearch client to
// resolution.SearchBackend, adding the transient-failure retry policy
// spec.md §7 assigns to the backend rather than the engine.
package opensearchbackend

import (
	"context"
	"encoding/json"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/os"
)

// Backend implements resolution.SearchBackend against a live OpenSearch
// cluster reached through os.Connect.
type Backend struct {
	retry *catcher.RetryConfig
}

// New returns a Backend. retry may be nil to use catcher.DefaultRetryConfig.
func New(retry *catcher.RetryConfig) *Backend {
	return &Backend{retry: retry}
}

// Search unmarshals query into an os.SearchRequest, submits it against
// index, and re-marshals the typed response back to JSON so the traversal
// engine's gjson-based harvesting sees the same {hits:{hits:[...]}}  shape
// regardless of backend. Every failed submission is retried per b.retry
// except context cancellation and deadline errors, which stop the retries at
// once; the final failure surfaces as a *catcher.SdkError.
func (b *Backend) Search(ctx context.Context, index string, query json.RawMessage) (json.RawMessage, error) {
	var req os.SearchRequest
	if err := json.Unmarshal(query, &req); err != nil {
		return nil, catcher.ValidationError("malformed search request", err, map[string]any{"index": index})
	}

	var result os.SearchResult
	err := catcher.Retry(func() error {
		r, searchErr := req.Search(ctx, index)
		if searchErr != nil {
			return searchErr
		}
		result = r
		return nil
	}, b.retry, "context canceled", "context deadline exceeded")
	if err != nil {
		return nil, catcher.IOError("opensearch search failed", err, map[string]any{"index": index})
	}

	out, err := json.Marshal(result)
	if err != nil {
		return nil, catcher.ValidationError("failed to marshal search result", err, map[string]any{"index": index})
	}
	return out, nil
}
