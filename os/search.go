package os

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// Search executes the request against a single index and returns the
// response decoded into a SearchResult. The resolution engine issues one query per index per hop, so unlike
// the wider multi-index helpers this package used to carry, Search takes
// exactly one index name.
func (q SearchRequest) Search(ctx context.Context, index string) (SearchResult, error) {
	if q.Source == nil {
		q.Source = new(Source)
	}

	j, err := json.Marshal(q)
	if err != nil {
		return SearchResult{}, err
	}

	reader := strings.NewReader(string(j))

	req := &opensearchapi.SearchReq{
		Indices: []string{index},
		Body:    reader,
	}

	resp, err := apiClient.Search(ctx, req)
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{
		Took:     int64(resp.Took),
		TimedOut: resp.Timeout,
		Shards: Shards{
			Total:      int64(resp.Shards.Total),
			Successful: int64(resp.Shards.Successful),
			Skipped:    int64(resp.Shards.Skipped),
			Failed:     int64(resp.Shards.Failed),
		},
		Hits: Hits{
			Total: Total{
				Value:    int64(resp.Hits.Total.Value),
				Relation: resp.Hits.Total.Relation,
			},
			MaxScore: resp.Hits.MaxScore,
			Hits:     make([]Hit, len(resp.Hits.Hits)),
		},
	}

	for i, hit := range resp.Hits.Hits {
		var source HitSource
		if len(hit.Source) > 0 {
			if err := json.Unmarshal(hit.Source, &source); err != nil {
				return SearchResult{}, err
			}
		}

		var fields map[string]interface{}
		if len(hit.Fields) > 0 {
			if err := json.Unmarshal(hit.Fields, &fields); err != nil {
				return SearchResult{}, err
			}
		}

		result.Hits.Hits[i] = Hit{
			Index:  hit.Index,
			ID:     hit.ID,
			Score:  hit.Score,
			Source: source,
			Fields: fields,
		}
	}

	return result, nil
}
