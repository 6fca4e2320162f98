package resolution

import (
	"context"
	"encoding/json"
	"time"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/planner"
)

// Job is the facade described in spec.md §4.F: it owns one Input for its
// entire lifetime and exposes Run as the single entry point. A Job is built
// once and may be Run any number of times; each call starts the traversal
// over from hop zero using a fresh copy of the seed attributes, so repeated
// calls on the same instance are deterministically idempotent.
type Job struct {
	backend SearchBackend
	input   *model.Input
	cache   *planner.ResolverTreeCache
	options Options

	attributes map[string]*model.RuntimeAttribute
	docIDs     map[string]map[string]struct{}
	hits       []json.RawMessage
	queries    []json.RawMessage
	hop        int64
}

// NewJob constructs a Job bound to input for its entire lifetime. cache may
// be shared across jobs and concurrent calls; it is safe for concurrent use.
func NewJob(backend SearchBackend, input *model.Input, cache *planner.ResolverTreeCache, options Options) *Job {
	return &Job{
		backend: backend,
		input:   input,
		cache:   cache,
		options: options,
	}
}

// reset reinitializes per-run state from the job's seed Input, discarding
// anything accumulated by a previous Run call.
func (j *Job) reset() {
	j.attributes = make(map[string]*model.RuntimeAttribute, len(j.input.Attributes))
	for name, attr := range j.input.Attributes {
		values := make([]model.Value, len(attr.Values))
		copy(values, attr.Values)
		j.attributes[name] = &model.RuntimeAttribute{Name: attr.Name, Type: attr.Type, Values: values}
	}
	j.docIDs = make(map[string]map[string]struct{})
	j.hits = nil
	j.queries = nil
	j.hop = 0
}

// hitsEnvelope is the nested `hits` object of the response envelope
// (spec.md §4.F: `{"took": ms, "hits":{"total":N,"hits":[…]}, ...}`).
// Total always reflects every deduplicated document seen so far; Hits
// carries the per-document envelopes only when options.IncludeHits is set,
// and is an empty (never null) array otherwise.
type hitsEnvelope struct {
	Total int64             `json:"total"`
	Hits  []json.RawMessage `json:"hits"`
}

// envelope is the resolution response body (spec.md §4.F, §6, §8).
type envelope struct {
	Took       int64                               `json:"took"`
	Hops       int64                               `json:"hops"`
	Hits       hitsEnvelope                        `json:"hits"`
	Attributes map[string]*model.RuntimeAttribute   `json:"attributes,omitempty"`
	Queries    []json.RawMessage                    `json:"queries,omitempty"`
}

// Run executes the breadth-first traversal described in spec.md §4.E and
// assembles the response envelope described in §4.F. It returns a
// *catcher.SdkError wrapped error on any planner or backend failure.
func (j *Job) Run(ctx context.Context) (json.RawMessage, error) {
	if j.input == nil {
		return nil, catcher.ValidationError("job has no input", nil, nil)
	}
	if err := j.input.Validate(); err != nil {
		return nil, err
	}

	j.reset()

	start := time.Now()
	maxHops := j.options.MaxHops

	for {
		if err := ctx.Err(); err != nil {
			return nil, catcher.IOError("resolution canceled", err, map[string]any{"hop": j.hop})
		}

		newValues, err := j.runHop(ctx)
		if err != nil {
			return nil, err
		}

		if maxHops >= 0 && j.hop >= maxHops {
			break
		}
		if !newValues {
			break
		}
		j.hop++
	}

	hits := j.hits
	if !j.options.IncludeHits || hits == nil {
		hits = []json.RawMessage{}
	}

	env := envelope{
		Took: time.Since(start).Milliseconds(),
		Hops: j.hop,
		Hits: hitsEnvelope{Total: j.totalHits(), Hits: hits},
	}
	if j.options.IncludeAttributes {
		env.Attributes = j.attributes
	}
	if j.options.IncludeQueries {
		env.Queries = j.queries
	}

	// Pretty-printing is deferred to the HTTP layer: the job always
	// produces the same canonical envelope value regardless of
	// options.Pretty, so two runs compare equal by content alone.
	out, err := json.Marshal(env)
	if err != nil {
		return nil, catcher.ValidationError("failed to marshal response", err, nil)
	}
	return out, nil
}

func (j *Job) totalHits() int64 {
	var total int64
	for _, seen := range j.docIDs {
		total += int64(len(seen))
	}
	return total
}
