package resolution

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/planner"
)

// queryLogRecord is the opt-in per-query log entry (spec.md §4.E Step 3).
type queryLogRecord struct {
	Hop       int64           `json:"_hop"`
	Index     string          `json:"_index"`
	Resolvers resolverSummary `json:"resolvers"`
	Search    searchLog       `json:"search"`
}

type resolverSummary struct {
	List []string              `json:"list"`
	Tree *planner.ResolverNode `json:"tree"`
}

type searchLog struct {
	Request  json.RawMessage `json:"request"`
	Response json.RawMessage `json:"response"`
}

// runHop executes one hop across every active index in lexicographic
// order and reports whether any new attribute value was harvested
// (spec.md §4.E).
func (j *Job) runHop(ctx context.Context) (bool, error) {
	indices := j.input.ActiveIndices()
	names := make([]string, 0, len(indices))
	for name := range indices {
		names = append(names, name)
	}
	sort.Strings(names)

	nextInputAttributes := make(map[string][]model.Value)

	for _, indexName := range names {
		if err := ctx.Err(); err != nil {
			return false, catcher.IOError("resolution canceled", err, map[string]any{"hop": j.hop, "index": indexName})
		}

		idx := indices[indexName]
		applicable := planner.ApplicableResolvers(idx, j.input.ActiveResolvers(), j.attributes)
		if len(applicable) == 0 {
			continue
		}

		req, applied, err := planner.Assemble(j.input, idx, j.sortedDocIDs(indexName), j.attributes, j.cache, planner.AssembleOptions{
			MaxDocsPerQuery: j.options.MaxDocsPerQuery,
			Profile:         j.options.Profile,
		})
		if err != nil {
			return false, err
		}
		if !applied {
			continue
		}

		reqBody, err := json.Marshal(req)
		if err != nil {
			return false, catcher.ValidationError("failed to marshal query", err, map[string]any{"index": indexName})
		}

		respBody, err := j.backend.Search(ctx, indexName, reqBody)
		if err != nil {
			return false, catcher.IOError("search backend failed", err, map[string]any{"index": indexName})
		}

		if j.options.IncludeQueries {
			j.queries = append(j.queries, j.buildLogRecord(indexName, applicable, reqBody, respBody))
		}

		if _, err := j.harvestHits(indexName, idx, respBody, nextInputAttributes); err != nil {
			return false, err
		}
	}

	return j.mergeAttributes(nextInputAttributes), nil
}

// harvestHits processes one index's response: dedups by _id, harvests
// attribute values per field (with path/pathParent fallback), and appends
// a hit envelope for every newly seen document.
func (j *Job) harvestHits(indexName string, idx *model.Index, respBody json.RawMessage, nextInputAttributes map[string][]model.Value) (bool, error) {
	hits := gjson.GetBytes(respBody, "hits.hits")
	if !hits.IsArray() {
		return false, nil
	}

	seen := j.docIDs[indexName]
	if seen == nil {
		seen = make(map[string]struct{})
		j.docIDs[indexName] = seen
	}

	// Fields are sorted by name once per index so that two fields mapped to
	// the same attribute are always harvested in the same order; idx.Fields
	// is a map and iterating it directly would make attributes[a].Values'
	// order (and thus later clause order) run-dependent.
	fields := sortedFields(idx)

	any := false
	for _, hit := range hits.Array() {
		id := hit.Get("_id").String()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		harvested := make(map[string]model.Value)
		for _, field := range fields {
			if field.Attribute == nil {
				continue
			}
			attrConfig, ok := j.input.Model.Attributes[*field.Attribute]
			if !ok {
				continue
			}

			leaf := hit.Get("_source." + field.Path)
			if !leaf.Exists() {
				leaf = hit.Get("_source." + field.PathParent)
				if !leaf.Exists() {
					continue
				}
			}

			value, err := model.NewValue(attrConfig.Type, gjsonValue(leaf))
			if err != nil {
				// A harvested value that fails validation for its
				// declared type cannot ever be searched on; skip it
				// rather than aborting the whole traversal.
				continue
			}

			nextInputAttributes[*field.Attribute] = append(nextInputAttributes[*field.Attribute], value)
			harvested[*field.Attribute] = value
			any = true
		}

		j.hits = append(j.hits, j.buildHitEnvelope(hit, harvested))
	}

	return any, nil
}

// buildHitEnvelope copies the raw hit, drops _score, stamps _hop, and
// optionally attaches the harvested attributes / drops _source per
// j.options.
func (j *Job) buildHitEnvelope(hit gjson.Result, harvested map[string]model.Value) json.RawMessage {
	var doc map[string]any
	_ = json.Unmarshal([]byte(hit.Raw), &doc)

	delete(doc, "_score")
	doc["_hop"] = j.hop

	if j.options.IncludeAttributes && len(harvested) > 0 {
		doc["_attributes"] = harvested
	}
	if !j.options.IncludeSource {
		delete(doc, "_source")
	}

	out, _ := json.Marshal(doc)
	return out
}

// buildLogRecord implements spec.md §4.E Step 3: response' is response
// with hits.hits stripped.
func (j *Job) buildLogRecord(indexName string, applicable map[string][]string, request, response json.RawMessage) json.RawMessage {
	stripped, _ := sjsonDeleteHitsHits(response)

	names := make([]string, 0, len(applicable))
	for name := range applicable {
		names = append(names, name)
	}
	sort.Strings(names)

	record := queryLogRecord{
		Hop:   j.hop,
		Index: indexName,
		Resolvers: resolverSummary{
			List: names,
			Tree: j.cache.Build(j.input.Model, applicable),
		},
		Search: searchLog{Request: request, Response: stripped},
	}

	out, _ := json.Marshal(record)
	return out
}

// sjsonDeleteHitsHits removes the hits.hits array from a response body
// while leaving the rest (took, total, shards, ...) intact.
func sjsonDeleteHitsHits(response json.RawMessage) (json.RawMessage, error) {
	var doc map[string]any
	if err := json.Unmarshal(response, &doc); err != nil {
		return response, nil
	}
	if hitsField, ok := doc["hits"].(map[string]any); ok {
		delete(hitsField, "hits")
	}
	return json.Marshal(doc)
}

// mergeAttributes folds nextInputAttributes into j.attributes, adding only
// values not already present by (type, raw) equality, and reports whether
// any new value was added (spec.md §4.E, end of hop).
func (j *Job) mergeAttributes(nextInputAttributes map[string][]model.Value) bool {
	newValues := false
	for name, values := range nextInputAttributes {
		attr, ok := j.attributes[name]
		if !ok {
			attr = &model.RuntimeAttribute{Name: name, Type: j.input.Model.Attributes[name].Type}
			j.attributes[name] = attr
		}
		for _, v := range values {
			if attr.Add(v) {
				newValues = true
			}
		}
	}
	return newValues
}

// gjsonValue converts a gjson.Result to its plain Go representation: strings
// stay strings, whole numbers become int64, decimals become float64, and a
// JSON object/array is left as its raw text.
func gjsonValue(value gjson.Result) any {
	switch value.Type {
	case gjson.String:
		return value.String()
	case gjson.Number:
		if strings.ContainsAny(value.String(), ".,") {
			return value.Float()
		}
		return value.Int()
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.JSON:
		return value.Raw
	default:
		return nil
	}
}

// sortedFields returns idx.Fields in lexicographic field-name order,
// mirroring model.Index.FieldsFor's deterministic ordering.
func sortedFields(idx *model.Index) []*model.Field {
	names := make([]string, 0, len(idx.Fields))
	for name := range idx.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]*model.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, idx.Fields[name])
	}
	return fields
}

func (j *Job) sortedDocIDs(indexName string) []string {
	seen := j.docIDs[indexName]
	if len(seen) == 0 {
		return nil
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
