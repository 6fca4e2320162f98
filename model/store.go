package model

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quantfall/resolution/catcher"
)

// Store loads and parses Models. Both operations are external per spec.md
// §6; this package only defines the interface and a JSON decoder that
// concrete stores (cmd/resolutiond's file-backed store) can call into.
type Store interface {
	LoadModel(ctx context.Context, entityType string) (*Model, error)
	ParseModel(doc []byte) (*Model, error)
}

// modelDoc mirrors Model's exported shape for JSON decoding; Model itself
// keeps private derived fields (attributeIndexFieldsMap, compiled matcher
// regexes) that finalize() computes after decoding.
type modelDoc struct {
	Name       string                     `json:"name"`
	Attributes map[string]AttributeConfig `json:"attributes"`
	Matchers   map[string]*Matcher        `json:"matchers"`
	Resolvers  map[string][]string        `json:"resolvers"`
	Indices    map[string]*indexDoc       `json:"indices"`
}

type indexDoc struct {
	Fields map[string]*Field `json:"fields"`
}

// ParseModel decodes doc as JSON, builds the derived attributeIndexFieldsMap
// and matcher placeholder indexes, and validates the result. Callers that
// accept YAML model documents should convert to JSON first (e.g. via
// sigs.k8s.io/yaml.YAMLToJSON) and call this with the result.
func ParseModel(doc []byte) (*Model, error) {
	var d modelDoc
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, catcher.ValidationError("malformed model document", err, nil)
	}

	m := &Model{
		Name:       d.Name,
		Attributes: d.Attributes,
		Matchers:   d.Matchers,
		Resolvers:  d.Resolvers,
		Indices:    make(map[string]*Index, len(d.Indices)),
	}
	for name, idx := range d.Indices {
		m.Indices[name] = &Index{Fields: idx.Fields}
	}

	if err := m.finalize(); err != nil {
		return nil, catcher.ValidationError(fmt.Sprintf("model %q failed to finalize", m.Name), err, nil)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}
