package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/utils"
)

// fileStore implements model.Store by reading one model document per entity
// type from a directory, named "<entityType>.json", "<entityType>.yaml" or
// "<entityType>.yml". YAML documents are converted to JSON before decoding
// since model.ParseModel only ever sees JSON.
type fileStore struct {
	dir string
}

func newFileStore(dir string) *fileStore {
	return &fileStore{dir: dir}
}

func (s *fileStore) LoadModel(_ context.Context, entityType string) (*model.Model, error) {
	jsonPath := filepath.Join(s.dir, entityType+".json")
	if _, err := os.Stat(jsonPath); err == nil {
		raw, err := utils.ReadJSON[json.RawMessage](jsonPath)
		if err != nil {
			return nil, err
		}
		return s.ParseModel(*raw)
	}

	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(s.dir, entityType+ext)
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, catcher.IOError(fmt.Sprintf("failed to read model file %q", path), err, nil)
		}
		return s.ParseModel(raw)
	}
	return nil, catcher.NotFound(fmt.Sprintf("no model found for entity type %q", entityType), nil, map[string]any{"dir": s.dir})
}

func (s *fileStore) ParseModel(doc []byte) (*model.Model, error) {
	asJSON, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, catcher.ValidationError("failed to convert model document to JSON", err, nil)
	}
	return model.ParseModel(asJSON)
}
