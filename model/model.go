// Package model holds the read-only entity model (attributes, matchers,
// resolvers, indices) and the runtime value/attribute state a resolution
// job accumulates while it runs.
package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/valuetype"
)

// AttributeConfig is the model's declaration of an attribute: its type plus
// any named parameter defaults a matcher's placeholders may draw on ahead
// of the matcher's own defaults (spec.md §4.A: "attribute.params[v] if
// present, else matcher.params[v]").
type AttributeConfig struct {
	Type   valuetype.Kind    `json:"type"`
	Params map[string]string `json:"params,omitempty"`
}

// Matcher is a reusable clause template. Clause holds `{{field}}`,
// `{{value}}` and any number of named placeholders; Params holds default
// string values for named placeholders not supplied by the attribute at
// populate time. regexes indexes every distinct `{{name}}` occurrence
// in Clause to its precompiled regex, built once when the model is parsed
// so Populate (planner.Populate) never compiles a pattern per call.
type Matcher struct {
	Clause  string            `json:"clause"`
	Params  map[string]string `json:"params"`
	regexes map[string]*regexp.Regexp
}

var placeholderPattern = regexp.MustCompile(`{{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*}}`)

// compile scans Clause for every placeholder name and precompiles a regex
// that matches that exact placeholder (whitespace-tolerant), so repeated
// occurrences of the same name are all replaced by one substitution pass.
func (m *Matcher) compile() {
	m.regexes = make(map[string]*regexp.Regexp)
	for _, match := range placeholderPattern.FindAllStringSubmatch(m.Clause, -1) {
		name := match[1]
		if _, ok := m.regexes[name]; ok {
			continue
		}
		m.regexes[name] = regexp.MustCompile(`{{\s*` + regexp.QuoteMeta(name) + `\s*}}`)
	}
}

// Placeholders returns the distinct placeholder names found in Clause.
func (m *Matcher) Placeholders() []string {
	names := make([]string, 0, len(m.regexes))
	for name := range m.regexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Replace substitutes every occurrence of {{name}} in Clause with value and
// returns the result. It never rescans its own output.
func (m *Matcher) Replace(clause, name, value string) string {
	re, ok := m.regexes[name]
	if !ok {
		return clause
	}
	return re.ReplaceAllLiteralString(clause, value)
}

// Field describes one document field an attribute may be matched against.
type Field struct {
	Name       string  `json:"-"`
	Attribute  *string `json:"attribute,omitempty"`
	Matcher    *string `json:"matcher,omitempty"`
	Path       string  `json:"path"`
	PathParent string  `json:"path_parent"`
}

// Index is one searchable index in the document store: its fields plus the
// derived attributeIndexFieldsMap (attribute name -> field name -> *Field).
type Index struct {
	Name                    string `json:"-"`
	Fields                  map[string]*Field
	attributeIndexFieldsMap map[string]map[string]*Field
}

// FieldsFor returns the fields of this index that match attribute name, in
// lexicographic field-name order (spec.md §4.B requires deterministic
// iteration order over attributeIndexFieldsMap).
func (idx *Index) FieldsFor(attribute string) []*Field {
	byName := idx.attributeIndexFieldsMap[attribute]
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Field, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out
}

// Model is the read-only entity model supplied by an external ModelStore.
type Model struct {
	Name       string                     `json:"name"`
	Attributes map[string]AttributeConfig `json:"attributes"`
	Matchers   map[string]*Matcher        `json:"matchers"`
	Resolvers  map[string][]string        `json:"resolvers"`
	Indices    map[string]*Index          `json:"indices"`
}

// finalize compiles every matcher's placeholder index and builds each
// index's attributeIndexFieldsMap. It must run once after a Model's fields
// are populated, whether that happens via ParseModel or by hand in tests.
func (m *Model) finalize() error {
	for name, matcher := range m.Matchers {
		matcher.compile()
		m.Matchers[name] = matcher
	}

	for indexName, idx := range m.Indices {
		idx.Name = indexName
		idx.attributeIndexFieldsMap = make(map[string]map[string]*Field)
		for fieldName, field := range idx.Fields {
			field.Name = fieldName
			if field.PathParent == "" {
				field.PathParent = parentPath(field.Path)
			}
			if field.Attribute == nil {
				continue
			}
			if _, ok := m.Attributes[*field.Attribute]; !ok {
				return fmt.Errorf("index %q field %q references unknown attribute %q", indexName, fieldName, *field.Attribute)
			}
			if idx.attributeIndexFieldsMap[*field.Attribute] == nil {
				idx.attributeIndexFieldsMap[*field.Attribute] = make(map[string]*Field)
			}
			idx.attributeIndexFieldsMap[*field.Attribute][fieldName] = field
		}
	}

	return nil
}

func parentPath(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return path
	}
	return path[:i]
}

// Validate enforces the model-level invariants spec.md §7 calls
// ValidationError: no dots in attribute or resolver names (dots
// are the JSON-pointer path separator used when harvesting, so an
// attribute or resolver named with one would be ambiguous), every field
// matcher reference resolves, and every resolver's attributes exist.
func (m *Model) Validate() error {
	for name := range m.Attributes {
		if strings.Contains(name, ".") {
			return catcher.ValidationError(fmt.Sprintf("attribute name %q must not contain '.'", name), nil, nil)
		}
	}
	for name, attrs := range m.Resolvers {
		if strings.Contains(name, ".") {
			return catcher.ValidationError(fmt.Sprintf("resolver name %q must not contain '.'", name), nil, nil)
		}
		for _, a := range attrs {
			if _, ok := m.Attributes[a]; !ok {
				return catcher.ValidationError(fmt.Sprintf("resolver %q references unknown attribute %q", name, a), nil, nil)
			}
		}
	}
	for indexName, idx := range m.Indices {
		for fieldName, field := range idx.Fields {
			if field.Matcher != nil {
				if _, ok := m.Matchers[*field.Matcher]; !ok {
					return catcher.ValidationError(fmt.Sprintf("index %q field %q references unknown matcher %q", indexName, fieldName, *field.Matcher), nil, nil)
				}
			}
		}
	}
	return nil
}
