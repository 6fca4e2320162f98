// Package planner implements the query planner: the matcher template
// engine, clause builder, resolver tree planner and query assembler
// (spec.md §4.A-§4.D).
package planner

import (
	"fmt"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/model"
)

// Populate implements the matcher template engine (component A). It
// replaces every placeholder in matcher.Clause: {{field}} with field,
// {{value}} with value (already JSON-escaped and quoted by the caller),
// and any other {{name}} with attribute.Params[name] if present, else
// matcher.Params[name], else it fails with ValidationError. Substitution is
// string-level via the matcher's precompiled regexes and does not rescan
// its own output.
func Populate(matcher *model.Matcher, field, value string, attribute model.AttributeConfig) (string, error) {
	clause := matcher.Clause

	for _, name := range matcher.Placeholders() {
		switch name {
		case "field":
			clause = matcher.Replace(clause, name, field)
		case "value":
			clause = matcher.Replace(clause, name, value)
		default:
			if v, ok := attribute.Params[name]; ok {
				clause = matcher.Replace(clause, name, v)
				continue
			}
			if v, ok := matcher.Params[name]; ok {
				clause = matcher.Replace(clause, name, v)
				continue
			}
			return "", catcher.ValidationError(fmt.Sprintf("no value for {{%s}}", name), nil, map[string]any{"matcher": matcher.Clause})
		}
	}

	return clause, nil
}
