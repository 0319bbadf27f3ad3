package catalog

import (
	"fmt"
	"os"

	"github.com/huangsam/schoolscore/core"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
	"gopkg.in/yaml.v3"
)

// LoadGraphs returns the built-in custom graphs with any definitions from
// path layered on top. A graph with a built-in name replaces it; new names
// are appended.
func LoadGraphs(path string) ([]schema.CustomGraph, error) {
	graphs := core.DefaultCustomGraphs()
	if path == "" {
		return graphs, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graphs: %w", err)
	}
	overrides, err := ParseGraphs(data, path)
	if err != nil {
		return nil, err
	}
	return MergeGraphs(graphs, overrides), nil
}

// ParseGraphs decodes and validates a custom graph document.
func ParseGraphs(data []byte, source string) ([]schema.CustomGraph, error) {
	var raw rawGraphs
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &contract.ValidationError{
			Err:    contract.ErrInvalidInput,
			Fields: []contract.FieldError{{Field: source, Tag: "yaml", Message: err.Error()}},
		}
	}

	var fields []contract.FieldError
	bad := func(i int, field, msg string) {
		fields = append(fields, contract.FieldError{
			Field:   fmt.Sprintf("%s: graphs[%d].%s", source, i, field),
			Message: msg,
		})
	}
	for i, g := range raw.Graphs {
		if g.Name == "" {
			bad(i, "name", "name is required")
		}
		if _, ok := schema.FindDimension(g.Dimension); !ok {
			bad(i, "dimension", fmt.Sprintf("unknown dimension %q", g.Dimension))
		}
		if len(g.Outcomes) == 0 {
			bad(i, "outcomes", "at least one outcome is required")
		}
		for j, o := range g.Outcomes {
			if o.Code == "" {
				bad(i, fmt.Sprintf("outcomes[%d].code", j), "code is required")
			}
			for _, code := range o.Indicators {
				if _, err := contract.SanitizeIndicatorCode(code); err != nil {
					bad(i, fmt.Sprintf("outcomes[%d].indicators", j), fmt.Sprintf("malformed indicator code %q", code))
				}
			}
		}
	}
	if len(fields) > 0 {
		return nil, &contract.ValidationError{Err: contract.ErrInvalidInput, Fields: fields}
	}
	return raw.Graphs, nil
}

// MergeGraphs replaces base graphs by name and appends the rest, keeping base order.
func MergeGraphs(base, overrides []schema.CustomGraph) []schema.CustomGraph {
	merged := make([]schema.CustomGraph, len(base))
	copy(merged, base)
	index := make(map[string]int, len(merged))
	for i, g := range merged {
		index[g.Name] = i
	}
	for _, g := range overrides {
		if i, ok := index[g.Name]; ok {
			merged[i] = g
			continue
		}
		index[g.Name] = len(merged)
		merged = append(merged, g)
	}
	return merged
}
