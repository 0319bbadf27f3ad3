// Package catalog loads the indicator framework and custom graph definitions from YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleCatalog []byte

type rawCatalog struct {
	Indicators []schema.CatalogRow `yaml:"indicators"`
}

type rawGraphs struct {
	Graphs []schema.CustomGraph `yaml:"graphs"`
}

// Default returns the built-in sample framework.
func Default() []schema.CatalogRow {
	rows, err := Parse(sampleCatalog, "sample.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return rows
}

// Load reads a catalog file, or the built-in sample when path is empty.
func Load(path string) ([]schema.CatalogRow, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a catalog document. Blank dimension cells
// inherit from the previous row like the other hierarchy columns.
func Parse(data []byte, source string) ([]schema.CatalogRow, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &contract.ValidationError{
			Err:    contract.ErrInvalidInput,
			Fields: []contract.FieldError{{Field: source, Tag: "yaml", Message: err.Error()}},
		}
	}

	var fields []contract.FieldError
	rows := make([]schema.CatalogRow, 0, len(raw.Indicators))
	var dimension string
	for i, row := range raw.Indicators {
		if row.Dimension != "" {
			dimension = row.Dimension
		}
		row.Dimension = dimension

		code, err := contract.SanitizeIndicatorCode(row.Indicator)
		if err != nil {
			fields = append(fields, contract.FieldError{
				Field:   fmt.Sprintf("%s: indicators[%d].indicator", source, i),
				Message: fmt.Sprintf("malformed indicator code %q", row.Indicator),
			})
			continue
		}
		row.Indicator = code
		if row.Dimension != "" {
			if _, ok := schema.FindDimension(row.Dimension); !ok {
				fields = append(fields, contract.FieldError{
					Field:   fmt.Sprintf("%s: indicators[%d].dimension", source, i),
					Message: fmt.Sprintf("unknown dimension %q", row.Dimension),
				})
				continue
			}
		}
		rows = append(rows, row)
	}
	if len(fields) > 0 {
		return nil, &contract.ValidationError{Err: contract.ErrInvalidInput, Fields: fields}
	}
	return rows, nil
}

// ForDimension keeps the rows of one dimension. An empty dimension keeps everything.
func ForDimension(rows []schema.CatalogRow, dimension string) []schema.CatalogRow {
	if dimension == "" {
		return rows
	}
	var out []schema.CatalogRow
	for _, row := range rows {
		if row.Dimension == dimension {
			out = append(out, row)
		}
	}
	return out
}
