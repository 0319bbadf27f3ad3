package core

import (
	"strconv"
	"strings"

	"github.com/huangsam/schoolscore/schema"
)

// NormalizeLTValue maps a raw LT column value onto a checklist answer.
// Unknown values map to null.
func NormalizeLTValue(raw string) schema.IndicatorValue {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "1", "true":
		return schema.YesValue
	case "no", "0", "false":
		return schema.NoValue
	case "nr", "na", "n/a":
		return schema.NRValue
	default:
		return schema.NullValue
	}
}

// NormalizeIndicatorValue maps a raw checklist cell onto a checklist answer.
// Numeric cells of 0.5 or more count as yes.
func NormalizeIndicatorValue(raw string) schema.IndicatorValue {
	v := strings.TrimSpace(raw)
	switch v {
	case "", "-":
		return schema.NullValue
	case "NR", "nr", "NA", "na":
		return schema.NRValue
	case "1", "✓", "Yes", "yes", "YES", "Y", "y", "true":
		return schema.YesValue
	case "0", "✗", "No", "no", "NO", "N", "n", "false":
		return schema.NoValue
	}
	if num, err := strconv.ParseFloat(v, 64); err == nil {
		if num >= 0.5 {
			return schema.YesValue
		}
		return schema.NoValue
	}
	return schema.NullValue
}
