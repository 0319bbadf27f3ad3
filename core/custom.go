package core

import "github.com/huangsam/schoolscore/schema"

// ScoreCustomOutcome scores an outcome of a custom graph from raw 0/1
// indicator values. Values outside {0, 1} are ignored.
func ScoreCustomOutcome(scores []int) int {
	var total, yes int
	for _, s := range scores {
		if s != 0 && s != 1 {
			continue
		}
		total++
		yes += s
	}

	if total == 0 {
		return 0
	}

	// A single indicator has no partial state.
	if total == 1 {
		if yes == 1 {
			return 3
		}
		return 0
	}

	switch {
	case yes == total:
		return 3
	case yes*10 >= total*6:
		return 2
	case yes > 0:
		return 1
	default:
		return 0
	}
}

// CustomValueResolver returns the 0/1 value of an indicator for custom graphs.
type CustomValueResolver func(code string) int

// BuildCustomGraph scores every outcome of graph using resolve.
func BuildCustomGraph(graph schema.CustomGraph, resolve CustomValueResolver) schema.CustomGraphResult {
	result := schema.CustomGraphResult{
		Name:      graph.Name,
		Title:     graph.Title,
		Dimension: graph.Dimension,
		Bars:      make([]schema.CustomGraphBar, 0, len(graph.Outcomes)),
	}
	for _, o := range graph.Outcomes {
		values := make([]int, len(o.Indicators))
		for i, code := range o.Indicators {
			values[i] = resolve(code)
		}
		result.Bars = append(result.Bars, schema.CustomGraphBar{
			Code:   o.Code,
			Score:  ScoreCustomOutcome(values),
			Values: values,
		})
	}
	return result
}

// ViewResolver resolves custom graph values from a score view.
//
// Checklist answers resolve to 1 when yes answers outnumber no answers. LT
// indicators resolve per column with pending values replacing remote ones,
// then to 1 when 1s outnumber 0s. LT data wins over checklist data for the
// same code. Unknown indicators resolve to 0.
func ViewResolver(view schema.ScoreView) CustomValueResolver {
	return func(code string) int {
		columns := mergeColumns(view.LTScores[code], view.PendingLT[code])
		if len(columns) > 0 {
			var ones, zeros int
			for _, v := range columns {
				switch NormalizeLTValue(v) {
				case schema.YesValue:
					ones++
				case schema.NoValue:
					zeros++
				}
			}
			if ones > zeros {
				return 1
			}
			return 0
		}

		var yes, no int
		for _, p := range view.Checklist[code] {
			switch p.Value {
			case schema.YesValue:
				yes++
			case schema.NoValue:
				no++
			}
		}
		if yes > no {
			return 1
		}
		return 0
	}
}

// mergeColumns overlays non-empty pending column values on remote ones.
func mergeColumns(remote, pending map[string]string) map[string]string {
	if len(remote) == 0 && len(pending) == 0 {
		return nil
	}
	merged := make(map[string]string, len(remote)+len(pending))
	for col, v := range remote {
		merged[col] = v
	}
	for col, v := range pending {
		if v != "" {
			merged[col] = v
		}
	}
	return merged
}
