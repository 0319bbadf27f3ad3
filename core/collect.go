package core

import "github.com/huangsam/schoolscore/schema"

// CollectDataPoints gathers every data point of an indicator from the view.
// Each LT column contributes its pending value when one exists, otherwise its
// remote value. Checklist data points follow the LT columns.
func CollectDataPoints(code string, view schema.ScoreView) []schema.DataPoint {
	var points []schema.DataPoint
	remote := view.LTScores[code]
	pending := view.PendingLT[code]
	for _, col := range schema.LTColumns {
		raw, ok := pending[col]
		if !ok || raw == "" {
			raw, ok = remote[col]
		}
		if !ok {
			continue
		}
		points = append(points, schema.DataPoint{Source: col, Value: NormalizeLTValue(raw)})
	}
	for _, p := range view.Checklist[code] {
		if p.Source == "" {
			p.Source = schema.ChecklistSource
		}
		points = append(points, p)
	}
	return points
}
