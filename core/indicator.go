// Package core has the scoring and aggregation logic for the framework hierarchy.
package core

import (
	"fmt"
	"math"

	"github.com/huangsam/schoolscore/schema"
)

// DefaultIndicatorThreshold is the percentage of yes answers an indicator
// needs to score 1.
const DefaultIndicatorThreshold = 50

// Breakdown texts for indicators without counted data.
const (
	noDataBreakdown      = "No data"
	noValidDataBreakdown = "No valid data points"
)

// ScoreIndicator normalizes the data points of one indicator into a binary
// score. Only yes and no answers are counted; nr and null answers stay in the
// returned data points but never count. Sources lists each counting source once.
func ScoreIndicator(points []schema.DataPoint, threshold int) schema.IndicatorResult {
	result := schema.IndicatorResult{
		Score:      schema.ScoreNA,
		Sources:    []string{},
		DataPoints: append([]schema.DataPoint{}, points...),
	}
	if len(points) == 0 {
		result.Breakdown = noDataBreakdown
		return result
	}

	seen := make(map[string]struct{})
	for _, p := range points {
		if p.Value != schema.YesValue && p.Value != schema.NoValue {
			continue
		}
		result.Total++
		if p.Value == schema.YesValue {
			result.Achieved++
		}
		if _, ok := seen[p.Source]; !ok {
			seen[p.Source] = struct{}{}
			result.Sources = append(result.Sources, p.Source)
		}
	}

	if result.Total == 0 {
		result.Breakdown = noValidDataBreakdown
		return result
	}

	pct := roundPercent(result.Achieved, result.Total)
	result.Percentage = &pct
	result.Breakdown = fmt.Sprintf("%d/%d = %d%%", result.Achieved, result.Total, pct)
	if pct >= threshold {
		result.Score = schema.ScoreYes
	} else {
		result.Score = schema.ScoreNo
	}
	return result
}

// roundPercent returns part/total as a percentage rounded half up.
func roundPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
