package core

import "github.com/huangsam/schoolscore/schema"

// ScoreOutcome combines indicator scores into a 0-3 outcome score. NA
// indicators are flagged as excluded and left out of the denominator.
func ScoreOutcome(indicators []schema.Indicator) schema.OutcomeResult {
	annotated := make([]schema.Indicator, len(indicators))
	var total, achieved int
	for i, ind := range indicators {
		ind.Excluded = ind.Score == schema.ScoreNA
		if !ind.Excluded {
			total++
			if ind.Score == schema.ScoreYes {
				achieved++
			}
		}
		annotated[i] = ind
	}

	pct := roundPercent(achieved, total)
	return schema.OutcomeResult{
		Score: outcomeLadder(pct),
		Breakdown: schema.OutcomeBreakdown{
			Total:      total,
			Achieved:   achieved,
			Percentage: pct,
		},
		Indicators: annotated,
	}
}

// outcomeLadder maps a percentage onto the 0-3 outcome scale.
// 100 and 60 are hard boundaries: 99% scores 2.
func outcomeLadder(pct int) int {
	switch {
	case pct == 100:
		return 3
	case pct >= 60:
		return 2
	case pct > 0:
		return 1
	default:
		return 0
	}
}
