package core

import "github.com/huangsam/schoolscore/schema"

// GradeThresholds are the minimum percentages for each passing grade.
type GradeThresholds struct {
	FullyAchieved  float64
	MostlyAchieved float64
	Achieved       float64
}

// DefaultGradeThresholds returns the framework grade boundaries.
func DefaultGradeThresholds() GradeThresholds {
	return GradeThresholds{FullyAchieved: 90, MostlyAchieved: 70, Achieved: 50}
}

// GradeFromPercentage maps a percentage onto FA/MA/A/NS.
func GradeFromPercentage(pct float64, th GradeThresholds) schema.Grade {
	switch {
	case pct >= th.FullyAchieved:
		return schema.GradeFA
	case pct >= th.MostlyAchieved:
		return schema.GradeMA
	case pct >= th.Achieved:
		return schema.GradeA
	default:
		return schema.GradeNS
	}
}

// CalculateOutcomeScore grades a set of indicators by the share of yes answers.
// Indicators without a yes or no answer are not scored; an empty set or a set
// with no scored indicators is NR. The percentage is not rounded.
func CalculateOutcomeScore(codes []string, values map[string]schema.IndicatorValue, th GradeThresholds) schema.Grade {
	var scored, yes int
	for _, code := range codes {
		switch values[code] {
		case schema.YesValue:
			yes++
			scored++
		case schema.NoValue:
			scored++
		}
	}
	if scored == 0 {
		return schema.GradeNR
	}
	return GradeFromPercentage(float64(yes)/float64(scored)*100, th)
}
