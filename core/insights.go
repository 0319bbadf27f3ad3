package core

import "github.com/huangsam/schoolscore/schema"

// Strengths lists outcomes that scored 3.
func Strengths(strands []schema.Strand) []schema.OutcomeRef {
	return collectOutcomes(strands, func(o schema.Outcome) bool { return o.Score == 3 })
}

// HelpNeeded lists outcomes that scored 0 or 1.
func HelpNeeded(strands []schema.Strand) []schema.OutcomeRef {
	return collectOutcomes(strands, func(o schema.Outcome) bool { return o.Score <= 1 })
}

func collectOutcomes(strands []schema.Strand, keep func(schema.Outcome) bool) []schema.OutcomeRef {
	refs := []schema.OutcomeRef{}
	for _, st := range strands {
		for _, ss := range st.Substrands {
			for _, o := range ss.Outcomes {
				if !keep(o) {
					continue
				}
				refs = append(refs, schema.OutcomeRef{
					Strand:      st.Code,
					Substrand:   ss.Code,
					Code:        o.Code,
					Description: o.Description,
					Score:       o.Score,
				})
			}
		}
	}
	return refs
}

// CompletionRate is the rounded share of indicators with at least one counted
// answer.
func CompletionRate(strands []schema.Strand) int {
	var total, answered int
	for _, st := range strands {
		for _, ss := range st.Substrands {
			for _, o := range ss.Outcomes {
				for _, ind := range o.Indicators {
					total++
					if ind.Score != schema.ScoreNA {
						answered++
					}
				}
			}
		}
	}
	return roundPercent(answered, total)
}
