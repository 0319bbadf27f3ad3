package core

import (
	"time"

	"github.com/huangsam/schoolscore/schema"
)

// BuildReport scores a catalog and summarizes the result for one school.
func BuildReport(schoolID, dimension string, rows []schema.CatalogRow, view schema.ScoreView, opts TreeOptions, now time.Time) schema.Report {
	strands := BuildTree(rows, view, opts)

	dists := make([]schema.Distribution, 0, len(strands))
	var pcts []int
	for _, st := range strands {
		dists = append(dists, st.Distribution)
		if strandGraded(st) {
			pcts = append(pcts, st.Percentage)
		}
	}

	report := schema.Report{
		SchoolID:       schoolID,
		Dimension:      dimension,
		GeneratedAt:    now,
		Percentage:     average(pcts),
		Grade:          schema.GradeNR,
		CompletionRate: CompletionRate(strands),
		Distribution:   SumDistributions(dists...),
		Strands:        strands,
		Strengths:      Strengths(strands),
		HelpNeeded:     HelpNeeded(strands),
	}
	if len(pcts) > 0 {
		report.Grade = GradeFromPercentage(float64(report.Percentage), opts.Grades)
	}
	return report
}

// strandGraded reports whether any outcome under the strand has counted indicators.
func strandGraded(st schema.Strand) bool {
	for _, ss := range st.Substrands {
		for _, o := range ss.Outcomes {
			if o.Breakdown.Total > 0 {
				return true
			}
		}
	}
	return false
}
