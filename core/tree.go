package core

import (
	"math"
	"strings"

	"github.com/huangsam/schoolscore/schema"
)

// TreeOptions holds the knobs used when scoring a catalog.
type TreeOptions struct {
	IndicatorThreshold int
	Grades             GradeThresholds
}

// DefaultTreeOptions returns the default scoring knobs.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		IndicatorThreshold: DefaultIndicatorThreshold,
		Grades:             DefaultGradeThresholds(),
	}
}

// FillCascadingValues copies strand, substrand and outcome cells down to the
// following rows that leave them blank. The input is not modified.
func FillCascadingValues(rows []schema.CatalogRow) []schema.CatalogRow {
	filled := make([]schema.CatalogRow, len(rows))
	var last schema.CatalogRow
	for i, row := range rows {
		if row.Strand != "" {
			last.Strand, last.StrandName = row.Strand, row.StrandName
		}
		if row.Substrand != "" {
			last.Substrand, last.SubstrandName = row.Substrand, row.SubstrandName
		}
		if row.Outcome != "" {
			last.Outcome, last.OutcomeDescription = row.Outcome, row.OutcomeDescription
		}

		if row.Strand == "" {
			row.Strand, row.StrandName = last.Strand, last.StrandName
		}
		if row.Substrand == "" {
			row.Substrand, row.SubstrandName = last.Substrand, last.SubstrandName
		}
		if row.Outcome == "" {
			row.Outcome, row.OutcomeDescription = last.Outcome, last.OutcomeDescription
		}
		filled[i] = row
	}
	return filled
}

// codePrefix returns the first n dot-separated parts of code, or "" when code
// has fewer parts.
func codePrefix(code string, n int) string {
	parts := strings.Split(code, ".")
	if len(parts) < n {
		return ""
	}
	return strings.Join(parts[:n], ".")
}

// strandBuilder and friends keep groups in insertion order while they fill.
type strandBuilder struct {
	node       schema.Strand
	substrands []*substrandBuilder
	index      map[string]*substrandBuilder
}

type substrandBuilder struct {
	node     schema.Substrand
	outcomes []*outcomeBuilder
	index    map[string]*outcomeBuilder
}

type outcomeBuilder struct {
	node  schema.Outcome
	codes []string
	descs []string
}

// groupRows groups filled rows into Strand -> Substrand -> Outcome -> Indicator.
// Strand and substrand codes missing after cascading fall back to the
// outcome code prefix.
func groupRows(rows []schema.CatalogRow) []*strandBuilder {
	var strands []*strandBuilder
	index := make(map[string]*strandBuilder)
	for _, row := range rows {
		if strings.TrimSpace(row.Indicator) == "" {
			continue
		}
		strandCode := row.Strand
		if strandCode == "" {
			strandCode = codePrefix(row.Outcome, 2)
		}
		substrandCode := row.Substrand
		if substrandCode == "" {
			substrandCode = codePrefix(row.Outcome, 3)
		}

		sb, ok := index[strandCode]
		if !ok {
			sb = &strandBuilder{
				node:  schema.Strand{Code: strandCode, Name: row.StrandName},
				index: make(map[string]*substrandBuilder),
			}
			index[strandCode] = sb
			strands = append(strands, sb)
		}

		ssb, ok := sb.index[substrandCode]
		if !ok {
			ssb = &substrandBuilder{
				node:  schema.Substrand{Code: substrandCode, Name: row.SubstrandName},
				index: make(map[string]*outcomeBuilder),
			}
			sb.index[substrandCode] = ssb
			sb.substrands = append(sb.substrands, ssb)
		}

		ob, ok := ssb.index[row.Outcome]
		if !ok {
			ob = &outcomeBuilder{node: schema.Outcome{Code: row.Outcome, Description: row.OutcomeDescription}}
			ssb.index[row.Outcome] = ob
			ssb.outcomes = append(ssb.outcomes, ob)
		}
		ob.codes = append(ob.codes, strings.TrimSpace(row.Indicator))
		ob.descs = append(ob.descs, row.IndicatorDescription)
	}
	return strands
}

// BuildTree scores a catalog against a view and returns the annotated hierarchy.
func BuildTree(rows []schema.CatalogRow, view schema.ScoreView, opts TreeOptions) []schema.Strand {
	groups := groupRows(FillCascadingValues(rows))
	strands := make([]schema.Strand, 0, len(groups))
	for _, sb := range groups {
		strand := sb.node
		var strandDists []schema.Distribution
		var strandPcts []int
		for _, ssb := range sb.substrands {
			substrand := ssb.node
			var outcomePcts []int
			for _, ob := range ssb.outcomes {
				outcome := scoreOutcomeNode(ob, view, opts)
				if outcome.Breakdown.Total > 0 {
					outcomePcts = append(outcomePcts, outcome.Breakdown.Percentage)
				}
				substrand.Outcomes = append(substrand.Outcomes, outcome)
			}
			substrand.Distribution = Distribute(substrand.Outcomes)
			substrand.Percentage = average(outcomePcts)
			if len(outcomePcts) > 0 {
				strandPcts = append(strandPcts, substrand.Percentage)
			}
			strandDists = append(strandDists, substrand.Distribution)
			strand.Substrands = append(strand.Substrands, substrand)
		}
		strand.Distribution = SumDistributions(strandDists...)
		strand.Percentage = average(strandPcts)
		strands = append(strands, strand)
	}
	return strands
}

// scoreOutcomeNode scores the indicators of one outcome and the outcome itself.
func scoreOutcomeNode(ob *outcomeBuilder, view schema.ScoreView, opts TreeOptions) schema.Outcome {
	indicators := make([]schema.Indicator, len(ob.codes))
	for i, code := range ob.codes {
		result := ScoreIndicator(CollectDataPoints(code, view), opts.IndicatorThreshold)
		indicators[i] = schema.Indicator{
			Code:        code,
			Description: ob.descs[i],
			Score:       result.Score,
			Result:      result,
			Comment:     view.Comments[code],
		}
	}

	scored := ScoreOutcome(indicators)
	outcome := ob.node
	outcome.Score = scored.Score
	outcome.Breakdown = scored.Breakdown
	outcome.Indicators = scored.Indicators
	outcome.Grade = schema.GradeNR
	if scored.Breakdown.Total > 0 {
		outcome.Grade = GradeFromPercentage(float64(scored.Breakdown.Percentage), opts.Grades)
	}
	return outcome
}

// average returns the rounded mean of values, or 0 when empty.
func average(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}
