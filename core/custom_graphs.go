package core

import (
	"slices"

	"github.com/huangsam/schoolscore/schema"
)

// d2CustomGraphs are the Teaching & Learning views.
var d2CustomGraphs = []schema.CustomGraph{
	{
		Name:      "teachingMonitoring",
		Title:     "Monitoring of teaching",
		Dimension: "D2",
		Outcomes: []schema.CustomGraphOutcome{
			{Code: "2.1.2.1", Indicators: []string{"82", "84"}},
			{Code: "2.1.2.2", Indicators: []string{"86", "87"}},
			{Code: "2.1.2.3", Indicators: []string{"89", "91"}},
			{Code: "2.1.2.4", Indicators: []string{"92", "93"}},
		},
	},
	{
		Name:      "assessmentProgress",
		Title:     "Carrying out assessment",
		Dimension: "D2",
		Outcomes: []schema.CustomGraphOutcome{
			{Code: "2.1.3.1", Indicators: []string{"94", "95"}},
			{Code: "2.1.3.2", Indicators: []string{"97", "98"}},
		},
	},
	{
		Name:      "institutionalArrangements",
		Title:     "Institutional arrangements for teaching",
		Dimension: "D2",
		Outcomes: []schema.CustomGraphOutcome{
			{Code: "2.1.1.1", Indicators: []string{"67", "68", "69"}},
			{Code: "2.1.1.2", Indicators: []string{"70", "71", "72"}},
			{Code: "2.1.1.3", Indicators: []string{"73"}},
			{Code: "2.1.2.1", Indicators: []string{"83"}},
			{Code: "2.1.2.2", Indicators: []string{"85"}},
			{Code: "5.4.1.1", Indicators: []string{"537"}},
		},
	},
	{
		Name:      "literacyNumeracy",
		Title:     "Literacy and numeracy",
		Dimension: "D2",
		Outcomes: []schema.CustomGraphOutcome{
			{Code: "2.1.5.1", Indicators: []string{"119", "120", "121"}},
			{Code: "2.1.5.2", Indicators: []string{"122", "123", "124"}},
			{Code: "2.1.5.3", Indicators: []string{"125", "126", "127", "128", "129"}},
		},
	},
}

// d5CustomGraphs are the Leadership views.
var d5CustomGraphs = []schema.CustomGraph{
	{
		Name:      "deputyPrincipalRole",
		Title:     "Role of the deputy principal",
		Dimension: "D5",
		Outcomes: []schema.CustomGraphOutcome{
			{Code: "5.1.1.1", Indicators: []string{"555", "556", "557", "558", "559"}},
			{Code: "5.1.1.2", Indicators: []string{"560", "561", "562"}},
		},
	},
	{
		Name:      "administratorResponsibilities",
		Title:     "Responsibilities of the administrator",
		Dimension: "D5",
		Outcomes: []schema.CustomGraphOutcome{
			{Code: "5.5.1.1", Indicators: []string{"598"}},
			{Code: "5.5.2.3", Indicators: []string{"610"}},
			{Code: "5.5.2.4", Indicators: []string{"613"}},
			{Code: "5.5.3.1", Indicators: []string{"616"}},
			{Code: "5.5.4.1", Indicators: []string{"591"}},
			{Code: "5.5.5.3", Indicators: []string{"594"}},
			{Code: "5.5.5.4", Indicators: []string{"900"}},
		},
	},
	{
		Name:      "leadingTeacherRole",
		Title:     "Role of the leading teacher",
		Dimension: "D5",
		Outcomes: []schema.CustomGraphOutcome{
			{Code: "5.4.6.1", Indicators: []string{"563"}},
			{Code: "5.4.6.2", Indicators: []string{"566"}},
			{Code: "5.4.6.3", Indicators: []string{"569"}},
			{Code: "5.4.6.4", Indicators: []string{"572"}},
			{Code: "5.4.6.5", Indicators: []string{"575"}},
			{Code: "5.4.6.6", Indicators: []string{"578"}},
		},
	},
}

// DefaultCustomGraphs returns a copy of the built-in custom graphs.
func DefaultCustomGraphs() []schema.CustomGraph {
	graphs := make([]schema.CustomGraph, 0, len(d2CustomGraphs)+len(d5CustomGraphs))
	for _, g := range slices.Concat(d2CustomGraphs, d5CustomGraphs) {
		outcomes := make([]schema.CustomGraphOutcome, len(g.Outcomes))
		for i, o := range g.Outcomes {
			outcomes[i] = schema.CustomGraphOutcome{Code: o.Code, Indicators: slices.Clone(o.Indicators)}
		}
		g.Outcomes = outcomes
		graphs = append(graphs, g)
	}
	return graphs
}

// CustomGraphsFor filters graphs down to one dimension, keeping their order.
func CustomGraphsFor(graphs []schema.CustomGraph, dimension string) []schema.CustomGraph {
	var out []schema.CustomGraph
	for _, g := range graphs {
		if g.Dimension == dimension {
			out = append(out, g)
		}
	}
	return out
}
