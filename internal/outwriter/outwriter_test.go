package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textConfig() *contract.Config {
	return &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120}
}

func sampleReport() schema.Report {
	pct := 100
	return schema.Report{
		SchoolID:       "school-1",
		Dimension:      "D2",
		GeneratedAt:    time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
		Percentage:     75,
		Grade:          schema.GradeMA,
		CompletionRate: 50,
		Distribution:   schema.Distribution{Score3: 1, Score1: 1, Total: 2},
		Strands: []schema.Strand{{
			Code: "2.1",
			Substrands: []schema.Substrand{{
				Code: "2.1.2",
				Outcomes: []schema.Outcome{
					{
						Code:        "2.1.2.1",
						Description: "Lessons are observed regularly",
						Score:       3,
						Grade:       schema.GradeFA,
						Breakdown:   schema.OutcomeBreakdown{Total: 1, Achieved: 1, Percentage: 100},
						Indicators: []schema.Indicator{{
							Code:    "82",
							Score:   schema.ScoreYes,
							Comment: "seen, twice",
							Result:  schema.IndicatorResult{Breakdown: "1/1 = 100%", Sources: []string{"Checklist"}, Percentage: &pct},
						}},
					},
					{
						Code:      "2.1.2.2",
						Score:     1,
						Grade:     schema.GradeA,
						Breakdown: schema.OutcomeBreakdown{Total: 2, Achieved: 1, Percentage: 50},
						Indicators: []schema.Indicator{
							{Code: "85", Score: schema.ScoreNo, Result: schema.IndicatorResult{Breakdown: "0/1 = 0%"}},
							{Code: "87", Score: schema.ScoreNA, Excluded: true, Result: schema.IndicatorResult{Breakdown: "No data"}},
						},
					},
				},
			}},
		}},
		Strengths:  []schema.OutcomeRef{{Code: "2.1.2.1", Score: 3}},
		HelpNeeded: []schema.OutcomeRef{{Code: "2.1.2.2", Score: 1}},
	}
}

func TestWriteReportTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(), textConfig()))

	output := buf.String()
	assert.Contains(t, output, "2.1.2.1")
	assert.Contains(t, output, "Lessons are observed regularly")
	assert.Contains(t, output, "●●●")
	assert.Contains(t, output, "Fully Achieved")
	assert.Contains(t, output, "1/2")
	assert.Contains(t, output, "School school-1, D2: 75% Mostly Achieved, 50% complete")
	assert.Contains(t, output, "Outcomes scored 3/2/1/0: 1/0/1/0 of 2")
	assert.Contains(t, output, "Strengths: 2.1.2.1")
	assert.Contains(t, output, "Help needed: 2.1.2.2")
}

func TestWriteReportCSV(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.CSVOut

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(), cfg))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, reportCSVHeader, records[0])
	assert.Equal(t, []string{"2.1", "2.1.2", "2.1.2.1", "3", "FA", "82", "1", "1/1 = 100%", "Checklist", "seen, twice"}, records[1])
	assert.Equal(t, "NA", records[3][6])
}

func TestWriteReportJSON(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.JSONOut

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(), cfg))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "school-1", result["schoolId"])
	assert.Equal(t, "MA", result["grade"])
}

func TestOutWriterReportParquet(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	cfg := textConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = base

	require.NoError(t, NewOutWriter().WriteReport(sampleReport(), cfg))
	for _, suffix := range []string{"_outcomes.parquet", "_indicators.parquet"} {
		info, err := os.Stat(base + suffix)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestOutWriterToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphs.json")
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = path

	results := []schema.CustomGraphResult{{Name: "g", Title: "G", Dimension: "D2", Bars: []schema.CustomGraphBar{{Code: "2.1", Score: 2, Values: []int{1, 1, 0}}}}}
	require.NoError(t, NewOutWriter().WriteCustomGraphs(results, cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []schema.CustomGraphResult
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, results, decoded)
}

func TestWriteCustomGraphs(t *testing.T) {
	results := []schema.CustomGraphResult{{
		Name: "teachingMonitoring", Title: "Monitoring of teaching", Dimension: "D2",
		Bars: []schema.CustomGraphBar{{Code: "2.1.2.1", Score: 3, Values: []int{1, 1}}, {Code: "2.1.2.2", Score: 0, Values: []int{0, 0}}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCustomGraphs(&buf, results, textConfig()))
	assert.Contains(t, buf.String(), "Monitoring of teaching (teachingMonitoring, D2)")
	assert.Contains(t, buf.String(), "○○○")

	cfg := textConfig()
	cfg.Output = schema.CSVOut
	buf.Reset()
	require.NoError(t, WriteCustomGraphs(&buf, results, cfg))
	assert.Equal(t, "graph,dimension,outcome,score,values\nteachingMonitoring,D2,2.1.2.1,3,1|1\nteachingMonitoring,D2,2.1.2.2,0,0|0\n", buf.String())
}

func TestWritePending(t *testing.T) {
	synced := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	view := PendingView{
		Status: schema.SyncStatus{PendingCount: 3, LastSyncTime: &synced, Error: contract.ErrSyncFailed.Error()},
		Scores: []schema.PendingEntry{{IndicatorCode: "85", Column: "LT1", Value: "0", Source: "LT", Timestamp: 1_700_000_000_000}},
		Comments: schema.PendingComments{
			"86": {Comment: "", Timestamp: 1_700_000_000_000},
			"82": {Comment: "observed", Timestamp: 1_700_000_000_000},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePending(&buf, view, textConfig()))
	output := buf.String()
	assert.Contains(t, output, "LT1")
	assert.Contains(t, output, "(delete)")
	assert.Contains(t, output, "Pending changes: 3")
	assert.Contains(t, output, "Last error: failed to sync, check your connection")
	assert.Less(t, strings.Index(output, "82"), strings.Index(output, "86"), "comments are sorted by indicator")

	cfg := textConfig()
	cfg.Output = schema.CSVOut
	buf.Reset()
	require.NoError(t, WritePending(&buf, view, cfg))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"score", "85", "LT1", "0", "LT", "1700000000000"}, records[1])
	assert.Equal(t, "comment", records[2][0])
	assert.Equal(t, "82", records[2][1])
}

func TestWritePendingEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePending(&buf, PendingView{}, textConfig()))
	assert.Equal(t, "Pending changes: 0, last sync: never\n", buf.String())
}

func TestWriteSyncResults(t *testing.T) {
	tests := []struct {
		name     string
		results  []schema.SyncResult
		expected string
	}{
		{"nothing", nil, "Nothing to sync\n"},
		{"mixed", []schema.SyncResult{
			{Source: "LT", Success: true, Count: 2, Comments: 1},
			{Source: "", Success: false},
		}, "LT: saved 2 scores, 1 comments\ncomments: failed 0 scores, 0 comments\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteSyncResults(&buf, tt.results, textConfig()))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteSurveyTally(t *testing.T) {
	view := SurveyTallyView{
		Kind:          schema.ParentSurvey,
		OnlineEnabled: true,
		Tallies: map[string]schema.RatingTally{
			"82": {VeryGood: 2, Good: 1, Total: 3},
			"1":  {NotGood: 1, Total: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSurveyTally(&buf, view, textConfig()))
	assert.Contains(t, buf.String(), "66.7%")
	assert.Contains(t, buf.String(), "parent survey: 2 indicators rated, online submissions open")

	cfg := textConfig()
	cfg.Output = schema.CSVOut
	buf.Reset()
	require.NoError(t, WriteSurveyTally(&buf, view, cfg))
	assert.Equal(t, "indicator,very_good,good,not_good,total\n1,0,0,1,1\n82,2,1,0,3\n", buf.String())
}

func TestWriteGrade(t *testing.T) {
	view := GradeView{Codes: []string{"1", "2"}, Grade: schema.GradeNS}

	var buf bytes.Buffer
	require.NoError(t, WriteGrade(&buf, view, textConfig()))
	assert.Equal(t, "NS (Not Sufficient) from 2 indicators\n", buf.String())

	cfg := textConfig()
	cfg.Output = schema.JSONOut
	buf.Reset()
	require.NoError(t, WriteGrade(&buf, view, cfg))
	var decoded GradeView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Not Sufficient", decoded.Label)
}

func TestGetMaxDescriptionWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{40, 15},
		{120, 45},
		{300, 70},
	}

	for _, tt := range tests {
		cfg := &contract.Config{Width: tt.width}
		assert.Equal(t, tt.expected, GetMaxDescriptionWidth(cfg))
	}
}

func TestGradeLabelColors(t *testing.T) {
	cfg := textConfig()
	assert.Equal(t, "Achieved", gradeLabel(cfg, schema.GradeA))
	assert.Equal(t, "●●○", outcomeSymbol(cfg, 2))

	cfg.UseColors = true
	assert.Contains(t, gradeLabel(cfg, schema.GradeA), "Achieved")
}
