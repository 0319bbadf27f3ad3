package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/schoolscore/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() schema.Report {
	pct := 100
	return schema.Report{
		SchoolID:    "school-1",
		Dimension:   "D2",
		GeneratedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
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
						Indicators: []schema.Indicator{
							{
								Code:    "82",
								Score:   schema.ScoreYes,
								Comment: "observed twice",
								Result: schema.IndicatorResult{
									Score: schema.ScoreYes, Achieved: 1, Total: 1, Percentage: &pct,
									Breakdown: "1/1 = 100%", Sources: []string{"Checklist", "LT1"},
								},
							},
							{
								Code:     "83",
								Score:    schema.ScoreNA,
								Excluded: true,
								Result:   schema.IndicatorResult{Score: schema.ScoreNA, Breakdown: "No data"},
							},
						},
					},
				},
			}},
		}},
	}
}

func TestRecordStructTags(t *testing.T) {
	tests := []struct {
		name    string
		model   any
		columns []string
	}{
		{"outcomes", new(OutcomeRecord), []string{"school_id", "dimension", "strand", "substrand", "outcome", "description", "score", "grade", "achieved", "counted", "percentage", "generated_at"}},
		{"indicators", new(IndicatorRecord), []string{"school_id", "outcome", "indicator", "score", "percentage", "achieved", "counted", "breakdown", "sources", "comment", "generated_at"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parquet.SchemaOf(tt.model)
			for _, col := range tt.columns {
				_, ok := s.Lookup(col)
				assert.True(t, ok, "column %s should exist", col)
			}
		})
	}
}

func TestFlattenReport(t *testing.T) {
	outcomes, indicators := FlattenReport(sampleReport())
	require.Len(t, outcomes, 1)
	require.Len(t, indicators, 2)

	assert.Equal(t, "2.1.2", outcomes[0].Substrand)
	assert.Equal(t, "FA", outcomes[0].Grade)
	require.NotNil(t, outcomes[0].Description)

	require.NotNil(t, indicators[0].Score)
	assert.Equal(t, int32(1), *indicators[0].Score)
	assert.Equal(t, "Checklist|LT1", indicators[0].Sources)
	assert.Nil(t, indicators[1].Score, "NA indicators have no score")
	assert.Nil(t, indicators[1].Percentage)
	assert.Nil(t, indicators[1].Comment)
}

func readAll[T any](t *testing.T, path string) []T {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[T](file)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return rows[:n]
}

func TestExportReport(t *testing.T) {
	base := filepath.Join(t.TempDir(), "report.parquet")
	outcomesPath, indicatorsPath, err := ExportReport(sampleReport(), base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(base), "report_outcomes.parquet"), outcomesPath)

	outcomes := readAll[OutcomeRecord](t, outcomesPath)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "2.1.2.1", outcomes[0].Outcome)
	assert.Equal(t, int32(3), outcomes[0].Score)
	assert.WithinDuration(t, sampleReport().GeneratedAt, outcomes[0].GeneratedAt, time.Millisecond)

	indicators := readAll[IndicatorRecord](t, indicatorsPath)
	require.Len(t, indicators, 2)
	require.NotNil(t, indicators[0].Comment)
	assert.Equal(t, "observed twice", *indicators[0].Comment)
	assert.Nil(t, indicators[1].Score)
}

func TestExportEmptyReport(t *testing.T) {
	base := filepath.Join(t.TempDir(), "empty")
	outcomesPath, _, err := ExportReport(schema.Report{SchoolID: "s"}, base)
	require.NoError(t, err)
	info, err := os.Stat(outcomesPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportBadPath(t *testing.T) {
	_, _, err := ExportReport(sampleReport(), filepath.Join(t.TempDir(), "missing", "dir", "r"))
	assert.Error(t, err)
}
