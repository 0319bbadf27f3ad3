// Package parquet exports scored reports to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/schoolscore/schema"
	"github.com/parquet-go/parquet-go"
)

// OutcomeRecord is one scored outcome of a report.
type OutcomeRecord struct {
	// SchoolID is the school the report was built for
	SchoolID string `parquet:"school_id,snappy"`

	// Dimension is empty when the report spans every dimension
	Dimension string `parquet:"dimension,snappy"`

	Strand    string `parquet:"strand,snappy"`
	Substrand string `parquet:"substrand,snappy"`
	Outcome   string `parquet:"outcome,snappy"`

	// Description is the outcome text from the catalog (nullable)
	Description *string `parquet:"description,optional,snappy"`

	// Score is the 0-3 outcome score
	Score int32 `parquet:"score,snappy"`

	// Grade is FA, MA, A, NS or NR
	Grade string `parquet:"grade,snappy"`

	// Achieved and Counted are the indicator totals behind the score
	Achieved   int32 `parquet:"achieved,snappy"`
	Counted    int32 `parquet:"counted,snappy"`
	Percentage int32 `parquet:"percentage,snappy"`

	// GeneratedAt is when the report was built
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// IndicatorRecord is one scored indicator of a report.
type IndicatorRecord struct {
	SchoolID  string `parquet:"school_id,snappy"`
	Outcome   string `parquet:"outcome,snappy"`
	Indicator string `parquet:"indicator,snappy"`

	// Score is 1, 0 or nil when the indicator is NA
	Score *int32 `parquet:"score,optional,snappy"`

	// Percentage is nil when no data point counted
	Percentage *int32 `parquet:"percentage,optional,snappy"`

	Achieved  int32  `parquet:"achieved,snappy"`
	Counted   int32  `parquet:"counted,snappy"`
	Breakdown string `parquet:"breakdown,snappy"`

	// Sources is the pipe-joined list of sources that counted
	Sources string `parquet:"sources,snappy"`

	// Comment is the reviewer comment (nullable)
	Comment *string `parquet:"comment,optional,snappy"`

	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// FlattenReport turns a report into outcome and indicator rows in tree order.
func FlattenReport(report schema.Report) ([]OutcomeRecord, []IndicatorRecord) {
	var outcomes []OutcomeRecord
	var indicators []IndicatorRecord
	for _, st := range report.Strands {
		for _, ss := range st.Substrands {
			for _, o := range ss.Outcomes {
				outcomes = append(outcomes, OutcomeRecord{
					SchoolID:    report.SchoolID,
					Dimension:   report.Dimension,
					Strand:      st.Code,
					Substrand:   ss.Code,
					Outcome:     o.Code,
					Description: optionalString(o.Description),
					Score:       int32(o.Score),
					Grade:       string(o.Grade),
					Achieved:    int32(o.Breakdown.Achieved),
					Counted:     int32(o.Breakdown.Total),
					Percentage:  int32(o.Breakdown.Percentage),
					GeneratedAt: report.GeneratedAt,
				})
				for _, ind := range o.Indicators {
					indicators = append(indicators, indicatorRecord(report, o.Code, ind))
				}
			}
		}
	}
	return outcomes, indicators
}

func indicatorRecord(report schema.Report, outcome string, ind schema.Indicator) IndicatorRecord {
	rec := IndicatorRecord{
		SchoolID:    report.SchoolID,
		Outcome:     outcome,
		Indicator:   ind.Code,
		Achieved:    int32(ind.Result.Achieved),
		Counted:     int32(ind.Result.Total),
		Breakdown:   ind.Result.Breakdown,
		Sources:     strings.Join(ind.Result.Sources, "|"),
		Comment:     optionalString(ind.Comment),
		GeneratedAt: report.GeneratedAt,
	}
	if ind.Score != schema.ScoreNA {
		score := int32(ind.Score)
		rec.Score = &score
	}
	if ind.Result.Percentage != nil {
		pct := int32(*ind.Result.Percentage)
		rec.Percentage = &pct
	}
	return rec
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// WriteOutcomesParquet writes outcome rows to a Parquet file.
func WriteOutcomesParquet(data []OutcomeRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteIndicatorsParquet writes indicator rows to a Parquet file.
func WriteIndicatorsParquet(data []IndicatorRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is derived from the struct tags
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// ExportReport writes <base>_outcomes.parquet and <base>_indicators.parquet
// and returns both paths.
func ExportReport(report schema.Report, base string) (outcomesPath, indicatorsPath string, err error) {
	base = strings.TrimSuffix(base, ".parquet")
	if base == "" {
		base = "schoolscore_report"
	}
	outcomes, indicators := FlattenReport(report)
	outcomesPath = base + "_outcomes.parquet"
	indicatorsPath = base + "_indicators.parquet"
	if err := WriteOutcomesParquet(outcomes, outcomesPath); err != nil {
		return "", "", err
	}
	if err := WriteIndicatorsParquet(indicators, indicatorsPath); err != nil {
		return "", "", err
	}
	return outcomesPath, indicatorsPath, nil
}
