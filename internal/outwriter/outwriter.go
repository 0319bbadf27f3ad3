// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/parquet"
	"github.com/huangsam/schoolscore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It routes every result to stdout or the configured output file.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a report. Parquet output writes outcome and indicator
// files next to the configured output path.
func (ow *OutWriter) WriteReport(report schema.Report, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		outcomes, indicators, err := parquet.ExportReport(report, cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s and %s\n", outcomes, indicators)
		return nil
	}
	return ow.write(cfg, func(w io.Writer) error { return WriteReport(w, report, cfg) })
}

// WriteCustomGraphs prints scored custom graphs.
func (ow *OutWriter) WriteCustomGraphs(results []schema.CustomGraphResult, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error { return WriteCustomGraphs(w, results, cfg) })
}

// WritePending prints unsynced edits.
func (ow *OutWriter) WritePending(view PendingView, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error { return WritePending(w, view, cfg) })
}

// WriteSyncResults prints the outcome of a save run.
func (ow *OutWriter) WriteSyncResults(results []schema.SyncResult, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error { return WriteSyncResults(w, results, cfg) })
}

// WriteSurveyTally prints survey rating counts.
func (ow *OutWriter) WriteSurveyTally(view SurveyTallyView, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error { return WriteSurveyTally(w, view, cfg) })
}

// WriteGrade prints an ad hoc grade.
func (ow *OutWriter) WriteGrade(view GradeView, cfg *contract.Config) error {
	return ow.write(cfg, func(w io.Writer) error { return WriteGrade(w, view, cfg) })
}

func (ow *OutWriter) write(cfg *contract.Config, fn func(io.Writer) error) error {
	msg := "Wrote table"
	switch cfg.Output {
	case schema.JSONOut, schema.ParquetOut:
		msg = "Wrote JSON"
	case schema.CSVOut:
		msg = "Wrote CSV"
	}
	return writeWithFile(cfg.OutputFile, fn, msg)
}
