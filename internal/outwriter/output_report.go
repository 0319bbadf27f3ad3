package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

var reportCSVHeader = []string{
	"strand",
	"substrand",
	"outcome",
	"outcome_score",
	"grade",
	"indicator",
	"indicator_score",
	"breakdown",
	"sources",
	"comment",
}

// WriteReport writes a scored report in the configured output format.
func WriteReport(w io.Writer, report schema.Report, cfg *contract.Config) error {
	return dispatch(w, cfg, report, reportCSVHeader,
		func(cw *csv.Writer) error { return writeReportCSV(cw, report) },
		func(w io.Writer) error { return writeReportTable(w, report, cfg) })
}

// writeReportTable renders one row per outcome followed by a summary.
func writeReportTable(w io.Writer, report schema.Report, cfg *contract.Config) error {
	maxDesc := GetMaxDescriptionWidth(cfg)
	var data [][]string
	for _, st := range report.Strands {
		for _, ss := range st.Substrands {
			for _, o := range ss.Outcomes {
				data = append(data, []string{
					st.Code,
					ss.Code,
					o.Code,
					contract.TruncateText(o.Description, maxDesc),
					outcomeSymbol(cfg, o.Score),
					gradeLabel(cfg, o.Grade),
					fmt.Sprintf("%d/%d", o.Breakdown.Achieved, o.Breakdown.Total),
					fmt.Sprintf("%d%%", o.Breakdown.Percentage),
				})
			}
		}
	}
	headers := []string{"Strand", "Substrand", "Outcome", "Description", "Score", "Grade", "Counted", "Pct"}
	if err := renderTable(w, headers, data); err != nil {
		return err
	}

	scope := report.Dimension
	if scope == "" {
		scope = "all dimensions"
	}
	if _, err := fmt.Fprintf(w, "School %s, %s: %d%% %s, %d%% complete\n",
		report.SchoolID, scope, report.Percentage, gradeLabel(cfg, report.Grade), report.CompletionRate); err != nil {
		return err
	}
	d := report.Distribution
	if _, err := fmt.Fprintf(w, "Outcomes scored 3/2/1/0: %d/%d/%d/%d of %d\n", d.Score3, d.Score2, d.Score1, d.Score0, d.Total); err != nil {
		return err
	}
	if err := writeOutcomeRefs(w, "Strengths", report.Strengths); err != nil {
		return err
	}
	return writeOutcomeRefs(w, "Help needed", report.HelpNeeded)
}

func writeOutcomeRefs(w io.Writer, title string, refs []schema.OutcomeRef) error {
	if len(refs) == 0 {
		return nil
	}
	codes := make([]string, len(refs))
	for i, r := range refs {
		codes[i] = r.Code
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", title, strings.Join(codes, ", "))
	return err
}

// writeReportCSV writes one record per indicator.
func writeReportCSV(w *csv.Writer, report schema.Report) error {
	for _, st := range report.Strands {
		for _, ss := range st.Substrands {
			for _, o := range ss.Outcomes {
				for _, ind := range o.Indicators {
					rec := []string{
						st.Code,
						ss.Code,
						o.Code,
						strconv.Itoa(o.Score),
						string(o.Grade),
						ind.Code,
						ind.Score.String(),
						ind.Result.Breakdown,
						strings.Join(ind.Result.Sources, "|"),
						ind.Comment,
					}
					if err := w.Write(rec); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
