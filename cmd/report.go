package cmd

import (
	"strings"

	"github.com/huangsam/schoolscore/core"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/mcp"
	"github.com/huangsam/schoolscore/internal/outwriter"
	"github.com/huangsam/schoolscore/internal/review"
	"github.com/spf13/cobra"
)

// reportCmd scores a school's review into the strand hierarchy.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Score a school's review into strand, substrand and outcome grades",
	Long: `Build the scored review for one school.

Checklist answers and leading-teacher columns from the remote store are
merged with any unsynced local edits, then rolled up:
- Indicators are met when enough observers answered yes
- Outcomes score 0..3 from the share of met indicators
- Substrands and strands report score distributions and averages

Examples:
  # Full report for a school
  schoolscore report --school-id S001

  # Teaching & Learning only, as JSON
  schoolscore report --school-id S001 --dimension D2 --output json

  # Parquet export for analytics
  schoolscore report --school-id S001 --output parquet --output-file s001`,
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		report, err := svc.Report(rootCtx, cfg.Dimension)
		if err != nil {
			return err
		}
		return writer.WriteReport(report, cfg)
	},
}

// customCmd shows the named custom graphs.
var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Show the custom outcome graphs for a school",
	Long: `Score the named custom graphs (for example the classroom practice graphs
of dimension 2) where each outcome is the share of its indicators that are met.

Examples:
  schoolscore custom --school-id S001 --dimension D2`,
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		results, err := svc.CustomGraphs(rootCtx, cfg.Dimension)
		if err != nil {
			return err
		}
		return writer.WriteCustomGraphs(results, cfg)
	},
}

// gradeCmd grades an ad hoc answer set without touching any store.
var gradeCmd = &cobra.Command{
	Use:   "grade code=answer [code=answer...]",
	Short: "Grade a set of checklist answers",
	Long: `Compute the four-level outcome grade for a set of checklist answers.

Answers are yes, no or nr. Not-relevant answers are left out of the
percentage; a set with no relevant answers is Not Reviewed.

Examples:
  schoolscore grade 1.1.1=yes 1.1.2=no 1.1.3=yes
  schoolscore grade "1.1.1=yes,1.1.2=nr" --grade-fully 85`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: configSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		codes, values, err := mcp.ParseAnswers(strings.Join(args, ","))
		if err != nil {
			return err
		}
		grade := core.CalculateOutcomeScore(codes, values, review.GradeThresholds(cfg))
		return writer.WriteGrade(outwriter.GradeView{Codes: codes, Grade: grade, Label: contract.GetPlainGrade(grade)}, cfg)
	},
}
