package cmd

import (
	"fmt"
	"strconv"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/outwriter"
	"github.com/huangsam/schoolscore/internal/review"
	"github.com/huangsam/schoolscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// surveyCmd focused on stakeholder surveys.
var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Collect and tally parent, student and teacher surveys",
	Long: `Stakeholder surveys rate indicators 1 (not good), 2 (good) or 3 (very good).

Online submissions are only accepted, and only counted, while the survey
gate for that kind is enabled. Rejected respondents are never counted.

Subcommands:
  submit - Record one rating
  tally  - Count ratings per indicator
  status - Accept or reject a respondent
  enable - Open or close online submissions

Examples:
  schoolscore survey enable parent yes
  schoolscore survey submit parent 2.1.2.1.85 3 --online
  schoolscore survey tally parent --school-id S001`,
}

// surveySubmitCmd records one rating.
var surveySubmitCmd = &cobra.Command{
	Use:     "submit <kind> <indicator> <rating>",
	Short:   "Record one survey rating",
	Args:    cobra.ExactArgs(3),
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		kind, err := review.ParseSurveyKind(args[0])
		if err != nil {
			return err
		}
		rating, err := strconv.Atoi(args[2])
		if err != nil {
			return contract.NewValidationError("rating", fmt.Sprintf("rating must be a number (received %q)", args[2]))
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		resp, err := svc.SubmitSurvey(rootCtx, schema.SurveyResponse{
			Kind:          kind,
			IndicatorCode: args[1],
			Rating:        rating,
			RespondentID:  viper.GetString("respondent"),
			Online:        viper.GetBool("online"),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s rating %d for %s from %s\n", resp.Kind, resp.Rating, resp.IndicatorCode, resp.RespondentID)
		return nil
	},
}

// surveyTallyCmd counts ratings.
var surveyTallyCmd = &cobra.Command{
	Use:     "tally <kind>",
	Short:   "Count survey ratings per indicator",
	Args:    cobra.ExactArgs(1),
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		kind, err := review.ParseSurveyKind(args[0])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		enabled, err := svc.SurveyEnabled(rootCtx, kind)
		if err != nil {
			return err
		}
		tallies, err := svc.SurveyTally(rootCtx, kind)
		if err != nil {
			return err
		}
		return writer.WriteSurveyTally(outwriter.SurveyTallyView{Kind: kind, OnlineEnabled: enabled, Tallies: tallies}, cfg)
	},
}

// surveyStatusCmd moderates a respondent.
var surveyStatusCmd = &cobra.Command{
	Use:     "status <kind> <respondent> <accepted|rejected|unset>",
	Short:   "Accept or reject every response of a respondent",
	Args:    cobra.ExactArgs(3),
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		kind, err := review.ParseSurveyKind(args[0])
		if err != nil {
			return err
		}
		status := schema.RespondentStatus(args[2])
		if args[2] == "unset" {
			status = schema.UnsetStatus
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		if err := svc.SetRespondentStatus(rootCtx, kind, args[1], status); err != nil {
			return err
		}
		fmt.Printf("Respondent %s set to %s\n", args[1], args[2])
		return nil
	},
}

// surveyEnableCmd opens or closes online submissions.
var surveyEnableCmd = &cobra.Command{
	Use:     "enable <kind> <yes|no>",
	Short:   "Open or close online submissions for a survey kind",
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		kind, err := review.ParseSurveyKind(args[0])
		if err != nil {
			return err
		}
		enabled, err := contract.ParseBoolString(args[1])
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		if err := svc.SetSurveyEnabled(rootCtx, kind, enabled); err != nil {
			return err
		}
		state := "closed"
		if enabled {
			state = "open"
		}
		fmt.Printf("Online %s survey %s\n", kind, state)
		return nil
	},
}
