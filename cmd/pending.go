package cmd

import (
	"fmt"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/outwriter"
	"github.com/huangsam/schoolscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// pendingCmd focused on unsynced local edits.
var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Record and inspect unsynced local edits",
	Long: `Manage edits that have not been saved to the remote store yet.

Leading-teacher scores and comments are written to the local cache first,
so they survive restarts and lost connections. Edits are kept per school:
every subcommand needs --school-id. Use 'schoolscore sync' to save them.

Subcommands:
  set     - Record an LT column value
  comment - Record an indicator comment
  list    - Show unsynced edits and the last sync status
  discard - Drop the unsynced scores of one source
  clear   - Drop every unsynced edit

Examples:
  schoolscore pending set 2.1.2.1.85 1 --source LT3
  schoolscore pending comment 2.1.2.1.85 "Observed in two lessons"
  schoolscore pending list`,
}

// pendingSetCmd records one LT column edit.
var pendingSetCmd = &cobra.Command{
	Use:     "set <indicator> <value>",
	Short:   "Record an LT column value (1/yes, 0/no, NA)",
	Args:    cobra.ExactArgs(2),
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		code, err := contract.SanitizeIndicatorCode(args[0])
		if err != nil {
			return err
		}
		value, err := contract.ValidateLTScore(args[1])
		if err != nil {
			return err
		}
		source, err := contract.SanitizeSource(viper.GetString("source"))
		if err != nil {
			return err
		}
		column := viper.GetString("column")
		if column == "" {
			column = source
		}
		if !schema.IsLTColumn(column) {
			return contract.NewValidationError("column", fmt.Sprintf("unknown LT column %q. must be LT1..LT10", column))
		}
		pendingStore.SetPendingScore(code, column, value, source)
		fmt.Printf("Pending %s %s = %s (%d unsynced)\n", code, column, value, pendingStore.PendingCount())
		return nil
	},
}

// pendingCommentCmd records one comment edit. An empty comment deletes on sync.
var pendingCommentCmd = &cobra.Command{
	Use:     "comment <indicator> [text]",
	Short:   "Record an indicator comment (omit text to delete it on sync)",
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		code, err := contract.SanitizeIndicatorCode(args[0])
		if err != nil {
			return err
		}
		var text string
		if len(args) == 2 {
			text = contract.SanitizeComment(args[1])
		}
		pendingStore.SetPendingComment(code, text)
		fmt.Printf("Pending comment for %s (%d unsynced)\n", code, pendingStore.PendingCount())
		return nil
	},
}

// pendingListCmd shows the unsynced edits.
var pendingListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show unsynced edits and the last sync status",
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return writer.WritePending(outwriter.PendingView{
			Status:   pendingStore.Status(),
			Scores:   pendingStore.Entries(),
			Comments: pendingStore.PendingComments(),
		}, cfg)
	},
}

// pendingDiscardCmd drops the scores of one source.
var pendingDiscardCmd = &cobra.Command{
	Use:     "discard <source>",
	Short:   "Drop the unsynced scores recorded by one source",
	Args:    cobra.ExactArgs(1),
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		source, err := contract.SanitizeSource(args[0])
		if err != nil {
			return err
		}
		pendingStore.ClearForSource(source)
		fmt.Printf("Discarded pending scores for %s (%d unsynced)\n", source, pendingStore.PendingCount())
		return nil
	},
}

// pendingClearCmd drops everything.
var pendingClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Drop every unsynced score and comment",
	PreRunE: schoolSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		pendingStore.ClearAllPending()
		fmt.Println("Pending changes cleared.")
	},
}
