package cmd

import (
	"strings"

	"github.com/huangsam/schoolscore/internal/mcp"
	"github.com/huangsam/schoolscore/internal/syncer"
	"github.com/huangsam/schoolscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// syncCmd saves unsynced edits to the remote store.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Save unsynced edits to the remote store",
	Long: `Push pending LT scores and comments to the remote store.

Each source is written as one batch. A batch either lands completely, in
which case its pending edits are cleared, or fails and keeps every pending
edit for the next attempt.

Checklist answers can be written directly with --checklist; they do not
pass through the pending cache.

Examples:
  # Save everything
  schoolscore sync --school-id S001

  # Save only what LT3 recorded
  schoolscore sync --school-id S001 --sync-source LT3

  # Write checklist answers
  schoolscore sync --school-id S001 --checklist 1.1.1=yes --checklist 1.1.2=no`,
	PreRunE: schoolSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		remote, err := remoteStore()
		if err != nil {
			return err
		}
		coord := syncer.NewCoordinator(pendingStore, remote, cfg.SchoolID)

		if checklist := viper.GetStringSlice("checklist"); len(checklist) > 0 {
			if err := saveChecklist(coord, checklist); err != nil {
				return err
			}
		}

		var results []schema.SyncResult
		if source := viper.GetString("sync-source"); source != "" {
			result, saveErr := coord.SavePendingForSource(rootCtx, source)
			results, err = append(results, result), saveErr
		} else {
			results, err = coord.SaveAll(rootCtx)
		}
		if writeErr := writer.WriteSyncResults(results, cfg); writeErr != nil {
			return writeErr
		}
		return err
	},
}

func saveChecklist(coord *syncer.Coordinator, pairs []string) error {
	codes, values, err := mcp.ParseAnswers(strings.Join(pairs, ","))
	if err != nil {
		return err
	}
	source := viper.GetString("checklist-source")
	if source == "" {
		source = schema.ChecklistSource
	}
	for _, code := range codes {
		if err := coord.SaveChecklistScore(rootCtx, code, string(values[code]), source); err != nil {
			return err
		}
	}
	return nil
}
