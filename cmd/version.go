package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd prints build metadata stamped in by the release pipeline.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print schoolscore build information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("schoolscore %s (commit %s, built %s, %s)\n", version, commit, date, runtime.Version())
	},
}
