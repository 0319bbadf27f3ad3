// Package cmd defines the command-line interface for schoolscore.
package cmd

import (
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(customCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(surveyCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the pending subcommands to the parent pending command
	pendingCmd.AddCommand(pendingSetCmd)
	pendingCmd.AddCommand(pendingCommentCmd)
	pendingCmd.AddCommand(pendingListCmd)
	pendingCmd.AddCommand(pendingDiscardCmd)
	pendingCmd.AddCommand(pendingClearCmd)

	// Add the settings subcommands to the parent settings command
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	// Add the survey subcommands to the parent survey command
	surveyCmd.AddCommand(surveySubmitCmd)
	surveyCmd.AddCommand(surveyTallyCmd)
	surveyCmd.AddCommand(surveyStatusCmd)
	surveyCmd.AddCommand(surveyEnableCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("school-id", "", "School whose review data is read and written")
	rootCmd.PersistentFlags().String("dimension", "", "Restrict output to one dimension: D1 or D2 or D3 or D4 or D5")
	rootCmd.PersistentFlags().Int("indicator-threshold", contract.DefaultIndicatorThreshold, "Percentage of yes answers an indicator needs to count as met")
	rootCmd.PersistentFlags().Float64("grade-fully", contract.DefaultGradeFully, "Minimum percentage for Fully Achieved")
	rootCmd.PersistentFlags().Float64("grade-mostly", contract.DefaultGradeMostly, "Minimum percentage for Mostly Achieved")
	rootCmd.PersistentFlags().Float64("grade-achieved", contract.DefaultGradeAchieved, "Minimum percentage for Achieved")
	rootCmd.PersistentFlags().String("catalog", "", "Path to an indicator catalog YAML file (default: built-in sample)")
	rootCmd.PersistentFlags().String("graphs", "", "Path to a custom graph YAML file layered over the built-in graphs")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("remote-backend", string(schema.SQLiteBackend), "Remote score store: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("remote-db-connect", "", "Database connection string for the remote store (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("local-backend", string(schema.SQLiteBackend), "Local pending cache: sqlite or none")
	rootCmd.PersistentFlags().String("local-db-connect", "", "SQLite file for the local pending cache (must differ from the remote file)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of pendingSetCmd to Viper
	pendingSetCmd.Flags().String("source", "", "Observer or LT column recording the edit (LT1..LT10)")
	pendingSetCmd.Flags().String("column", "", "LT column to write (defaults to --source)")
	if err := viper.BindPFlags(pendingSetCmd.Flags()); err != nil {
		contract.LogFatal("Error binding pending set flags", err)
	}

	// Bind all flags of syncCmd to Viper
	syncCmd.Flags().String("sync-source", "", "Only save pending edits recorded by this source")
	syncCmd.Flags().String("checklist-source", "", "Source recorded for checklist scores written with --checklist")
	syncCmd.Flags().StringSlice("checklist", nil, "Write checklist answers directly (code=answer, repeatable)")
	if err := viper.BindPFlags(syncCmd.Flags()); err != nil {
		contract.LogFatal("Error binding sync flags", err)
	}

	// Bind all flags of surveySubmitCmd to Viper
	surveySubmitCmd.Flags().String("respondent", "", "Respondent id (generated for online submissions when empty)")
	surveySubmitCmd.Flags().Bool("online", false, "Mark the response as an online submission")
	if err := viper.BindPFlags(surveySubmitCmd.Flags()); err != nil {
		contract.LogFatal("Error binding survey submit flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
