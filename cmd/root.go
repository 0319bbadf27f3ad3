package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/schoolscore/internal/catalog"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/iocache"
	"github.com/huangsam/schoolscore/internal/outwriter"
	"github.com/huangsam/schoolscore/internal/pending"
	"github.com/huangsam/schoolscore/internal/review"
	"github.com/huangsam/schoolscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// storeManager is the global persistence manager instance.
var storeManager contract.StoreManager = iocache.Manager

// pendingStore holds this session's unsynced edits. It is created lazily
// after the stores are initialized.
var pendingStore *pending.Store

// writer renders every command result.
var writer = outwriter.NewOutWriter()

var errNoSchool = errors.New("school-id is required (flag, SCHOOLSCORE_SCHOOL_ID or config file)")

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "schoolscore",
	Short:              "Score school self-evaluation reviews and sync offline edits.",
	Long:               `Schoolscore turns checklist and leading-teacher answers into outcome grades, and keeps offline edits safe until they are synced.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".schoolscore")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("SCHOOLSCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("indicator-threshold", contract.DefaultIndicatorThreshold)
	viper.SetDefault("grade-fully", contract.DefaultGradeFully)
	viper.SetDefault("grade-mostly", contract.DefaultGradeMostly)
	viper.SetDefault("grade-achieved", contract.DefaultGradeAchieved)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("remote-backend", schema.SQLiteBackend)
	viper.SetDefault("remote-db-connect", "")
	viper.SetDefault("local-backend", schema.SQLiteBackend)
	viper.SetDefault("local-db-connect", "")
	viper.SetDefault("color", "yes")
}

// loadConfig merges defaults, file, env and flags into cfg.
func loadConfig() error {
	// 1. Read config file. A missing file is fine; we'll use defaults/env/flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and populate the global cfg.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetup loads config and opens both stores.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.LocalBackend, cfg.LocalDBConnect, cfg.RemoteBackend, cfg.RemoteDBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}
	pendingStore = pending.NewStore(storeManager.GetLocalCache(), cfg.SchoolID)
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// schoolSetupWrapper is sharedSetup for commands that read or write school data.
func schoolSetupWrapper(cmd *cobra.Command, args []string) error {
	if err := sharedSetup(rootCtx, cmd, args); err != nil {
		return err
	}
	if cfg.SchoolID == "" {
		return errNoSchool
	}
	return nil
}

// configSetupWrapper loads config without opening any store.
func configSetupWrapper(_ *cobra.Command, _ []string) error {
	return loadConfig()
}

// remoteStore returns the configured remote store or an error when it is disabled.
func remoteStore() (contract.RemoteStore, error) {
	remote := storeManager.GetRemoteStore()
	if remote == nil || cfg.RemoteBackend == schema.NoneBackend {
		return nil, errors.New("remote store is disabled; set --remote-backend")
	}
	return remote, nil
}

// newService builds a review service over the configured catalog and stores.
func newService() (*review.Service, error) {
	remote, err := remoteStore()
	if err != nil {
		return nil, err
	}
	rows, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	graphs, err := catalog.LoadGraphs(cfg.GraphsPath)
	if err != nil {
		return nil, err
	}
	return review.NewService(remote, pendingStore, cfg, rows, graphs), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetStoreManager sets the global store manager.
func SetStoreManager(mgr contract.StoreManager) {
	storeManager = mgr
}
