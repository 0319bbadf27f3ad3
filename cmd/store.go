package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/iocache"
	"github.com/huangsam/schoolscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeCmd focused on store maintenance.
//
// Note: clear and migrate load config only and open the database themselves,
// so they work on a fresh or broken database.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Inspect and maintain the local cache and the remote store",
	Long: `Manage the two databases schoolscore uses.

The local cache holds unsynced edits on this machine. The remote store
holds the school's saved scores, comments, settings and surveys.

Supported remote backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show entry counts and connection details
  clear   - Remove the local cache or the remote store
  migrate - Run remote schema migrations

Examples:
  schoolscore store status
  schoolscore store clear local
  SCHOOLSCORE_REMOTE_BACKEND=postgresql SCHOOLSCORE_REMOTE_DB_CONNECT="..." schoolscore store migrate`,
}

// storeStatusCmd shows both store statuses.
var storeStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display store statistics and connection details",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if local := storeManager.GetLocalCache(); local != nil {
			status, err := local.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get local cache status", err)
			}
			iocache.PrintCacheStatus(os.Stdout, status)
		}
		if remote := storeManager.GetRemoteStore(); remote != nil {
			status, err := remote.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get remote store status", err)
			}
			iocache.PrintRemoteStatus(os.Stdout, status)
		}
		syncStatus := pendingStore.Status()
		fmt.Printf("Pending Changes: %d\n", syncStatus.PendingCount)
		if syncStatus.Error != "" {
			fmt.Printf("Last Sync Error: %s\n", syncStatus.Error)
		}
	},
}

// storeClearCmd removes one of the stores.
var storeClearCmd = &cobra.Command{
	Use:   "clear <local|remote>",
	Short: "Remove the local cache or every remote table",
	Long: `Delete a store's data.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the store's tables

WARNING: Clearing the local cache loses unsynced edits. Clearing the remote
store loses every saved score. Neither can be undone.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"local", "remote"},
	PreRunE:   configSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		switch args[0] {
		case "local":
			path := cfg.LocalDBConnect
			if path == "" {
				path = contract.GetLocalCacheDBFilePath()
			}
			if err := iocache.ClearLocalCache(cfg.LocalBackend, path, cfg.LocalDBConnect); err != nil {
				return err
			}
			fmt.Println("Local cache cleared successfully.")
		case "remote":
			path := cfg.RemoteDBConnect
			if path == "" {
				path = contract.GetRemoteDBFilePath()
			}
			if err := iocache.ClearRemote(cfg.RemoteBackend, path, cfg.RemoteDBConnect); err != nil {
				return err
			}
			fmt.Println("Remote store cleared successfully.")
		default:
			return fmt.Errorf("unknown store %q. must be local or remote", args[0])
		}
		return nil
	},
}

// storeMigrateCmd runs database migrations for the remote store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run remote schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the remote store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  schoolscore store migrate

  # Roll back everything
  schoolscore store migrate --target-version 0`,
	PreRunE: configSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		connStr := cfg.RemoteDBConnect
		if cfg.RemoteBackend == schema.SQLiteBackend && connStr == "" {
			connStr = contract.GetRemoteDBFilePath()
		}
		if err := iocache.MigrateRemote(os.Stdout, cfg.RemoteBackend, connStr, viper.GetInt("target-version")); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
