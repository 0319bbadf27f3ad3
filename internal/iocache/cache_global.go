package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// pendingTable is the name of the table for the local pending cache.
const pendingTable = "pending_cache"

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetLocalCacheDBFilePath returns the path to the SQLite DB file for the local cache.
func GetLocalCacheDBFilePath() string {
	return contract.GetLocalCacheDBFilePath()
}

// GetRemoteDBFilePath returns the path to the SQLite DB file for the remote store.
func GetRemoteDBFilePath() string {
	return contract.GetRemoteDBFilePath()
}

// InitStores initializes the global manager with the local cache and the remote store.
// An empty backend skips that store.
func InitStores(localBackend schema.DatabaseBackend, localConnStr string, remoteBackend schema.DatabaseBackend, remoteConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		var local contract.LocalCache
		if localBackend != "" {
			store, err := NewLocalCache(pendingTable, localBackend, localConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize local cache: %w", err)
				return
			}
			local = store
		}

		var remote contract.RemoteStore
		if remoteBackend != "" {
			store, err := NewRemoteStore(remoteBackend, remoteConnStr)
			if err != nil {
				if local != nil {
					_ = local.Close()
				}
				initErr = fmt.Errorf("failed to initialize remote store: %w", err)
				return
			}
			remote = store
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.local = local
		Manager.remote = remote
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.local != nil {
			_ = Manager.local.Close()
		}
		if Manager.remote != nil {
			_ = Manager.remote.Close()
		}
	})
}

// ClearLocalCache clears the pending cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearLocalCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	return clearStore(backend, dbFilePath, connStr, []string{pendingTable})
}

// ClearRemote drops every remote table, including the migration bookkeeping table.
func ClearRemote(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	return clearStore(backend, dbFilePath, connStr, append([]string{"schema_migrations"}, remoteTables...))
}

func clearStore(backend schema.DatabaseBackend, dbFilePath, connStr string, tables []string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		driverName, _ := driverFor(backend)
		for _, table := range tables {
			if err := clearSQLTable(driverName, backend, connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName string, backend schema.DatabaseBackend, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}
