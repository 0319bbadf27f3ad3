package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// LocalCacheImpl handles durable key-value storage for pending changes.
type LocalCacheImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
}

var _ contract.LocalCache = &LocalCacheImpl{} // Compile-time check

// NewLocalCache initializes and returns a new LocalCache based on the backend type.
func NewLocalCache(tableName string, backend schema.DatabaseBackend, connStr string) (*LocalCacheImpl, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	if backend == schema.NoneBackend {
		// No-op store: pending changes only live for the session
		return &LocalCacheImpl{tableName: tableName, backend: backend}, nil
	}

	db, err := openDB(backend, connStr, GetLocalCacheDBFilePath())
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(getCreateCacheTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &LocalCacheImpl{db: db, tableName: tableName, backend: backend}, nil
}

// getCreateCacheTableQuery returns the CREATE TABLE query for the given backend.
func getCreateCacheTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key VARCHAR(255) PRIMARY KEY,
				cache_value BLOB NOT NULL,
				cache_version INT NOT NULL,
				cache_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BYTEA NOT NULL,
				cache_version INTEGER NOT NULL,
				cache_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BLOB NOT NULL,
				cache_version INTEGER NOT NULL,
				cache_timestamp INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

func (lc *LocalCacheImpl) disabled() bool {
	return lc.backend == schema.NoneBackend || lc.db == nil
}

// Get retrieves a value by key. A missing key returns sql.ErrNoRows.
func (lc *LocalCacheImpl) Get(key string) ([]byte, int, int64, error) {
	if lc.disabled() {
		return nil, 0, 0, sql.ErrNoRows
	}

	var value []byte
	var version int
	var ts int64

	query := rebind(lc.backend, fmt.Sprintf(`SELECT cache_value, cache_version, cache_timestamp FROM %s WHERE cache_key = ?`,
		quoteTableName(lc.tableName, lc.backend)))
	if err := lc.db.QueryRow(query, key).Scan(&value, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces a key/value pair.
func (lc *LocalCacheImpl) Set(key string, value []byte, version int, timestamp int64) error {
	if lc.disabled() {
		return nil
	}
	query := rebind(lc.backend, upsertQuery(lc.backend, lc.tableName,
		[]string{"cache_key", "cache_value", "cache_version", "cache_timestamp"}, []string{"cache_key"}))
	_, err := lc.db.Exec(query, key, value, version, timestamp)
	return err
}

// Delete removes a key. Deleting a missing key is not an error.
func (lc *LocalCacheImpl) Delete(key string) error {
	if lc.disabled() {
		return nil
	}
	query := rebind(lc.backend, fmt.Sprintf(`DELETE FROM %s WHERE cache_key = ?`, quoteTableName(lc.tableName, lc.backend)))
	_, err := lc.db.Exec(query, key)
	return err
}

// Close closes the underlying DB connection.
func (lc *LocalCacheImpl) Close() error {
	if lc.db != nil {
		return lc.db.Close()
	}
	return nil
}

// GetStatus returns status information about the local cache.
func (lc *LocalCacheImpl) GetStatus() (schema.CacheStatus, error) {
	status := schema.CacheStatus{
		Backend:   string(lc.backend),
		Connected: lc.db != nil,
	}
	if lc.disabled() {
		return status, nil
	}

	quotedTableName := quoteTableName(lc.tableName, lc.backend)

	if err := lc.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)).Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}
	if status.TotalEntries == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	row := lc.db.QueryRow(fmt.Sprintf("SELECT MAX(cache_timestamp), MIN(cache_timestamp) FROM %s", quotedTableName))
	if err := row.Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get entry times: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	if lc.backend == schema.SQLiteBackend {
		row = lc.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
		if err := row.Scan(&status.TableSizeBytes); err != nil {
			// If pragma fails, skip size
			status.TableSizeBytes = 0
		}
	} else {
		status.TableSizeBytes = int64(status.TotalEntries) * 1000 // Rough estimate
	}
	return status, nil
}
