package iocache

import (
	"testing"

	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		expectErr bool
	}{
		{"simple", "pending_cache", false},
		{"leading underscore", "_t1", false},
		{"empty", "", true},
		{"leading digit", "1table", true},
		{"injection", "t; DROP TABLE x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.table)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`scores`", quoteTableName("scores", schema.MySQLBackend))
	assert.Equal(t, `"scores"`, quoteTableName("scores", schema.PostgreSQLBackend))
	assert.Equal(t, `"scores"`, quoteTableName("scores", schema.SQLiteBackend))
}

func TestRebind(t *testing.T) {
	query := "SELECT a FROM t WHERE b = ? AND c = ?"
	assert.Equal(t, query, rebind(schema.SQLiteBackend, query))
	assert.Equal(t, query, rebind(schema.MySQLBackend, query))
	assert.Equal(t, "SELECT a FROM t WHERE b = $1 AND c = $2", rebind(schema.PostgreSQLBackend, query))
}

func TestUpsertQuery(t *testing.T) {
	cols := []string{"k", "v", "ts"}
	keys := []string{"k"}

	sqlite := upsertQuery(schema.SQLiteBackend, "t", cols, keys)
	assert.Equal(t, `INSERT OR REPLACE INTO "t" (k, v, ts) VALUES (?, ?, ?)`, sqlite)

	mysql := upsertQuery(schema.MySQLBackend, "t", cols, keys)
	assert.Contains(t, mysql, "INSERT INTO `t` (k, v, ts) VALUES (?, ?, ?) AS new")
	assert.Contains(t, mysql, "ON DUPLICATE KEY UPDATE v = new.v, ts = new.ts")

	pg := upsertQuery(schema.PostgreSQLBackend, "t", cols, keys)
	assert.Contains(t, pg, "ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, ts = EXCLUDED.ts")
	assert.Contains(t, rebind(schema.PostgreSQLBackend, pg), "VALUES ($1, $2, $3)")
}

func TestDriverFor(t *testing.T) {
	for backend, want := range map[schema.DatabaseBackend]string{
		schema.SQLiteBackend:     "sqlite",
		schema.MySQLBackend:      "mysql",
		schema.PostgreSQLBackend: "pgx",
	} {
		got, err := driverFor(backend)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := driverFor(schema.NoneBackend)
	assert.Error(t, err)
}
