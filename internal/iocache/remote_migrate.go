package iocache

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huangsam/schoolscore/schema"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateRemote moves the remote store schema to targetVersion.
// A negative target means latest and zero drops every table.
func MigrateRemote(w io.Writer, backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("remote store is disabled; nothing to migrate")
	}

	db, err := openDB(backend, connStr, GetRemoteDBFilePath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m, err := newMigrator(db, backend)
	if err != nil {
		return err
	}

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("remote schema is dirty at version %d; force a version before migrating", from)
	}

	var label string
	switch {
	case targetVersion < 0:
		label, err = "latest", m.Up()
	case targetVersion == 0:
		label, err = "0", m.Down()
	default:
		label, err = fmt.Sprint(targetVersion), m.Migrate(uint(targetVersion))
	}
	if errors.Is(err, migrate.ErrNoChange) {
		_, _ = fmt.Fprintf(w, "Remote schema already at version %s\n", label)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrating remote schema to %s: %w", label, err)
	}

	to, _, _ := m.Version()
	_, _ = fmt.Fprintf(w, "Remote schema migrated from version %d to version %d\n", from, to)
	return nil
}

// newMigrator binds the embedded migrations to an open database.
func newMigrator(db *sql.DB, backend schema.DatabaseBackend) (*migrate.Migrate, error) {
	var (
		driver database.Driver
		err    error
	)
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case schema.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	case schema.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("no migrate driver for backend %q", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s migrate driver: %w", backend, err)
	}

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	source, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("loading embedded migrations: %w", err)
	}
	return migrate.NewWithInstance("iofs", source, "schoolscore", driver)
}
