// Package storage provides the SQLite database layer for Logbook.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "logbook"
)

// DB wraps the SQLite database connection.
type DB struct {
	db   *sqlx.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database file path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "logbook.db")
}

// Open opens or creates a database at the given path and ensures the
// schema exists. Opening an existing store leaves its data untouched.
func Open(opts Options) (*DB, error) {
	path := opts.Path
	if opts.InMemory || path == "" {
		path = ":memory:"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.NewStorageError("create data directory", err)
		}
	}

	// The sqlite time format stores time.Time values as text that
	// DATE() and strftime() can parse; the driver default is not
	// SQLite-readable.
	db, err := sqlx.Open("sqlite", path+"?_time_format=sqlite")
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// SQLite allows a single writer; a one-connection pool also keeps
	// in-memory databases on the same connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("enable WAL mode", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("enable foreign keys", err)
	}

	d := &DB{db: db, path: path}
	if err := d.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database file path, or ":memory:" for an in-memory
// store.
func (d *DB) Path() string {
	return d.path
}

// DB returns the underlying sqlx handle for advanced operations.
func (d *DB) DB() *sqlx.DB {
	return d.db
}

// schemaStatements create the three tables, the default settings rows,
// and the indexes backing the aggregate queries. Every statement is
// idempotent, so initSchema is safe to run against an existing store.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT DEFAULT '',
		estimated_hours REAL NOT NULL,
		category TEXT NOT NULL,
		status TEXT DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP,
		duration_hours REAL,
		notes TEXT DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_project ON activities(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status)`,
}

// initSchema creates the tables, indexes, and default settings inside a
// single transaction.
func (d *DB) initSchema() error {
	tx, err := d.db.Beginx()
	if err != nil {
		return errors.NewStorageError("begin schema transaction", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return errors.NewStorageError("create schema", err)
		}
	}

	_, err = tx.Exec(
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?), (?, ?)`,
		model.SettingTargetHoursPerDay, "8",
		model.SettingEfficiencyThreshold, "0.7",
	)
	if err != nil {
		return errors.NewStorageError("seed default settings", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit schema", err)
	}
	return nil
}

// expand substitutes the WHERE-clause slot in a shared query template.
func expand(query, where string) string {
	return strings.Replace(query, "%s", where, 1)
}
