// Package config provides centralized configuration for Logbook
// runtime values.
package config

import (
	"os"
)

// EnvDatabase is the environment variable overriding the database
// path. The value ":memory:" selects an in-memory store.
const EnvDatabase = "LOGBOOK_DATABASE"

// Display holds display-related defaults.
type Display struct {
	// DaysFilter is the default look-back window for daily aggregates.
	DaysFilter int
	// TruncateNotes is the column width notes are shortened to in
	// list output.
	TruncateNotes int
}

// Config holds runtime configuration values.
type Config struct {
	// DatabasePath is the SQLite file path. Empty means the XDG
	// default; ":memory:" means an in-memory store.
	DatabasePath string

	Display Display
}

// Default returns the default configuration with the environment
// override applied.
func Default() Config {
	cfg := Config{
		Display: Display{
			DaysFilter:    30,
			TruncateNotes: 50,
		},
	}
	if path := os.Getenv(EnvDatabase); path != "" {
		cfg.DatabasePath = path
	}
	return cfg
}
