// Package runtime provides the application runtime context for Logbook.
package runtime

import (
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/config"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/output"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter
	Config    config.Config

	// Repositories
	ProjectRepo  *storage.ProjectRepo
	ActivityRepo *storage.ActivityRepo
	StatsRepo    *storage.StatsRepo
	SettingRepo  *storage.SettingRepo

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context. The database location resolves in
// order: an explicit path in opts, then LOGBOOK_DATABASE, then the XDG
// default.
func New(opts Options) (*Context, error) {
	cfg := config.Default()
	fromEnv := cfg.DatabasePath != "" && !opts.InMemory &&
		(opts.DBPath == "" || opts.DBPath == storage.DefaultPath())
	if fromEnv {
		if cfg.DatabasePath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = cfg.DatabasePath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:           db,
		Formatter:    formatter,
		Config:       cfg,
		ProjectRepo:  storage.NewProjectRepo(db),
		ActivityRepo: storage.NewActivityRepo(db),
		StatsRepo:    storage.NewStatsRepo(db),
		SettingRepo:  storage.NewSettingRepo(db),
		Debug:        opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
