package storage

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

// SettingRepo provides operations for the settings key-value table.
type SettingRepo struct {
	db *DB
}

// NewSettingRepo creates a new settings repository.
func NewSettingRepo(db *DB) *SettingRepo {
	return &SettingRepo{db: db}
}

// Get retrieves a setting value by key.
func (r *SettingRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.db.GetContext(ctx, &value,
		"SELECT value FROM settings WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return "", errors.ErrSettingNotFound
	}
	if err != nil {
		return "", errors.NewStorageError("get setting", err)
	}
	return value, nil
}

// GetFloat retrieves a setting parsed as a float, falling back to
// fallback when the key is missing or not numeric.
func (r *SettingRepo) GetFloat(ctx context.Context, key string, fallback float64) float64 {
	value, err := r.Get(ctx, key)
	if err != nil {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

// Set stores a setting, replacing any existing value for the key.
func (r *SettingRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return errors.NewStorageError("set setting", err)
	}
	return nil
}

// All retrieves every setting as a key-value map.
func (r *SettingRepo) All(ctx context.Context) (map[string]string, error) {
	var rows []model.Setting
	err := r.db.db.SelectContext(ctx, &rows, "SELECT key, value FROM settings")
	if err != nil {
		return nil, errors.NewStorageError("list settings", err)
	}
	settings := make(map[string]string, len(rows))
	for _, s := range rows {
		settings[s.Key] = s.Value
	}
	return settings, nil
}
