package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

func TestSettingRepo_Defaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)
	ctx := context.Background()

	target, err := repo.Get(ctx, model.SettingTargetHoursPerDay)
	require.NoError(t, err)
	assert.Equal(t, "8", target)

	threshold, err := repo.Get(ctx, model.SettingEfficiencyThreshold)
	require.NoError(t, err)
	assert.Equal(t, "0.7", threshold)
}

func TestSettingRepo_Get_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewSettingRepo(db).Get(context.Background(), "no_such_key")
	assert.ErrorIs(t, err, errors.ErrSettingNotFound)
}

func TestSettingRepo_GetFloat(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)
	ctx := context.Background()

	assert.InDelta(t, 8.0, repo.GetFloat(ctx, model.SettingTargetHoursPerDay, 99), 1e-9)
	assert.InDelta(t, 42.0, repo.GetFloat(ctx, "missing", 42), 1e-9)

	require.NoError(t, repo.Set(ctx, "broken", "not-a-number"))
	assert.InDelta(t, 7.0, repo.GetFloat(ctx, "broken", 7), 1e-9,
		"unparseable value falls back")
}

func TestSettingRepo_Set(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, model.SettingTargetHoursPerDay, "6"))
	got, err := repo.Get(ctx, model.SettingTargetHoursPerDay)
	require.NoError(t, err)
	assert.Equal(t, "6", got)

	require.NoError(t, repo.Set(ctx, "custom_key", "anything"))
	got, err = repo.Get(ctx, "custom_key")
	require.NoError(t, err)
	assert.Equal(t, "anything", got)
}

// Reopening the database must seed defaults with INSERT OR IGNORE only,
// never clobbering a value the user changed.
func TestSettingRepo_ReopenKeepsOverrides(t *testing.T) {
	path := t.TempDir() + "/logbook.db"
	ctx := context.Background()

	db, err := Open(Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, NewSettingRepo(db).Set(ctx, model.SettingTargetHoursPerDay, "5"))
	require.NoError(t, db.Close())

	db, err = Open(Options{Path: path})
	require.NoError(t, err)
	defer db.Close()

	got, err := NewSettingRepo(db).Get(ctx, model.SettingTargetHoursPerDay)
	require.NoError(t, err)
	assert.Equal(t, "5", got)
}

func TestSettingRepo_All(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)
	ctx := context.Background()

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "pristine store carries only the seeded defaults")

	require.NoError(t, repo.Set(ctx, "week_start", "monday"))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "monday", all["week_start"])
	assert.Len(t, all, 3)
}
