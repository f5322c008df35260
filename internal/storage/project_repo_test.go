package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/metrics"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

func TestProjectRepo_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		p := model.NewProject("  Basin Model  ", "velocity model QC", 40, "Seismic Data Processing")
		id, err := repo.Create(ctx, p)
		require.NoError(t, err)
		assert.Positive(t, id)
		assert.Equal(t, "Basin Model", p.Name)
		assert.Equal(t, model.StatusActive, p.Status)
		assert.False(t, p.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Basin Model", got.Name)
		assert.Equal(t, "velocity model QC", got.Description)
		assert.InDelta(t, 40, got.EstimatedHours, 1e-9)
		assert.Zero(t, got.TotalLoggedHours, "new project has nothing logged")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := repo.Create(ctx, model.NewProject("   ", "", 10, "Other"))
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rejects non-positive estimate", func(t *testing.T) {
		_, err := repo.Create(ctx, model.NewProject("Valid Name", "", 0, "Other"))
		assert.True(t, errors.IsValidation(err))
	})
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewProjectRepo(db).GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, errors.ErrProjectNotFound)
}

func TestProjectRepo_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	idA := mustCreateProject(t, db, "Gravity Map", 20)
	idB := mustCreateProject(t, db, "Well Log Batch", 30)
	require.NoError(t, repo.UpdateStatus(ctx, idB, model.StatusPaused))

	t.Run("lists every project", func(t *testing.T) {
		projects, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("active filter excludes paused", func(t *testing.T) {
		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, idA, active[0].ID)
	})
}

func TestProjectRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	id := mustCreateProject(t, db, "Initial Name", 10)

	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	p.Name = "Renamed Survey"
	p.EstimatedHours = 25
	p.Category = "Field Measurement"
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Survey", got.Name)
	assert.InDelta(t, 25, got.EstimatedHours, 1e-9)
	assert.Equal(t, "Field Measurement", got.Category)

	t.Run("not found", func(t *testing.T) {
		missing := *p
		missing.ID = 9999
		assert.ErrorIs(t, repo.Update(ctx, &missing), errors.ErrProjectNotFound)
	})
}

func TestProjectRepo_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	id := mustCreateProject(t, db, "Resistivity Grid", 15)
	require.NoError(t, repo.UpdateStatus(ctx, id, model.StatusCompleted))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 9999, model.StatusActive),
		errors.ErrProjectNotFound)
}

func TestProjectRepo_Delete_Cascades(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepo(db)
	activities := NewActivityRepo(db)
	ctx := context.Background()

	projectID := mustCreateProject(t, db, "Short Lived", 10)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	activityID := mustLogActivity(t, db, projectID, start, 2*time.Hour)

	require.NoError(t, projects.Delete(ctx, projectID))

	_, err := projects.GetByID(ctx, projectID)
	assert.ErrorIs(t, err, errors.ErrProjectNotFound)
	_, err = activities.GetByID(ctx, activityID)
	assert.ErrorIs(t, err, errors.ErrActivityNotFound, "activities go with their project")

	assert.ErrorIs(t, projects.Delete(ctx, projectID), errors.ErrProjectNotFound)
}

// TestProjectRepo_TotalLoggedHours walks one project through two logged
// activities and checks the enrichment and the derived efficiency at
// each step.
func TestProjectRepo_TotalLoggedHours(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	id := mustCreateProject(t, db, "Processing Sprint", 10)
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	mustLogActivity(t, db, id, day, 2*time.Hour)
	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.TotalLoggedHours, 1e-9)
	efficiency := metrics.Efficiency(p.TotalLoggedHours, p.EstimatedHours)
	assert.InDelta(t, 20, efficiency, 1e-9)
	assert.Equal(t, metrics.LevelCritical, metrics.GetLevel(efficiency))

	mustLogActivity(t, db, id, day.Add(2*time.Hour), 8*time.Hour)
	p, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, p.TotalLoggedHours, 1e-9)
	efficiency = metrics.Efficiency(p.TotalLoggedHours, p.EstimatedHours)
	assert.InDelta(t, 100, efficiency, 1e-9)
	assert.Equal(t, metrics.LevelGood, metrics.GetLevel(efficiency))
}

// Ongoing activities carry no duration, so they never count toward the
// project's logged hours.
func TestProjectRepo_OngoingNotCounted(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	id := mustCreateProject(t, db, "Live Tracking", 10)
	a := model.NewActivity(id, time.Now().UTC().Add(-time.Hour), "")
	_, err := NewActivityRepo(db).Create(ctx, a)
	require.NoError(t, err)

	p, err := NewProjectRepo(db).GetByID(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, p.TotalLoggedHours)
}
