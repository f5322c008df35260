package storage

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

func TestStatsRepo_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepo(db)
	ctx := context.Background()

	overall, err := repo.OverallStatistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, overall.TotalProjects)
	assert.Zero(t, overall.TotalActivities)
	assert.Zero(t, overall.TotalHours)
	assert.Zero(t, overall.AvgHoursPerDay)

	daily, err := repo.DailyHours(ctx, 30)
	require.NoError(t, err)
	assert.Empty(t, daily)

	durations, err := repo.Durations(ctx)
	require.NoError(t, err)
	assert.Empty(t, durations)
}

func TestStatsRepo_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepo(db)
	projects := NewProjectRepo(db)
	activities := NewActivityRepo(db)
	ctx := context.Background()

	// Two projects with activities in recent days plus one idle project.
	seismic := model.NewProject("Shot Gather QC", "", 20, "Seismic Data Processing")
	seismicID, err := projects.Create(ctx, seismic)
	require.NoError(t, err)

	reporting := model.NewProject("Quarterly Report", "", 10, "Report Writing")
	reportingID, err := projects.Create(ctx, reporting)
	require.NoError(t, err)

	idle := model.NewProject("Not Started Yet", "", 5, "Other")
	idleID, err := projects.Create(ctx, idle)
	require.NoError(t, err)
	require.NoError(t, projects.UpdateStatus(ctx, idleID, model.StatusPaused))

	today := time.Now().UTC().Truncate(24 * time.Hour).Add(9 * time.Hour)
	yesterday := today.Add(-24 * time.Hour)

	mustLogActivity(t, db, seismicID, yesterday, 2*time.Hour)
	mustLogActivity(t, db, seismicID, today, 3*time.Hour)
	mustLogActivity(t, db, reportingID, today.Add(4*time.Hour), time.Hour)

	// One ongoing activity, excluded from every duration aggregate.
	_, err = activities.Create(ctx, model.NewActivity(seismicID, today.Add(6*time.Hour), ""))
	require.NoError(t, err)

	t.Run("overall", func(t *testing.T) {
		overall, err := repo.OverallStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, overall.TotalProjects)
		assert.Equal(t, 2, overall.ActiveProjects)
		assert.Equal(t, 4, overall.TotalActivities)
		assert.Equal(t, 1, overall.OngoingActivities)
		assert.InDelta(t, 6.0, overall.TotalHours, 1e-9)
		assert.InDelta(t, 2.0, overall.AvgDuration, 1e-9)
		assert.Equal(t, 2, overall.ActiveDays)
		assert.InDelta(t, 3.0, overall.AvgHoursPerDay, 1e-9)
	})

	t.Run("daily hours", func(t *testing.T) {
		daily, err := repo.DailyHours(ctx, 30)
		require.NoError(t, err)
		require.Len(t, daily, 2)
		assert.True(t, daily[0].Date < daily[1].Date, "oldest first")
		assert.InDelta(t, 2.0, daily[0].TotalHours, 1e-9)
		assert.InDelta(t, 4.0, daily[1].TotalHours, 1e-9)
		assert.Equal(t, 2, daily[1].ActivityCount)
	})

	t.Run("category distribution", func(t *testing.T) {
		categories, err := repo.CategoryDistribution(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2, "idle category has nothing completed")
		assert.Equal(t, "Seismic Data Processing", categories[0].Category)
		assert.InDelta(t, 5.0, categories[0].TotalHours, 1e-9)
		assert.Equal(t, "Report Writing", categories[1].Category)
		assert.InDelta(t, 1.0, categories[1].TotalHours, 1e-9)
	})

	t.Run("project statistics keep idle projects", func(t *testing.T) {
		stats, err := repo.ProjectStatistics(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 3)

		assert.Equal(t, seismicID, stats[0].ID, "most logged first")
		assert.InDelta(t, 5.0, stats[0].TotalLoggedHours, 1e-9)
		assert.Equal(t, 3, stats[0].ActivityCount, "ongoing counted as activity")

		var idleStats *model.ProjectStats
		for i := range stats {
			if stats[i].ID == idleID {
				idleStats = &stats[i]
			}
		}
		require.NotNil(t, idleStats)
		assert.Zero(t, idleStats.TotalLoggedHours)
		assert.Zero(t, idleStats.ActivityCount)
		assert.Zero(t, idleStats.AvgDuration)
	})

	t.Run("durations are ascending and complete", func(t *testing.T) {
		durations, err := repo.Durations(ctx)
		require.NoError(t, err)
		require.Len(t, durations, 3)
		assert.True(t, sort.Float64sAreSorted(durations))
		assert.InDelta(t, 1.0, durations[0], 1e-9)
		assert.InDelta(t, 3.0, durations[2], 1e-9)
	})
}

func TestStatsRepo_DailyHoursWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepo(db)
	projectID := mustCreateProject(t, db, "Window Check", 10)

	recent := time.Now().UTC().Add(-2 * 24 * time.Hour)
	old := time.Now().UTC().Add(-40 * 24 * time.Hour)
	mustLogActivity(t, db, projectID, recent, time.Hour)
	mustLogActivity(t, db, projectID, old, time.Hour)

	daily, err := repo.DailyHours(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, daily, 1, "activities older than the window are excluded")

	wide, err := repo.DailyHours(context.Background(), 60)
	require.NoError(t, err)
	assert.Len(t, wide, 2)
}
