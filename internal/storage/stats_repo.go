package storage

import (
	"context"
	"fmt"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/metrics"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

// StatsRepo provides the aggregate queries feeding the metrics and
// analysis views. Aggregates over durations count completed activities
// only; ongoing activities have no duration yet.
type StatsRepo struct {
	db *DB
}

// NewStatsRepo creates a new statistics repository.
func NewStatsRepo(db *DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// DailyHours returns per-day totals of completed activity hours over
// the last days calendar days, grouped by the date the activity
// started, oldest first.
func (r *StatsRepo) DailyHours(ctx context.Context, days int) ([]model.DailyHours, error) {
	var rows []model.DailyHours
	err := r.db.db.SelectContext(ctx, &rows, `
		SELECT DATE(start_time) AS date,
		       SUM(duration_hours) AS total_hours,
		       COUNT(*) AS activity_count
		FROM activities
		WHERE duration_hours IS NOT NULL
		  AND start_time >= DATE('now', ?)
		GROUP BY DATE(start_time)
		ORDER BY date`,
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return nil, errors.NewStorageError("daily hours", err)
	}
	return rows, nil
}

// CategoryDistribution returns total completed hours per project
// category, largest first.
func (r *StatsRepo) CategoryDistribution(ctx context.Context) ([]model.CategoryHours, error) {
	var rows []model.CategoryHours
	err := r.db.db.SelectContext(ctx, &rows, `
		SELECT p.category,
		       SUM(a.duration_hours) AS total_hours,
		       COUNT(a.id) AS activity_count
		FROM activities a
		JOIN projects p ON a.project_id = p.id
		WHERE a.duration_hours IS NOT NULL
		GROUP BY p.category
		ORDER BY total_hours DESC`,
	)
	if err != nil {
		return nil, errors.NewStorageError("category distribution", err)
	}
	return rows, nil
}

// ProjectStatistics returns per-project aggregates, most-logged first.
// The left join keeps projects with no activities in the result with
// zeroed aggregates.
func (r *StatsRepo) ProjectStatistics(ctx context.Context) ([]model.ProjectStats, error) {
	var rows []model.ProjectStats
	err := r.db.db.SelectContext(ctx, &rows, `
		SELECT p.id, p.name, p.category, p.estimated_hours, p.status,
		       COALESCE(SUM(a.duration_hours), 0) AS total_logged_hours,
		       COUNT(a.id) AS activity_count,
		       COALESCE(AVG(a.duration_hours), 0) AS avg_duration
		FROM projects p
		LEFT JOIN activities a ON p.id = a.project_id
		GROUP BY p.id
		ORDER BY total_logged_hours DESC`,
	)
	if err != nil {
		return nil, errors.NewStorageError("project statistics", err)
	}
	return rows, nil
}

// OverallStatistics returns store-wide counters and averages.
func (r *StatsRepo) OverallStatistics(ctx context.Context) (*model.OverallStats, error) {
	var stats model.OverallStats
	err := r.db.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM projects) AS total_projects,
			(SELECT COUNT(*) FROM projects WHERE status = 'active') AS active_projects,
			(SELECT COUNT(*) FROM activities) AS total_activities,
			(SELECT COUNT(*) FROM activities WHERE end_time IS NULL) AS ongoing_activities,
			(SELECT COALESCE(SUM(duration_hours), 0) FROM activities) AS total_hours,
			(SELECT COALESCE(AVG(duration_hours), 0) FROM activities
			 WHERE duration_hours IS NOT NULL) AS avg_duration,
			(SELECT COUNT(DISTINCT DATE(start_time)) FROM activities) AS active_days`,
	)
	if err != nil {
		return nil, errors.NewStorageError("overall statistics", err)
	}
	stats.AvgHoursPerDay = metrics.AveragePerDay(stats.TotalHours, stats.ActiveDays)
	return &stats, nil
}

// Durations returns every positive completed duration in ascending
// order, the sample array for descriptive statistics.
func (r *StatsRepo) Durations(ctx context.Context) ([]float64, error) {
	var durations []float64
	err := r.db.db.SelectContext(ctx, &durations, `
		SELECT duration_hours FROM activities
		WHERE duration_hours IS NOT NULL AND duration_hours > 0
		ORDER BY duration_hours`,
	)
	if err != nil {
		return nil, errors.NewStorageError("durations", err)
	}
	return durations, nil
}
