package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/metrics"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

// ActivityRepo provides operations for Activity entities.
type ActivityRepo struct {
	db *DB
}

// NewActivityRepo creates a new activity repository.
func NewActivityRepo(db *DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// activitySelect joins each activity with its project's name and
// category, newest start first.
const activitySelect = `
	SELECT a.*,
	       p.name AS project_name,
	       p.category AS project_category
	FROM activities a
	JOIN projects p ON a.project_id = p.id
	%s
	ORDER BY a.start_time DESC`

// Create inserts a new activity and returns its id. With an end time
// the activity is created completed and its duration is computed and
// stored up front; without one it is created ongoing.
func (r *ActivityRepo) Create(ctx context.Context, a *model.Activity) (int64, error) {
	if a.ProjectID <= 0 {
		return 0, errors.NewValidationErrorWithCause(
			"Project is required",
			"Select the project this activity belongs to",
			errors.ErrProjectRequired)
	}

	var duration *float64
	if a.EndTime != nil {
		d, err := metrics.Duration(a.StartTime, *a.EndTime)
		if err != nil {
			return 0, err
		}
		duration = &d
	}

	now := time.Now().UTC()
	res, err := r.db.db.ExecContext(ctx, `
		INSERT INTO activities (project_id, start_time, end_time, duration_hours, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ProjectID, a.StartTime.UTC(), utcOrNil(a.EndTime), duration, a.Notes, now,
	)
	if err != nil {
		return 0, errors.NewStorageError("create activity", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewStorageError("create activity", err)
	}
	a.ID = id
	a.DurationHours = duration
	a.CreatedAt = now
	return id, nil
}

// List retrieves all activities joined with project info.
func (r *ActivityRepo) List(ctx context.Context) ([]model.Activity, error) {
	return r.selectActivities(ctx, "", nil, "list activities")
}

// ListByProject retrieves the activities owned by one project.
func (r *ActivityRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Activity, error) {
	return r.selectActivities(ctx, "WHERE a.project_id = ?",
		[]interface{}{projectID}, "list project activities")
}

// ListOngoing retrieves activities that have not been ended.
func (r *ActivityRepo) ListOngoing(ctx context.Context) ([]model.Activity, error) {
	return r.selectActivities(ctx, "WHERE a.end_time IS NULL", nil, "list ongoing activities")
}

// GetByID retrieves a single activity joined with project info.
func (r *ActivityRepo) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	var a model.Activity
	query := expand(activitySelect, "WHERE a.id = ?")
	err := r.db.db.GetContext(ctx, &a, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrActivityNotFound
	}
	if err != nil {
		return nil, errors.NewStorageError("get activity", err)
	}
	return &a, nil
}

// End transitions an ongoing activity to completed, computing and
// storing its duration. Ending an activity twice fails with a conflict
// and leaves the stored end time and duration unchanged.
func (r *ActivityRepo) End(ctx context.Context, id int64, endTime time.Time) error {
	tx, err := r.db.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.NewStorageError("begin end activity", err)
	}
	defer tx.Rollback()

	// Re-fetch inside the transaction so a concurrent or repeated end
	// cannot slip through between the check and the update.
	var row struct {
		StartTime time.Time  `db:"start_time"`
		EndTime   *time.Time `db:"end_time"`
	}
	err = tx.GetContext(ctx, &row,
		"SELECT start_time, end_time FROM activities WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return errors.ErrActivityNotFound
	}
	if err != nil {
		return errors.NewStorageError("fetch activity", err)
	}

	if row.EndTime != nil {
		return errors.NewConflictError(
			"Activity has already been ended", errors.ErrActivityEnded)
	}

	duration, err := metrics.Duration(row.StartTime, endTime)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE activities
		SET end_time = ?, duration_hours = ?
		WHERE id = ? AND end_time IS NULL`,
		endTime.UTC(), duration, id,
	)
	if err != nil {
		return errors.NewStorageError("end activity", err)
	}
	if err := checkAffected(res, errors.ErrActivityNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit end activity", err)
	}
	return nil
}

// Update replaces an activity's project, time range, and notes. The
// end time may be cleared to re-open the activity; the stored duration
// always tracks the new time range.
func (r *ActivityRepo) Update(ctx context.Context, a *model.Activity) error {
	if a.ProjectID <= 0 {
		return errors.NewValidationErrorWithCause(
			"Project is required",
			"Select the project this activity belongs to",
			errors.ErrProjectRequired)
	}

	var duration *float64
	if a.EndTime != nil {
		d, err := metrics.Duration(a.StartTime, *a.EndTime)
		if err != nil {
			return err
		}
		duration = &d
	}

	res, err := r.db.db.ExecContext(ctx, `
		UPDATE activities
		SET project_id = ?, start_time = ?, end_time = ?,
		    duration_hours = ?, notes = ?
		WHERE id = ?`,
		a.ProjectID, a.StartTime.UTC(), utcOrNil(a.EndTime), duration, a.Notes, a.ID,
	)
	if err != nil {
		return errors.NewStorageError("update activity", err)
	}
	if err := checkAffected(res, errors.ErrActivityNotFound); err != nil {
		return err
	}
	a.DurationHours = duration
	return nil
}

// Delete removes an activity.
func (r *ActivityRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.db.ExecContext(ctx, "DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return errors.NewStorageError("delete activity", err)
	}
	return checkAffected(res, errors.ErrActivityNotFound)
}

func (r *ActivityRepo) selectActivities(ctx context.Context, where string, args []interface{}, op string) ([]model.Activity, error) {
	var activities []model.Activity
	query := expand(activitySelect, where)
	if err := r.db.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, errors.NewStorageError(op, err)
	}
	return activities, nil
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
