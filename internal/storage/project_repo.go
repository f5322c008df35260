package storage

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

// ProjectRepo provides operations for Project entities.
type ProjectRepo struct {
	db *DB
}

// NewProjectRepo creates a new project repository.
func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// projectSelect is the enriched project query: every row carries the
// sum of its completed activities' durations, zero when there are none.
const projectSelect = `
	SELECT p.*,
	       COALESCE(SUM(a.duration_hours), 0) AS total_logged_hours
	FROM projects p
	LEFT JOIN activities a ON p.id = a.project_id
	%s
	GROUP BY p.id
	ORDER BY p.created_at DESC`

// Create inserts a new project and returns its id. The name must be
// non-empty and the estimate positive; full field validation is the
// caller's responsibility via the validate package.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) (int64, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return 0, errors.NewValidationError(
			"Project name is required",
			"Provide a project name")
	}
	if p.EstimatedHours <= 0 {
		return 0, errors.NewValidationError(
			"Estimated hours must be positive",
			"Provide an estimate greater than zero")
	}

	status := p.Status
	if status == "" {
		status = model.StatusActive
	}

	now := time.Now().UTC()
	res, err := r.db.db.ExecContext(ctx, `
		INSERT INTO projects (name, description, estimated_hours, category, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		name, p.Description, p.EstimatedHours, p.Category, status, now, now,
	)
	if err != nil {
		return 0, errors.NewStorageError("create project", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewStorageError("create project", err)
	}
	p.ID = id
	p.Name = name
	p.Status = status
	p.CreatedAt = now
	p.UpdatedAt = now
	return id, nil
}

// List retrieves all projects with their total logged hours, newest
// first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	query := expand(projectSelect, "")
	if err := r.db.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, errors.NewStorageError("list projects", err)
	}
	return projects, nil
}

// ListActive retrieves projects with status 'active' only.
func (r *ProjectRepo) ListActive(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	query := expand(projectSelect, "WHERE p.status = ?")
	err := r.db.db.SelectContext(ctx, &projects, query, model.StatusActive)
	if err != nil {
		return nil, errors.NewStorageError("list active projects", err)
	}
	return projects, nil
}

// GetByID retrieves a single project with its total logged hours.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	query := expand(projectSelect, "WHERE p.id = ?")
	err := r.db.db.GetContext(ctx, &p, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrProjectNotFound
	}
	if err != nil {
		return nil, errors.NewStorageError("get project", err)
	}
	return &p, nil
}

// Update replaces a project's fields and bumps its updated_at.
func (r *ProjectRepo) Update(ctx context.Context, p *model.Project) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.NewValidationError(
			"Project name is required",
			"Provide a project name")
	}
	if p.EstimatedHours <= 0 {
		return errors.NewValidationError(
			"Estimated hours must be positive",
			"Provide an estimate greater than zero")
	}

	now := time.Now().UTC()
	res, err := r.db.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, description = ?, estimated_hours = ?,
		    category = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		name, p.Description, p.EstimatedHours, p.Category, p.Status, now, p.ID,
	)
	if err != nil {
		return errors.NewStorageError("update project", err)
	}
	return checkAffected(res, errors.ErrProjectNotFound)
}

// UpdateStatus changes only a project's status.
func (r *ProjectRepo) UpdateStatus(ctx context.Context, id int64, status model.Status) error {
	res, err := r.db.db.ExecContext(ctx, `
		UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return errors.NewStorageError("update project status", err)
	}
	return checkAffected(res, errors.ErrProjectNotFound)
}

// Delete removes a project and every activity it owns as one atomic
// unit. Deleting a nonexistent id reports not-found.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.NewStorageError("begin delete project", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM activities WHERE project_id = ?", id); err != nil {
		return errors.NewStorageError("delete project activities", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return errors.NewStorageError("delete project", err)
	}
	if err := checkAffected(res, errors.ErrProjectNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit delete project", err)
	}
	return nil
}

// checkAffected translates "zero rows touched" into the given
// not-found sentinel.
func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.NewStorageError("check affected rows", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
