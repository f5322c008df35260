package model

import "time"

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Statuses lists the valid project statuses.
var Statuses = []Status{StatusActive, StatusCompleted, StatusPaused}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// Categories is the fixed set of project categories.
var Categories = []string{
	"Seismic Data Processing",
	"Gravity Data Interpretation",
	"Resistivity Modeling",
	"Well Log Analysis",
	"Field Measurement",
	"Report Writing",
	"Meeting/Discussion",
	"Other",
}

// IsCategory reports whether category is a member of Categories.
func IsCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Project represents a tracked project with an estimated-hours budget.
type Project struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description,omitempty"`
	EstimatedHours float64   `db:"estimated_hours" json:"estimated_hours"`
	Category       string    `db:"category" json:"category"`
	Status         Status    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`

	// TotalLoggedHours is the sum of the project's completed activity
	// durations. Populated by queries, zero for a project with no
	// activities.
	TotalLoggedHours float64 `db:"total_logged_hours" json:"total_logged_hours"`
}

// NewProject creates a project in the active state.
func NewProject(name, description string, estimatedHours float64, category string) *Project {
	return &Project{
		Name:           name,
		Description:    description,
		EstimatedHours: estimatedHours,
		Category:       category,
		Status:         StatusActive,
	}
}
