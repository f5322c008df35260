package model

import "time"

// Activity represents a logged work session against a project.
// An activity with no end time is ongoing; its duration is undefined
// until it is ended.
type Activity struct {
	ID            int64      `db:"id" json:"id"`
	ProjectID     int64      `db:"project_id" json:"project_id"`
	StartTime     time.Time  `db:"start_time" json:"start_time"`
	EndTime       *time.Time `db:"end_time" json:"end_time,omitempty"`
	DurationHours *float64   `db:"duration_hours" json:"duration_hours,omitempty"`
	Notes         string     `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`

	// ProjectName and ProjectCategory come from the owning project via
	// join; they are not stored on the activity row.
	ProjectName     string `db:"project_name" json:"project_name,omitempty"`
	ProjectCategory string `db:"project_category" json:"project_category,omitempty"`
}

// IsOngoing reports whether the activity has not been ended yet.
func (a *Activity) IsOngoing() bool {
	return a.EndTime == nil
}

// Elapsed returns the time spent so far: the stored duration for a
// completed activity, or the time since start for an ongoing one.
func (a *Activity) Elapsed(now time.Time) time.Duration {
	if a.IsOngoing() {
		return now.Sub(a.StartTime)
	}
	return a.EndTime.Sub(a.StartTime)
}

// NewActivity creates an ongoing activity starting at start.
func NewActivity(projectID int64, start time.Time, notes string) *Activity {
	return &Activity{
		ProjectID: projectID,
		StartTime: start,
		Notes:     notes,
	}
}
