package model

// DailyHours is the total logged time for one calendar date.
type DailyHours struct {
	Date          string  `db:"date" json:"date"` // YYYY-MM-DD
	TotalHours    float64 `db:"total_hours" json:"total_hours"`
	ActivityCount int     `db:"activity_count" json:"activity_count"`
}

// CategoryHours is the total logged time for one project category,
// computed over completed activities only.
type CategoryHours struct {
	Category      string  `db:"category" json:"category"`
	TotalHours    float64 `db:"total_hours" json:"total_hours"`
	ActivityCount int     `db:"activity_count" json:"activity_count"`
}

// ProjectStats summarizes logged time for a single project. Projects
// with no activities appear with zeroed aggregates.
type ProjectStats struct {
	ID               int64   `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Category         string  `db:"category" json:"category"`
	EstimatedHours   float64 `db:"estimated_hours" json:"estimated_hours"`
	Status           Status  `db:"status" json:"status"`
	TotalLoggedHours float64 `db:"total_logged_hours" json:"total_logged_hours"`
	ActivityCount    int     `db:"activity_count" json:"activity_count"`
	AvgDuration      float64 `db:"avg_duration" json:"avg_duration"`
}

// OverallStats summarizes the whole store.
type OverallStats struct {
	TotalProjects     int     `db:"total_projects" json:"total_projects"`
	ActiveProjects    int     `db:"active_projects" json:"active_projects"`
	TotalActivities   int     `db:"total_activities" json:"total_activities"`
	OngoingActivities int     `db:"ongoing_activities" json:"ongoing_activities"`
	TotalHours        float64 `db:"total_hours" json:"total_hours"`
	AvgDuration       float64 `db:"avg_duration" json:"avg_duration"`
	ActiveDays        int     `db:"active_days" json:"active_days"`
	AvgHoursPerDay    float64 `json:"avg_hours_per_day"`
}
