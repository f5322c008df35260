package model

// Recognized settings keys. Both are seeded with defaults when the
// schema is created, so reads normally succeed; the Default* constants
// cover a store created before seeding existed.
const (
	SettingTargetHoursPerDay   = "target_hours_per_day"
	SettingEfficiencyThreshold = "efficiency_threshold"
)

// Default values for the recognized settings.
const (
	DefaultTargetHoursPerDay   = 8.0
	DefaultEfficiencyThreshold = 0.7
)

// Setting is a key-value application setting.
type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}
