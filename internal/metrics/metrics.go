// Package metrics provides the derived-metric computations for Logbook:
// efficiency, progress, duration, and descriptive statistics over
// activity durations. Out-of-range numeric inputs degrade to zero
// results rather than errors; only structural violations (a bad time
// range) produce an error.
package metrics

import (
	"math"
	"time"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
)

// Level classifies an efficiency percentage.
type Level string

const (
	LevelCritical  Level = "critical"
	LevelWarning   Level = "warning"
	LevelGood      Level = "good"
	LevelExcellent Level = "excellent"
)

// Efficiency level thresholds, in percent.
const (
	ThresholdCritical = 50.0
	ThresholdWarning  = 80.0
	ThresholdGood     = 100.0
)

// normalize maps NaN and negative values to zero. All metric inputs
// pass through here once, so the individual functions can treat their
// arguments as ordinary non-negative numbers.
func normalize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Efficiency computes logged/estimated as a percentage. Missing or
// negative logged hours count as zero; a missing, zero, or NaN estimate
// yields 0 rather than dividing by zero. The result is unbounded above.
func Efficiency(loggedHours, estimatedHours float64) float64 {
	logged := normalize(loggedHours)
	estimated := normalize(estimatedHours)
	if estimated <= 0 {
		return 0
	}
	return logged / estimated * 100
}

// Progress returns the efficiency as a fraction clamped to [0, 1] for
// progress-bar display. Efficiency above 100% collapses to a full bar.
func Progress(loggedHours, estimatedHours float64) float64 {
	progress := Efficiency(loggedHours, estimatedHours) / 100
	return math.Min(math.Max(progress, 0), 1)
}

// GetLevel classifies an efficiency percentage into one of four levels.
// Exactly 80 and exactly 100 both fall in "good".
func GetLevel(efficiency float64) Level {
	switch {
	case efficiency < ThresholdCritical:
		return LevelCritical
	case efficiency < ThresholdWarning:
		return LevelWarning
	case efficiency <= ThresholdGood:
		return LevelGood
	default:
		return LevelExcellent
	}
}

// Duration computes the hours between start and end. The end must be
// strictly after the start; a zero or negative span is a validation
// error.
func Duration(start, end time.Time) (float64, error) {
	if !end.After(start) {
		return 0, errors.NewValidationErrorWithCause(
			"End time must be after start time",
			"Check that the end time is later than the start time",
			errors.ErrEndBeforeStart)
	}
	return end.Sub(start).Hours(), nil
}

// AveragePerDay computes mean hours per active day, or 0 when there are
// no active days.
func AveragePerDay(totalHours float64, activeDays int) float64 {
	if activeDays <= 0 {
		return 0
	}
	return totalHours / float64(activeDays)
}
