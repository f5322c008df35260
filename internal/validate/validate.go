// Package validate provides input validation for Logbook records.
// Every validator is a pure function returning nil for valid input and
// a ValidationError describing the first violated constraint otherwise.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

const (
	// MinProjectNameLength is the minimum length for a project name.
	MinProjectNameLength = 3
	// MaxProjectNameLength is the maximum length for a project name.
	MaxProjectNameLength = 100
	// MinEstimatedHours is the smallest accepted estimate (30 minutes).
	MinEstimatedHours = 0.5
	// MaxEstimatedHours is the largest accepted estimate.
	MaxEstimatedHours = 1000
	// MaxNotesLength is the maximum length for activity notes.
	MaxNotesLength = 500
	// MaxDescriptionLength is the maximum length for a project description.
	MaxDescriptionLength = 500
)

// ProjectName validates a project name: required, 3-100 characters
// after trimming.
func ProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.NewValidationError(
			"Project name is required",
			"Provide a project name")
	}
	if utf8.RuneCountInString(trimmed) < MinProjectNameLength {
		return errors.NewValidationErrorWithField("name", trimmed,
			"Project name too short",
			"Project names must be at least 3 characters")
	}
	if utf8.RuneCountInString(trimmed) > MaxProjectNameLength {
		return errors.NewValidationErrorWithField("name", trimmed,
			"Project name too long",
			"Project names must be 100 characters or fewer")
	}
	return nil
}

// EstimatedHours validates a project's estimated hours: 0.5 to 1000.
func EstimatedHours(hours float64) error {
	if hours < MinEstimatedHours || hours > MaxEstimatedHours {
		return errors.NewValidationError(
			"Estimated hours must be between 0.5 and 1000",
			"Provide an estimate between 30 minutes and 1000 hours")
	}
	return nil
}

// Category validates membership in the fixed category set.
func Category(category string) error {
	if !model.IsCategory(category) {
		return errors.NewValidationErrorWithField("category", category,
			"Unknown category",
			"Use one of: "+strings.Join(model.Categories, ", "))
	}
	return nil
}

// Status validates a project status.
func Status(status model.Status) error {
	if !status.IsValid() {
		return errors.NewValidationErrorWithField("status", string(status),
			"Unknown status",
			"Use one of: active, completed, paused")
	}
	return nil
}

// TimeRange validates an activity's time range. A nil end means the
// activity is ongoing, which is always valid; otherwise end must be
// strictly after start (zero-duration activities are rejected).
func TimeRange(start time.Time, end *time.Time) error {
	if end == nil {
		return nil
	}
	if !end.After(start) {
		return errors.NewValidationErrorWithCause(
			"End time must be after start time",
			"Check that the end time is later than the start time",
			errors.ErrEndBeforeStart)
	}
	return nil
}

// Notes validates activity notes: at most 500 characters.
func Notes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return errors.NewValidationError(
			"Notes too long",
			"Notes must be 500 characters or fewer")
	}
	return nil
}

// Description validates a project description: at most 500 characters.
func Description(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return errors.NewValidationError(
			"Description too long",
			"Descriptions must be 500 characters or fewer")
	}
	return nil
}

// Project validates a full project record and returns every violated
// constraint, not just the first.
func Project(name string, estimatedHours float64, category string) []error {
	var errs []error
	if err := ProjectName(name); err != nil {
		errs = append(errs, err)
	}
	if err := EstimatedHours(estimatedHours); err != nil {
		errs = append(errs, err)
	}
	if err := Category(category); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// Activity validates a full activity record and returns every violated
// constraint.
func Activity(projectID int64, start time.Time, end *time.Time, notes string) []error {
	var errs []error
	if projectID <= 0 {
		errs = append(errs, errors.NewValidationErrorWithCause(
			"Project is required",
			"Select the project this activity belongs to",
			errors.ErrProjectRequired))
	}
	if err := TimeRange(start, end); err != nil {
		errs = append(errs, err)
	}
	if err := Notes(notes); err != nil {
		errs = append(errs, err)
	}
	return errs
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Sanitize trims a string and collapses internal whitespace runs to a
// single space.
func Sanitize(text string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(text), " ")
}
