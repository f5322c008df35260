// Package parser provides timestamp parsing for Logbook CLI input.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
)

// ParseTimestamp parses a timestamp expression: "now", an RFC 3339 or
// "2006-01-02 15:04" literal, or a natural language phrase such as
// "yesterday 9am".
func ParseTimestamp(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewValidationErrorWithField(
			"time", input,
			"Could not parse time expression",
			"Use a format like '2025-01-15 09:00' or a phrase like 'yesterday 9am'")
	}
	return result.Time, nil
}
