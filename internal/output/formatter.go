// Package output provides output formatting for Logbook.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Format represents the output format type.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Formatter handles output formatting.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		Format:    FormatCLI,
		ColorMode: ColorAuto,
	}
}

// IsColorEnabled returns true if color output is enabled.
func (f *Formatter) IsColorEnabled() bool {
	switch f.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if w, ok := f.Writer.(*os.File); ok {
			return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
		}
		return false
	}
}

// Print outputs formatted text.
func (f *Formatter) Print(a ...interface{}) {
	fmt.Fprint(f.Writer, a...)
}

// Println outputs formatted text with newline.
func (f *Formatter) Println(a ...interface{}) {
	fmt.Fprintln(f.Writer, a...)
}

// Printf outputs formatted text.
func (f *Formatter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSON outputs data as indented JSON.
func (f *Formatter) JSON(v interface{}) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatHours formats a duration given in fractional hours as "Xh Ym".
// NaN, zero, and negative values render as "0h 0m".
func FormatHours(hours float64) string {
	if math.IsNaN(hours) || hours <= 0 {
		return "0h 0m"
	}
	totalMinutes := int(hours * 60)
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// FormatElapsed formats the time elapsed since start as "Xh Ym".
func FormatElapsed(start time.Time) string {
	return FormatHours(time.Since(start).Hours())
}

// FormatPercentage formats a percentage with one decimal place. NaN
// renders as "0%".
func FormatPercentage(value float64) string {
	if math.IsNaN(value) {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", value)
}

// FormatNumber formats a number with the given number of decimals. NaN
// renders as "0".
func FormatNumber(value float64, decimals int) string {
	if math.IsNaN(value) {
		return "0"
	}
	if decimals == 0 {
		return fmt.Sprintf("%d", int(value))
	}
	return fmt.Sprintf("%.*f", decimals, value)
}

// FormatTime formats a time in the local timezone, or "-" for nil.
func FormatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// FormatDate formats a date only.
func FormatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Truncate shortens text to at most max characters, appending "..."
// when it was cut.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	if max <= 3 {
		return text[:max]
	}
	return text[:max-3] + "..."
}
