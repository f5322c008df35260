package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/metrics"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

// Styles for CLI output.
var (
	colorSuccess = lipgloss.Color("#28A745") // Green
	colorInfo    = lipgloss.Color("#007BFF") // Blue
	colorWarning = lipgloss.Color("#FFC107") // Yellow
	colorDanger  = lipgloss.Color("#DC3545") // Red
	colorTeal    = lipgloss.Color("#17A2B8") // Teal
	colorMuted   = lipgloss.Color("#6B7280") // Gray

	styleTitle = lipgloss.NewStyle().
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)

	statusStyles = map[model.Status]lipgloss.Style{
		model.StatusActive:    lipgloss.NewStyle().Foreground(colorSuccess),
		model.StatusCompleted: lipgloss.NewStyle().Foreground(colorInfo),
		model.StatusPaused:    lipgloss.NewStyle().Foreground(colorWarning),
	}

	levelStyles = map[metrics.Level]lipgloss.Style{
		metrics.LevelCritical:  lipgloss.NewStyle().Foreground(colorDanger),
		metrics.LevelWarning:   lipgloss.NewStyle().Foreground(colorWarning),
		metrics.LevelGood:      lipgloss.NewStyle().Foreground(colorSuccess),
		metrics.LevelExcellent: lipgloss.NewStyle().Foreground(colorTeal),
	}
)

// levelLabels are the display labels for each efficiency level.
var levelLabels = map[metrics.Level]string{
	metrics.LevelCritical:  "Critical",
	metrics.LevelWarning:   "Needs Attention",
	metrics.LevelGood:      "Good",
	metrics.LevelExcellent: "Above Target",
}

// statusLabels are the display labels for each project status.
var statusLabels = map[model.Status]string{
	model.StatusActive:    "Active",
	model.StatusCompleted: "Completed",
	model.StatusPaused:    "Paused",
}

// StatusLabel renders a project status, colored when enabled.
func (f *Formatter) StatusLabel(status model.Status) string {
	label, ok := statusLabels[status]
	if !ok {
		label = string(status)
	}
	if f.IsColorEnabled() {
		if style, ok := statusStyles[status]; ok {
			return style.Render(label)
		}
	}
	return label
}

// LevelLabel renders an efficiency level, colored when enabled.
func (f *Formatter) LevelLabel(level metrics.Level) string {
	label, ok := levelLabels[level]
	if !ok {
		label = string(level)
	}
	if f.IsColorEnabled() {
		if style, ok := levelStyles[level]; ok {
			return style.Render(label)
		}
	}
	return label
}

// Title renders a bold section title.
func (f *Formatter) Title(text string) string {
	if f.IsColorEnabled() {
		return styleTitle.Render(text)
	}
	return text
}

// Muted renders secondary text.
func (f *Formatter) Muted(text string) string {
	if f.IsColorEnabled() {
		return styleMuted.Render(text)
	}
	return text
}

// Success renders a success message.
func (f *Formatter) Success(text string) string {
	if f.IsColorEnabled() {
		return styleSuccess.Render(text)
	}
	return text
}

// Error renders an error message.
func (f *Formatter) Error(text string) string {
	if f.IsColorEnabled() {
		return styleError.Render(text)
	}
	return text
}
