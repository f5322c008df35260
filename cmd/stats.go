package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/metrics"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/output"
)

// Stats command flags.
var (
	statsFlagDays int
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"stat"},
	Short:   "Show statistics and analysis",
	Long: `Show overall counters, per-project and per-category totals,
descriptive statistics over completed activity durations, and the
daily-hours trend for the look-back window.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsFlagDays, "days", 0,
		"Look-back window in days for daily aggregates (default 30)")
	rootCmd.AddCommand(statsCmd)
}

// statsReport bundles everything the stats command prints, shaped for
// the JSON output path.
type statsReport struct {
	Overall    *model.OverallStats   `json:"overall"`
	Projects   []model.ProjectStats  `json:"projects"`
	Categories []model.CategoryHours `json:"categories"`
	Daily      []model.DailyHours    `json:"daily"`
	Durations  metrics.Stats         `json:"duration_statistics"`
	TrendSlope float64               `json:"trend_slope"`
}

func runStats(cmd *cobra.Command, args []string) error {
	bg := context.Background()

	days := statsFlagDays
	if days <= 0 {
		days = ctx.Config.Display.DaysFilter
	}

	overall, err := ctx.StatsRepo.OverallStatistics(bg)
	if err != nil {
		return err
	}
	projects, err := ctx.StatsRepo.ProjectStatistics(bg)
	if err != nil {
		return err
	}
	categories, err := ctx.StatsRepo.CategoryDistribution(bg)
	if err != nil {
		return err
	}
	daily, err := ctx.StatsRepo.DailyHours(bg, days)
	if err != nil {
		return err
	}
	durations, err := ctx.StatsRepo.Durations(bg)
	if err != nil {
		return err
	}

	dailyTotals := make([]float64, len(daily))
	for i, d := range daily {
		dailyTotals[i] = d.TotalHours
	}
	slope, _ := metrics.Trend(dailyTotals)

	report := statsReport{
		Overall:    overall,
		Projects:   projects,
		Categories: categories,
		Daily:      daily,
		Durations:  metrics.Statistics(durations),
		TrendSlope: slope,
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(report)
	}

	printStatsReport(report, days)
	return nil
}

func printStatsReport(report statsReport, days int) {
	f := ctx.Formatter

	f.Println(f.Title("Overall"))
	f.Printf("  Projects:          %d (%d active)\n",
		report.Overall.TotalProjects, report.Overall.ActiveProjects)
	f.Printf("  Activities:        %d (%d ongoing)\n",
		report.Overall.TotalActivities, report.Overall.OngoingActivities)
	f.Printf("  Total logged:      %s\n", output.FormatHours(report.Overall.TotalHours))
	f.Printf("  Avg duration:      %s\n", output.FormatHours(report.Overall.AvgDuration))
	f.Printf("  Active days:       %d\n", report.Overall.ActiveDays)
	f.Printf("  Avg hours per day: %s\n", output.FormatNumber(report.Overall.AvgHoursPerDay, 2))

	if len(report.Projects) > 0 {
		f.Println()
		f.Println(f.Title("Projects"))
		f.Printf("  %-34s %9s %9s %7s  %s\n", "NAME", "LOGGED", "ESTIMATE", "EFF", "LEVEL")
		for _, p := range report.Projects {
			efficiency := metrics.Efficiency(p.TotalLoggedHours, p.EstimatedHours)
			f.Printf("  %-34s %9s %9s %7s  %s\n",
				output.Truncate(p.Name, 34),
				output.FormatHours(p.TotalLoggedHours),
				output.FormatHours(p.EstimatedHours),
				output.FormatPercentage(efficiency),
				f.LevelLabel(metrics.GetLevel(efficiency)),
			)
		}
	}

	if len(report.Categories) > 0 {
		f.Println()
		f.Println(f.Title("Categories"))
		for _, c := range report.Categories {
			f.Printf("  %-28s %9s  (%d activities)\n",
				c.Category, output.FormatHours(c.TotalHours), c.ActivityCount)
		}
	}

	if report.Durations.Count > 0 {
		s := report.Durations
		f.Println()
		f.Println(f.Title("Duration statistics"))
		f.Printf("  Count: %d  Mean: %s  Median: %s  Std: %s\n",
			s.Count,
			output.FormatNumber(s.Mean, 2),
			output.FormatNumber(s.Median, 2),
			output.FormatNumber(s.Std, 2))
		f.Printf("  Min: %s  Q1: %s  Q3: %s  Max: %s  IQR: %s\n",
			output.FormatNumber(s.Min, 2),
			output.FormatNumber(s.Q1, 2),
			output.FormatNumber(s.Q3, 2),
			output.FormatNumber(s.Max, 2),
			output.FormatNumber(s.IQR, 2))
		f.Printf("  Skewness: %s  Kurtosis: %s\n",
			output.FormatNumber(s.Skewness, 3),
			output.FormatNumber(s.Kurtosis, 3))
	}

	if len(report.Daily) > 0 {
		f.Println()
		f.Printf("%s (last %d days)\n", f.Title("Daily hours"), days)
		for _, d := range report.Daily {
			f.Printf("  %s  %9s  (%d activities)\n",
				d.Date, output.FormatHours(d.TotalHours), d.ActivityCount)
		}
		trend := "stable"
		switch {
		case report.TrendSlope > 0.05:
			trend = "rising"
		case report.TrendSlope < -0.05:
			trend = "falling"
		}
		f.Printf("  Trend: %s (slope %s h/day)\n",
			trend, output.FormatNumber(report.TrendSlope, 3))
	}
}
