package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/logging"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/output"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/parser"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/validate"
)

// Activity command flags.
var (
	activityFlagProject int64
	activityFlagStart   string
	activityFlagEnd     string
	activityFlagAt      string
	activityFlagNotes   string
	activityFlagOngoing bool
)

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"act", "a"},
	Short:   "Manage work activities",
}

var activityStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an ongoing activity",
	Long: `Start tracking an ongoing activity against a project.

Examples:
  logbook activity start --project 1
  logbook activity start --project 1 --start "9am" --notes "picking horizons"`,
	RunE: runActivityStart,
}

var activityLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a completed activity with start and end times",
	Long: `Log a completed work session. The end time must be after the
start time; the duration is computed and stored.

Examples:
  logbook activity log --project 1 --start "2025-01-15 09:00" --end "2025-01-15 11:00"`,
	RunE: runActivityLog,
}

var activityEndCmd = &cobra.Command{
	Use:     "end ID",
	Aliases: []string{"stop"},
	Short:   "End an ongoing activity",
	Args:    cobra.ExactArgs(1),
	RunE:    runActivityEnd,
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities",
	RunE:    runActivityList,
}

var activityUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an activity",
	Long: `Update an activity's project, time range, or notes. Passing
--end "" clears the end time and re-opens the activity.`,
	Args: cobra.ExactArgs(1),
	RunE: runActivityUpdate,
}

var activityDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an activity",
	Args:    cobra.ExactArgs(1),
	RunE:    runActivityDelete,
}

func init() {
	activityStartCmd.Flags().Int64VarP(&activityFlagProject, "project", "p", 0, "Project id (required)")
	activityStartCmd.Flags().StringVar(&activityFlagStart, "start", "now", "Start time")
	activityStartCmd.Flags().StringVar(&activityFlagNotes, "notes", "", "Activity notes")
	activityStartCmd.MarkFlagRequired("project")

	activityLogCmd.Flags().Int64VarP(&activityFlagProject, "project", "p", 0, "Project id (required)")
	activityLogCmd.Flags().StringVar(&activityFlagStart, "start", "", "Start time (required)")
	activityLogCmd.Flags().StringVar(&activityFlagEnd, "end", "", "End time (required)")
	activityLogCmd.Flags().StringVar(&activityFlagNotes, "notes", "", "Activity notes")
	activityLogCmd.MarkFlagRequired("project")
	activityLogCmd.MarkFlagRequired("start")
	activityLogCmd.MarkFlagRequired("end")

	activityEndCmd.Flags().StringVar(&activityFlagAt, "at", "now", "End time")

	activityListCmd.Flags().Int64VarP(&activityFlagProject, "project", "p", 0, "Filter by project id")
	activityListCmd.Flags().BoolVar(&activityFlagOngoing, "ongoing", false, "Show ongoing activities only")

	activityUpdateCmd.Flags().Int64VarP(&activityFlagProject, "project", "p", 0, "New project id")
	activityUpdateCmd.Flags().StringVar(&activityFlagStart, "start", "", "New start time")
	activityUpdateCmd.Flags().StringVar(&activityFlagEnd, "end", "", "New end time (empty to re-open)")
	activityUpdateCmd.Flags().StringVar(&activityFlagNotes, "notes", "", "New notes")

	activityCmd.AddCommand(activityStartCmd)
	activityCmd.AddCommand(activityLogCmd)
	activityCmd.AddCommand(activityEndCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityUpdateCmd)
	activityCmd.AddCommand(activityDeleteCmd)
	rootCmd.AddCommand(activityCmd)
}

func runActivityStart(cmd *cobra.Command, args []string) error {
	start, err := parser.ParseTimestamp(activityFlagStart, time.Now())
	if err != nil {
		return err
	}

	notes := validate.Sanitize(activityFlagNotes)
	if errs := validate.Activity(activityFlagProject, start, nil, notes); len(errs) > 0 {
		return errors.Join(errs...)
	}

	// The project must exist before logging against it.
	if _, err := ctx.ProjectRepo.GetByID(context.Background(), activityFlagProject); err != nil {
		return err
	}

	a := model.NewActivity(activityFlagProject, start, notes)
	id, err := ctx.ActivityRepo.Create(context.Background(), a)
	if err != nil {
		return err
	}

	logging.DebugLog("activity started",
		logging.KeyActivityID, id, logging.KeyProjectID, activityFlagProject)
	ctx.Formatter.Println(ctx.Formatter.Success("Activity started"), "- id", id)
	return nil
}

func runActivityLog(cmd *cobra.Command, args []string) error {
	now := time.Now()
	start, err := parser.ParseTimestamp(activityFlagStart, now)
	if err != nil {
		return err
	}
	end, err := parser.ParseTimestamp(activityFlagEnd, now)
	if err != nil {
		return err
	}

	notes := validate.Sanitize(activityFlagNotes)
	if errs := validate.Activity(activityFlagProject, start, &end, notes); len(errs) > 0 {
		return errors.Join(errs...)
	}

	if _, err := ctx.ProjectRepo.GetByID(context.Background(), activityFlagProject); err != nil {
		return err
	}

	a := model.NewActivity(activityFlagProject, start, notes)
	a.EndTime = &end
	id, err := ctx.ActivityRepo.Create(context.Background(), a)
	if err != nil {
		return err
	}

	ctx.Formatter.Println(ctx.Formatter.Success("Activity logged"),
		"- id", id, "-", output.FormatHours(*a.DurationHours))
	return nil
}

func runActivityEnd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	end, err := parser.ParseTimestamp(activityFlagAt, time.Now())
	if err != nil {
		return err
	}

	if err := ctx.ActivityRepo.End(context.Background(), id, end); err != nil {
		return err
	}

	a, err := ctx.ActivityRepo.GetByID(context.Background(), id)
	if err != nil {
		return err
	}

	logging.DebugLog("activity ended", logging.KeyActivityID, id)
	ctx.Formatter.Println(ctx.Formatter.Success("Activity ended"),
		"-", output.FormatHours(*a.DurationHours))
	return nil
}

func runActivityList(cmd *cobra.Command, args []string) error {
	var (
		activities []model.Activity
		err        error
	)
	switch {
	case activityFlagOngoing:
		activities, err = ctx.ActivityRepo.ListOngoing(context.Background())
	case activityFlagProject > 0:
		activities, err = ctx.ActivityRepo.ListByProject(context.Background(), activityFlagProject)
	default:
		activities, err = ctx.ActivityRepo.List(context.Background())
	}
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(activities)
	}

	f := ctx.Formatter
	if len(activities) == 0 {
		f.Println("No activities yet.")
		return nil
	}

	f.Printf("%-4s %-24s %-17s %-17s %8s  %s\n",
		"ID", "PROJECT", "START", "END", "HOURS", "NOTES")
	for _, a := range activities {
		duration := "-"
		if a.DurationHours != nil {
			duration = output.FormatHours(*a.DurationHours)
		} else {
			duration = "ongoing"
		}
		f.Printf("%-4d %-24s %-17s %-17s %8s  %s\n",
			a.ID,
			output.Truncate(a.ProjectName, 24),
			output.FormatTime(&a.StartTime),
			output.FormatTime(a.EndTime),
			duration,
			output.Truncate(a.Notes, ctx.Config.Display.TruncateNotes),
		)
	}
	return nil
}

func runActivityUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := ctx.ActivityRepo.GetByID(context.Background(), id)
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.Flags().Changed("project") {
		a.ProjectID = activityFlagProject
	}
	if cmd.Flags().Changed("start") {
		start, err := parser.ParseTimestamp(activityFlagStart, now)
		if err != nil {
			return err
		}
		a.StartTime = start
	}
	if cmd.Flags().Changed("end") {
		if activityFlagEnd == "" {
			// Clearing the end time re-opens the activity.
			a.EndTime = nil
		} else {
			end, err := parser.ParseTimestamp(activityFlagEnd, now)
			if err != nil {
				return err
			}
			a.EndTime = &end
		}
	}
	if cmd.Flags().Changed("notes") {
		a.Notes = validate.Sanitize(activityFlagNotes)
	}

	if errs := validate.Activity(a.ProjectID, a.StartTime, a.EndTime, a.Notes); len(errs) > 0 {
		return errors.Join(errs...)
	}

	if err := ctx.ActivityRepo.Update(context.Background(), a); err != nil {
		return err
	}

	ctx.Formatter.Println(ctx.Formatter.Success("Activity updated"))
	return nil
}

func runActivityDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := ctx.ActivityRepo.Delete(context.Background(), id); err != nil {
		return err
	}

	logging.DebugLog("activity deleted", logging.KeyActivityID, id)
	ctx.Formatter.Println(ctx.Formatter.Success("Activity deleted"))
	return nil
}
