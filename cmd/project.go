package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/logging"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/metrics"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/output"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/validate"
)

// Project command flags.
var (
	projectFlagName        string
	projectFlagDescription string
	projectFlagHours       float64
	projectFlagCategory    string
	projectFlagStatus      string
	projectFlagActiveOnly  bool
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"proj", "p"},
	Short:   "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new project",
	Long: `Create a new project with an estimated-hours budget.

Examples:
  logbook project add --name "Seismic QC" --hours 20 --category "Seismic Data Processing"`,
	RunE: runProjectAdd,
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects with logged hours and efficiency",
	RunE:    runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one project in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a project's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectUpdate,
}

var projectStatusCmd = &cobra.Command{
	Use:   "status ID STATUS",
	Short: "Change a project's status (active, completed, paused)",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectStatus,
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a project and all its activities",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectDelete,
}

func init() {
	projectAddCmd.Flags().StringVarP(&projectFlagName, "name", "n", "", "Project name (required)")
	projectAddCmd.Flags().StringVarP(&projectFlagDescription, "description", "d", "", "Project description")
	projectAddCmd.Flags().Float64Var(&projectFlagHours, "hours", 0, "Estimated hours (required)")
	projectAddCmd.Flags().StringVarP(&projectFlagCategory, "category", "c", "", "Project category (required)")
	projectAddCmd.MarkFlagRequired("name")
	projectAddCmd.MarkFlagRequired("hours")
	projectAddCmd.MarkFlagRequired("category")

	projectListCmd.Flags().BoolVar(&projectFlagActiveOnly, "active", false, "Show active projects only")

	projectUpdateCmd.Flags().StringVarP(&projectFlagName, "name", "n", "", "New name")
	projectUpdateCmd.Flags().StringVarP(&projectFlagDescription, "description", "d", "", "New description")
	projectUpdateCmd.Flags().Float64Var(&projectFlagHours, "hours", 0, "New estimated hours")
	projectUpdateCmd.Flags().StringVarP(&projectFlagCategory, "category", "c", "", "New category")
	projectUpdateCmd.Flags().StringVar(&projectFlagStatus, "status", "", "New status")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectStatusCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	name := validate.Sanitize(projectFlagName)
	description := validate.Sanitize(projectFlagDescription)

	if errs := validate.Project(name, projectFlagHours, projectFlagCategory); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if err := validate.Description(description); err != nil {
		return err
	}

	p := model.NewProject(name, description, projectFlagHours, projectFlagCategory)
	id, err := ctx.ProjectRepo.Create(context.Background(), p)
	if err != nil {
		return err
	}

	logging.DebugLog("project created", logging.KeyProjectID, id)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(p)
	}
	ctx.Formatter.Println(ctx.Formatter.Success("Project created"), "- id", id)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	var (
		projects []model.Project
		err      error
	)
	if projectFlagActiveOnly {
		projects, err = ctx.ProjectRepo.ListActive(context.Background())
	} else {
		projects, err = ctx.ProjectRepo.List(context.Background())
	}
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(projects)
	}

	f := ctx.Formatter
	if len(projects) == 0 {
		f.Println("No projects yet.")
		return nil
	}

	f.Printf("%-4s %-34s %-10s %9s %9s %7s  %s\n",
		"ID", "NAME", "STATUS", "LOGGED", "ESTIMATE", "EFF", "LEVEL")
	for _, p := range projects {
		efficiency := metrics.Efficiency(p.TotalLoggedHours, p.EstimatedHours)
		f.Printf("%-4d %-34s %-10s %9s %9s %7s  %s\n",
			p.ID,
			output.Truncate(p.Name, 34),
			f.StatusLabel(p.Status),
			output.FormatHours(p.TotalLoggedHours),
			output.FormatHours(p.EstimatedHours),
			output.FormatPercentage(efficiency),
			f.LevelLabel(metrics.GetLevel(efficiency)),
		)
	}
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := ctx.ProjectRepo.GetByID(context.Background(), id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(p)
	}

	efficiency := metrics.Efficiency(p.TotalLoggedHours, p.EstimatedHours)
	progress := metrics.Progress(p.TotalLoggedHours, p.EstimatedHours)

	f := ctx.Formatter
	f.Println(f.Title(p.Name))
	if p.Description != "" {
		f.Println(" ", f.Muted(p.Description))
	}
	f.Printf("  Category:   %s\n", p.Category)
	f.Printf("  Status:     %s\n", f.StatusLabel(p.Status))
	f.Printf("  Logged:     %s of %s estimated\n",
		output.FormatHours(p.TotalLoggedHours), output.FormatHours(p.EstimatedHours))
	f.Printf("  Efficiency: %s (%s)\n",
		output.FormatPercentage(efficiency), f.LevelLabel(metrics.GetLevel(efficiency)))
	f.Printf("  Progress:   %s\n", progressBar(progress, 30))
	f.Printf("  Created:    %s\n", output.FormatTime(&p.CreatedAt))
	return nil
}

func runProjectUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := ctx.ProjectRepo.GetByID(context.Background(), id)
	if err != nil {
		return err
	}

	// Unset flags keep the stored value.
	if cmd.Flags().Changed("name") {
		p.Name = validate.Sanitize(projectFlagName)
	}
	if cmd.Flags().Changed("description") {
		p.Description = validate.Sanitize(projectFlagDescription)
	}
	if cmd.Flags().Changed("hours") {
		p.EstimatedHours = projectFlagHours
	}
	if cmd.Flags().Changed("category") {
		p.Category = projectFlagCategory
	}
	if cmd.Flags().Changed("status") {
		p.Status = model.Status(projectFlagStatus)
	}

	if errs := validate.Project(p.Name, p.EstimatedHours, p.Category); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if err := validate.Status(p.Status); err != nil {
		return err
	}

	if err := ctx.ProjectRepo.Update(context.Background(), p); err != nil {
		return err
	}

	ctx.Formatter.Println(ctx.Formatter.Success("Project updated"))
	return nil
}

func runProjectStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	status := model.Status(args[1])
	if err := validate.Status(status); err != nil {
		return err
	}

	if err := ctx.ProjectRepo.UpdateStatus(context.Background(), id, status); err != nil {
		return err
	}

	ctx.Formatter.Println(ctx.Formatter.Success("Status updated"))
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := ctx.ProjectRepo.Delete(context.Background(), id); err != nil {
		return err
	}

	logging.DebugLog("project deleted", logging.KeyProjectID, id)
	ctx.Formatter.Println(ctx.Formatter.Success("Project and its activities deleted"))
	return nil
}

// progressBar renders a fixed-width text progress bar for a fraction
// in [0, 1].
func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return "[" + string(bar) + "]"
}
