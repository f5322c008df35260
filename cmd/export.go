package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/logging"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/output"
)

var exportFlagOutput string

var exportCmd = &cobra.Command{
	Use:   "export <projects|activities>",
	Short: "Export data as CSV",
	Long: `Export projects or activities as CSV. The data is written to
stdout unless --output names a file.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"projects", "activities"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "",
		"Write the CSV to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	target := args[0]

	var w io.Writer = cmd.OutOrStdout()
	if exportFlagOutput != "" {
		file, err := os.Create(exportFlagOutput)
		if err != nil {
			return apperrors.NewStorageError("export.create", err)
		}
		defer file.Close()
		w = file
	}

	bg := context.Background()
	var count int

	switch target {
	case "projects":
		projects, err := ctx.ProjectRepo.List(bg)
		if err != nil {
			return err
		}
		if err := output.WriteProjectsCSV(w, projects); err != nil {
			return err
		}
		count = len(projects)
	case "activities":
		activities, err := ctx.ActivityRepo.List(bg)
		if err != nil {
			return err
		}
		if err := output.WriteActivitiesCSV(w, activities); err != nil {
			return err
		}
		count = len(activities)
	default:
		return apperrors.NewValidationError(
			fmt.Sprintf("unknown export target %q", target),
			"use 'projects' or 'activities'",
		)
	}

	logging.DebugLog("export written", logging.KeyCount, count, logging.KeyPath, exportFlagOutput)

	if exportFlagOutput != "" {
		ctx.Formatter.Printf("%s %d %s to %s\n",
			ctx.Formatter.Success("Exported"), count, target, exportFlagOutput)
	}
	return nil
}
