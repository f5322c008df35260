// Package cmd provides the CLI commands for Logbook.
package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/logging"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/output"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagDB     string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "logbook",
	Short: "A project time-logging and efficiency tracker",
	Long: `Logbook records work sessions against projects and derives
progress and efficiency metrics from them.

Examples:
  logbook project add --name "Seismic QC" --hours 20 --category "Seismic Data Processing"
  logbook activity start --project 1 --notes "picking horizons"
  logbook activity end 3
  logbook stats`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if flagDB != "" {
			opts.DBPath = flagDB
		}

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOverview()
	},
}

// runOverview prints the store-wide summary, the default action when
// logbook is invoked without a subcommand.
func runOverview() error {
	stats, err := ctx.StatsRepo.OverallStatistics(context.Background())
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(stats)
	}

	f := ctx.Formatter
	f.Println(f.Title("Logbook"))
	f.Printf("  Projects:          %d (%d active)\n", stats.TotalProjects, stats.ActiveProjects)
	f.Printf("  Activities:        %d (%d ongoing)\n", stats.TotalActivities, stats.OngoingActivities)
	f.Printf("  Total logged:      %s\n", output.FormatHours(stats.TotalHours))
	f.Printf("  Active days:       %d\n", stats.ActiveDays)
	f.Printf("  Avg hours per day: %s\n", output.FormatNumber(stats.AvgHoursPerDay, 2))
	return nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

// printError reports an error with a suggestion when one is available.
func printError(err error) {
	if ve, ok := apperrors.AsValidation(err); ok && ve.Suggestion != "" {
		os.Stderr.WriteString("Error: " + ve.Error() + "\n")
		os.Stderr.WriteString("  " + ve.Suggestion + "\n")
		return
	}
	os.Stderr.WriteString("Error: " + err.Error() + "\n")
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"Database file path (default: XDG data dir, or $LOGBOOK_DATABASE)")
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("logbook %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationErrorWithField("id", arg,
			"Invalid id", "Provide a positive numeric id")
	}
	return id, nil
}
