package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/errors"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/logging"
	"github.com/dimas123120093-cloud/Tugas-Besar-Kelompok-6-Teknik-Pemrograman/internal/model"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"setting", "config"},
	Short:   "Manage settings",
}

var settingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all settings",
	RunE:    runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// recognizedSettings maps known keys to their seeded default values.
// Unknown keys are still stored, they just have no default.
var recognizedSettings = map[string]string{
	model.SettingTargetHoursPerDay:   "8",
	model.SettingEfficiencyThreshold: "0.7",
}

func runSettingsList(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingRepo.All(context.Background())
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := ctx.Formatter
	f.Println(f.Title("Settings"))
	for _, k := range keys {
		f.Printf("  %-26s %s\n", k, settings[k])
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value, err := ctx.SettingRepo.Get(context.Background(), key)
	if err != nil {
		if apperrors.IsNotFound(err) {
			if def, ok := recognizedSettings[key]; ok {
				value = def
			} else {
				return err
			}
		} else {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{key: value})
	}
	ctx.Formatter.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	// Numeric settings get a sanity check before they are persisted so a
	// typo does not silently poison later efficiency reports.
	switch key {
	case model.SettingTargetHoursPerDay, model.SettingEfficiencyThreshold:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return apperrors.NewValidationError(
				fmt.Sprintf("setting %q must be a positive number, got %q", key, value),
				"pass a value like 8 or 0.7",
			)
		}
	}

	if err := ctx.SettingRepo.Set(context.Background(), key, value); err != nil {
		return err
	}
	logging.DebugLog("setting updated", "key", key)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{key: value})
	}
	ctx.Formatter.Printf("%s %s = %s\n", ctx.Formatter.Success("Saved"), key, value)
	return nil
}
