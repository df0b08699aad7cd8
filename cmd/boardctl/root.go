package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/attendance-board-go/internal/app"
	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
)

var (
	flagMode  string
	flagToday string
)

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "Inspect and export the attendance board",
	Long: `boardctl reads the same environment (.env) as the API server and works
against the configured backend, synthetic or remote.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMode, "mode", "m", string(calendar.ViewWeek), "View mode: day, week, month, all")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Pretend today is this date (YYYY-MM-DD)")

	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(exportCmd)
}

// clockFor returns a clock pinned to today, or nil for the wall clock.
func clockFor(today string, loc *time.Location) (func() time.Time, error) {
	if today == "" {
		return nil, nil
	}
	day, err := calendar.ParseDate(today, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --today %q: expected YYYY-MM-DD", today)
	}
	return func() time.Time { return day }, nil
}

// setup loads config and wires the services for a command.
func setup() (*app.App, calendar.ViewMode, error) {
	mode, err := calendar.ParseViewMode(flagMode)
	if err != nil {
		return nil, "", fmt.Errorf("invalid --mode %q: %w", flagMode, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	// Keep diagnostics off stdout, which carries the command output.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	loc, err := cfg.Location()
	if err != nil {
		return nil, "", err
	}
	clock, err := clockFor(flagToday, loc)
	if err != nil {
		return nil, "", err
	}

	a, err := app.New(cfg, clock)
	if err != nil {
		return nil, "", err
	}
	return a, mode, nil
}
