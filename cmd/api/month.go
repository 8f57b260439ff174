package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/shelf/internal/adapters/render"
	"github.com/comitanigiacomo/shelf/internal/core/calendar"
	"github.com/comitanigiacomo/shelf/internal/core/services"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

var (
	monthYear  int
	monthMonth int
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Print the habit calendar of a month",
	RunE:  runMonth,
}

func init() {
	monthCmd.Flags().IntVar(&monthYear, "year", 0, "Year (default: current)")
	monthCmd.Flags().IntVar(&monthMonth, "month", 0, "Month 1-12 (default: current)")
}

func runMonth(cmd *cobra.Command, args []string) error {
	store, err := openBackend(cmd.Context(), cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	svc := services.NewCalendarService(
		store.Habits, store.Activities, store.Workouts,
		calendar.NewNavigator(calendar.SystemClock{}, loc),
		logging.Component(logger, "calendar"),
	)

	var year, month *int
	if cmd.Flags().Changed("year") {
		year = &monthYear
	}
	if cmd.Flags().Changed("month") {
		month = &monthMonth
	}

	grid, err := svc.HabitMonth(cmd.Context(), year, month)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, err = fmt.Fprintln(out, render.NewMonthRenderer(out).Render(grid))
	return err
}
