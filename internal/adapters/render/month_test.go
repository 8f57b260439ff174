package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/shelf/internal/core/calendar"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

func TestMonthRenderer(t *testing.T) {
	snap := calendar.Snapshot{
		Habits: []domain.Habit{
			{ID: "run", Name: "Run", Days: []int{1, 3, 5}, Completions: []domain.DateKey{domain.MustDateKey(2024, 1, 8)}},
			{ID: "read", Name: "Read", Days: []int{1}},
		},
		WorkoutDates: []domain.DateKey{domain.MustDateKey(2024, 1, 10)},
	}
	grid, err := calendar.BuildMonthGrid(2024, 1, snap, domain.MustDateKey(2024, 1, 8))
	require.NoError(t, err)

	out := NewMonthRenderer(&bytes.Buffer{}).Render(grid)
	lines := strings.Split(out, "\n")

	t.Run("Success: Header and weekday row", func(t *testing.T) {
		assert.Contains(t, lines[0], "January 2024")
		assert.True(t, strings.HasPrefix(lines[1], "Sun"))
		assert.Contains(t, lines[1], "Sat")
	})

	t.Run("Success: One row per week plus footer", func(t *testing.T) {
		// January 2024 starts on a Monday: five week rows.
		require.Len(t, lines, 2+5+1)
		for _, line := range lines[:7] {
			assert.Equal(t, cellWidth*7, lipgloss.Width(line), line)
		}
	})

	t.Run("Success: Cells show ratios and workouts", func(t *testing.T) {
		firstWeek := lines[2]
		assert.True(t, strings.HasPrefix(firstWeek, strings.Repeat(" ", cellWidth)), "leading blank for Sunday")
		assert.Contains(t, firstWeek, " 1 0/2")
		assert.Contains(t, firstWeek, " 2 -")

		secondWeek := lines[3]
		assert.Contains(t, secondWeek, " 8 1/2")
		assert.Contains(t, secondWeek, "10 0/1+")
	})

	t.Run("Success: Footer counts today", func(t *testing.T) {
		assert.Equal(t, "Today: 1 of 2 habits completed", lines[len(lines)-1])
	})
}

func TestMonthRendererWithoutToday(t *testing.T) {
	grid, err := calendar.BuildMonthGrid(2024, 2, calendar.Snapshot{}, domain.DateKey{})
	require.NoError(t, err)

	out := NewMonthRenderer(&bytes.Buffer{}).Render(grid)
	assert.NotContains(t, out, "Today:")
	assert.Contains(t, out, "29 -")
}
