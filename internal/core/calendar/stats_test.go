package calendar_test

import (
	"testing"

	"github.com/comitanigiacomo/shelf/internal/core/calendar"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRangeStats(t *testing.T) {
	// Week of 2024-01-01 (Mon) .. 2024-01-07 (Sun).
	start := domain.MustDateKey(2024, 1, 1)
	end := domain.MustDateKey(2024, 1, 7)

	snap := calendar.Snapshot{
		Habits: []domain.Habit{
			habit(t, "Gym", []int{1, 3, 5}, days(start, 0, 2, 6)...),
			habit(t, "Read", []int{0, 1, 2, 3, 4, 5, 6}, days(start, 0, 1)...),
		},
		Activities:   []domain.Activity{{Name: "Cinema", Date: start}},
		WorkoutDates: []domain.DateKey{start.AddDays(2)},
	}

	t.Run("Success: Per habit and overall rates", func(t *testing.T) {
		stats, err := calendar.ComputeRangeStats(snap, start, end)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.TotalHabits)
		require.Len(t, stats.Days, 7)

		gym := stats.HabitStats[0]
		assert.Equal(t, "gym", gym.HabitID)
		assert.Equal(t, 3, gym.DueDays)
		assert.Equal(t, 2, gym.CompletedDue)
		assert.Equal(t, 1, gym.BonusDays)
		assert.Equal(t, 75.0, gym.CompletionRate)

		read := stats.HabitStats[1]
		assert.Equal(t, 7, read.DueDays)
		assert.Equal(t, 2, read.CompletedDue)
		assert.Equal(t, 0, read.BonusDays)
		assert.InDelta(t, 28.571, read.CompletionRate, 0.001)

		// 5 completions out of 3 + 7 + 1 expected.
		assert.InDelta(t, 5.0/11.0*100, stats.OverallRate, 0.0001)

		assert.Equal(t, 100.0, stats.Days[0].CompletionPercent)
		assert.Equal(t, 1, stats.Days[0].ActivityCount)
		assert.Equal(t, 1, stats.Days[2].WorkoutCount)
		assert.Equal(t, 50.0, stats.Days[6].CompletionPercent, "Sunday: bonus gym and missed read give 1 of 2")
	})

	t.Run("Error: End before start", func(t *testing.T) {
		_, err := calendar.ComputeRangeStats(snap, end, start)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Error: Range too long", func(t *testing.T) {
		_, err := calendar.ComputeRangeStats(snap, start, start.AddDays(calendar.MaxRangeDays))
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
	})

	t.Run("Success: Single day, no habits", func(t *testing.T) {
		stats, err := calendar.ComputeRangeStats(calendar.Snapshot{}, start, start)
		require.NoError(t, err)
		assert.Len(t, stats.Days, 1)
		assert.Equal(t, 0.0, stats.OverallRate)
	})
}
