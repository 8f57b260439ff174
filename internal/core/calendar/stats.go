package calendar

import (
	"fmt"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

const (
	DefaultRangeDays = 7
	MaxRangeDays     = 366
)

var ErrInvalidRange = fmt.Errorf("%w: invalid date range", domain.ErrValidation)

type DayStat struct {
	Date              domain.DateKey `json:"date"`
	TotalExpected     int            `json:"total_expected"`
	TotalCompleted    int            `json:"total_completed"`
	CompletionPercent float64        `json:"completion_percent"`
	ActivityCount     int            `json:"activity_count"`
	WorkoutCount      int            `json:"workout_count"`
}

type HabitStat struct {
	HabitID        string  `json:"habit_id"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	DueDays        int     `json:"due_days"`
	CompletedDue   int     `json:"completed_due"`
	BonusDays      int     `json:"bonus_days"`
	CompletionRate float64 `json:"completion_rate"`
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
}

type RangeStats struct {
	StartDate   domain.DateKey `json:"start_date"`
	EndDate     domain.DateKey `json:"end_date"`
	TotalHabits int            `json:"total_habits"`
	Days        []DayStat      `json:"days"`
	HabitStats  []HabitStat    `json:"habit_stats"`
	OverallRate float64        `json:"overall_rate"`
}

func ValidateRange(start, end domain.DateKey) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, end, start)
	}
	if span := start.DaysUntil(end) + 1; span > MaxRangeDays {
		return fmt.Errorf("%w: %d days exceeds the %d day limit", ErrInvalidRange, span, MaxRangeDays)
	}
	return nil
}

// ComputeRangeStats aggregates every day in [start, end]. Rates follow the
// day cell formula, so bonus completions count on both sides.
func ComputeRangeStats(snap Snapshot, start, end domain.DateKey) (RangeStats, error) {
	if err := ValidateRange(start, end); err != nil {
		return RangeStats{}, err
	}

	agg := NewAggregator(snap)
	stats := RangeStats{
		StartDate:   start,
		EndDate:     end,
		TotalHabits: len(snap.Habits),
		Days:        make([]DayStat, 0, start.DaysUntil(end)+1),
		HabitStats:  make([]HabitStat, len(snap.Habits)),
	}

	pos := make(map[string]int, len(snap.Habits))
	for i, h := range snap.Habits {
		pos[h.ID] = i
		current, longest := Streaks(h, end)
		stats.HabitStats[i] = HabitStat{
			HabitID:       h.ID,
			Name:          h.Name,
			Color:         h.Color,
			CurrentStreak: current,
			LongestStreak: longest,
		}
	}

	totalExpected, totalCompleted := 0, 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		cell := agg.Day(d)
		stats.Days = append(stats.Days, DayStat{
			Date:              d,
			TotalExpected:     cell.TotalExpected,
			TotalCompleted:    cell.TotalCompleted,
			CompletionPercent: cell.CompletionPercent,
			ActivityCount:     cell.ActivityCount,
			WorkoutCount:      cell.WorkoutCount,
		})
		totalExpected += cell.TotalExpected
		totalCompleted += cell.TotalCompleted

		for _, id := range cell.DueIDs {
			stats.HabitStats[pos[id]].DueDays++
		}
		for _, id := range cell.CompletedIDs {
			stats.HabitStats[pos[id]].CompletedDue++
		}
		for _, id := range cell.BonusIDs {
			hs := &stats.HabitStats[pos[id]]
			hs.CompletedDue--
			hs.BonusDays++
		}
	}

	for i := range stats.HabitStats {
		hs := &stats.HabitStats[i]
		if expected := hs.DueDays + hs.BonusDays; expected > 0 {
			hs.CompletionRate = float64(hs.CompletedDue+hs.BonusDays) / float64(expected) * 100
		}
	}

	if totalExpected > 0 {
		stats.OverallRate = float64(totalCompleted) / float64(totalExpected) * 100
	}

	return stats, nil
}
