package domain

import (
	"slices"
	"sort"
)

// IsDue reports whether a habit scheduled on the given weekdays (0 = Sunday)
// is expected on date. Recurrence depends on the weekday only.
func IsDue(scheduledWeekdays []int, date DateKey) bool {
	return slices.Contains(scheduledWeekdays, date.Weekday())
}

func normalizeWeekdays(days []int) []int {
	if len(days) == 0 {
		return nil
	}

	uniqueMap := make(map[int]bool)
	var uniqueDays []int
	for _, d := range days {
		if !uniqueMap[d] {
			uniqueMap[d] = true
			uniqueDays = append(uniqueDays, d)
		}
	}

	sort.Ints(uniqueDays)
	return uniqueDays
}

func validateWeekdays(days []int) error {
	if len(days) == 0 {
		return ErrHabitNoWeekdays
	}
	for _, day := range days {
		if day < 0 || day > 6 {
			return ErrInvalidWeekdays
		}
	}
	return nil
}
