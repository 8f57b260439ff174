package calendar

import (
	"slices"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

// Streaks counts runs of completed due days. Days the habit is not
// scheduled on neither extend nor break a run, and an unfinished today does
// not break the current streak yet.
func Streaks(h domain.Habit, today domain.DateKey) (current, longest int) {
	if len(h.Days) == 0 || len(h.Completions) == 0 {
		return 0, 0
	}

	completed := make(map[domain.DateKey]bool, len(h.Completions))
	var dueDone []domain.DateKey
	for _, d := range h.Completions {
		if h.IsDue(d) && !completed[d] {
			dueDone = append(dueDone, d)
		}
		completed[d] = true
	}
	if len(dueDone) == 0 {
		return 0, 0
	}
	slices.SortFunc(dueDone, domain.DateKey.Compare)

	run := 1
	longest = 1
	for i := 1; i < len(dueDone); i++ {
		if nextDue(h.Days, dueDone[i-1]) == dueDone[i] {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	anchor := today
	if !h.IsDue(today) || !completed[today] {
		anchor = prevDue(h.Days, today)
	}
	for completed[anchor] {
		current++
		anchor = prevDue(h.Days, anchor)
	}

	return current, longest
}

func nextDue(days []int, d domain.DateKey) domain.DateKey {
	for i := 1; i <= 7; i++ {
		if c := d.AddDays(i); domain.IsDue(days, c) {
			return c
		}
	}
	return d
}

func prevDue(days []int, d domain.DateKey) domain.DateKey {
	for i := 1; i <= 7; i++ {
		if c := d.AddDays(-i); domain.IsDue(days, c) {
			return c
		}
	}
	return d
}
