// Package calendar derives day cells, month grids and statistics from a
// snapshot of habits, activities and workout dates. Everything here is pure:
// no I/O, no clock, and caller slices are never modified.
package calendar

import "github.com/comitanigiacomo/shelf/internal/core/domain"

type completionKey struct {
	habitID string
	date    domain.DateKey
}

// CompletionIndex answers (habit, date) membership in O(1). Build it once
// per snapshot.
type CompletionIndex struct {
	done map[completionKey]struct{}
}

func NewCompletionIndex(habits []domain.Habit) CompletionIndex {
	size := 0
	for _, h := range habits {
		size += len(h.Completions)
	}

	idx := CompletionIndex{done: make(map[completionKey]struct{}, size)}
	for _, h := range habits {
		for _, d := range h.Completions {
			idx.done[completionKey{habitID: h.ID, date: d}] = struct{}{}
		}
	}
	return idx
}

func (i CompletionIndex) IsCompleted(habitID string, date domain.DateKey) bool {
	_, ok := i.done[completionKey{habitID: habitID, date: date}]
	return ok
}

// Len is the number of distinct (habit, date) completions indexed.
func (i CompletionIndex) Len() int {
	return len(i.done)
}
