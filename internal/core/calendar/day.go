package calendar

import "github.com/comitanigiacomo/shelf/internal/core/domain"

// Snapshot is one consistent read of the store. Aggregation never looks
// beyond it.
type Snapshot struct {
	Habits       []domain.Habit
	Activities   []domain.Activity
	WorkoutDates []domain.DateKey
}

// DayCell is the derived view of a single date.
type DayCell struct {
	Date              domain.DateKey `json:"date"`
	Day               int            `json:"day"`
	DueIDs            []string       `json:"due_ids"`
	CompletedIDs      []string       `json:"completed_ids"`
	BonusIDs          []string       `json:"bonus_ids"`
	IncompleteIDs     []string       `json:"incomplete_ids"`
	OtherIDs          []string       `json:"other_ids"`
	Colors            []string       `json:"colors"`
	TotalExpected     int            `json:"total_expected"`
	TotalCompleted    int            `json:"total_completed"`
	CompletionPercent float64        `json:"completion_percent"`
	ActivityCount     int            `json:"activity_count"`
	WorkoutCount      int            `json:"workout_count"`
	IsToday           bool           `json:"is_today"`
}

// Aggregator holds the per-snapshot lookups so many days can be computed
// without rescanning completion and activity lists.
type Aggregator struct {
	habits     []domain.Habit
	index      CompletionIndex
	activities map[domain.DateKey]int
	workouts   map[domain.DateKey]int
}

func NewAggregator(snap Snapshot) *Aggregator {
	a := &Aggregator{
		habits:     snap.Habits,
		index:      NewCompletionIndex(snap.Habits),
		activities: make(map[domain.DateKey]int, len(snap.Activities)),
		workouts:   make(map[domain.DateKey]int, len(snap.WorkoutDates)),
	}
	for _, act := range snap.Activities {
		a.activities[act.Date]++
	}
	for _, d := range snap.WorkoutDates {
		a.workouts[d]++
	}
	return a
}

// Day reconciles due and completed habits for date.
//
// Completions are evaluated over every habit, so a habit finished on a day
// it was not scheduled counts as a bonus. Bonus completions are added to
// the denominator as well as the numerator.
func (a *Aggregator) Day(date domain.DateKey) DayCell {
	cell := DayCell{
		Date:          date,
		Day:           date.Day,
		DueIDs:        []string{},
		CompletedIDs:  []string{},
		BonusIDs:      []string{},
		IncompleteIDs: []string{},
		OtherIDs:      []string{},
		Colors:        []string{},
		ActivityCount: a.activities[date],
		WorkoutCount:  a.workouts[date],
	}

	for _, h := range a.habits {
		due := h.IsDue(date)
		done := a.index.IsCompleted(h.ID, date)

		if due {
			cell.DueIDs = append(cell.DueIDs, h.ID)
		}
		if done {
			cell.CompletedIDs = append(cell.CompletedIDs, h.ID)
			cell.Colors = append(cell.Colors, h.Color)
		}

		switch {
		case done && !due:
			cell.BonusIDs = append(cell.BonusIDs, h.ID)
		case due && !done:
			cell.IncompleteIDs = append(cell.IncompleteIDs, h.ID)
		case !due && !done:
			cell.OtherIDs = append(cell.OtherIDs, h.ID)
		}
	}

	completedDue := len(cell.CompletedIDs) - len(cell.BonusIDs)
	cell.TotalExpected = len(cell.DueIDs) + len(cell.BonusIDs)
	cell.TotalCompleted = completedDue + len(cell.BonusIDs)
	if cell.TotalExpected > 0 {
		cell.CompletionPercent = 100 * float64(cell.TotalCompleted) / float64(cell.TotalExpected)
	}

	return cell
}

// AggregateDay is the one-shot form of Aggregator.Day.
func AggregateDay(snap Snapshot, date domain.DateKey) DayCell {
	return NewAggregator(snap).Day(date)
}
