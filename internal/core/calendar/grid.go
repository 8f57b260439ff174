package calendar

import (
	"time"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

// MonthGrid is the per-month list of day cells plus the number of blank
// cells before day 1 in a Sunday-first week layout.
type MonthGrid struct {
	Year              int       `json:"year"`
	Month             int       `json:"month"`
	MonthName         string    `json:"month_name"`
	LeadingBlankCount int       `json:"leading_blank_count"`
	DayCount          int       `json:"day_count"`
	Cells             []DayCell `json:"cells"`
	PrevYear          int       `json:"prev_year"`
	PrevMonth         int       `json:"prev_month"`
	NextYear          int       `json:"next_year"`
	NextMonth         int       `json:"next_month"`
}

// BuildMonthGrid aggregates every day of the month. today only drives the
// IsToday marker; pass the zero DateKey for no highlight.
func BuildMonthGrid(year, month int, snap Snapshot, today domain.DateKey) (MonthGrid, error) {
	first, err := domain.NewDateKey(year, month, 1)
	if err != nil {
		return MonthGrid{}, err
	}

	dayCount := domain.DaysInMonth(year, month)
	prevY, prevM := PreviousMonth(year, month)
	nextY, nextM := NextMonth(year, month)

	grid := MonthGrid{
		Year:              year,
		Month:             month,
		MonthName:         MonthName(month),
		LeadingBlankCount: first.Weekday(),
		DayCount:          dayCount,
		Cells:             make([]DayCell, 0, dayCount),
		PrevYear:          prevY,
		PrevMonth:         prevM,
		NextYear:          nextY,
		NextMonth:         nextM,
	}

	agg := NewAggregator(snap)
	for day := 1; day <= dayCount; day++ {
		date := domain.DateKey{Year: year, Month: month, Day: day}
		cell := agg.Day(date)
		cell.IsToday = !today.IsZero() && date == today
		grid.Cells = append(grid.Cells, cell)
	}

	return grid, nil
}

// Weeks splits the grid into rows of seven, padding with nil for the
// leading and trailing blanks.
func (g MonthGrid) Weeks() [][]*DayCell {
	var (
		weeks [][]*DayCell
		row   = make([]*DayCell, 0, 7)
	)
	for i := 0; i < g.LeadingBlankCount; i++ {
		row = append(row, nil)
	}
	for i := range g.Cells {
		row = append(row, &g.Cells[i])
		if len(row) == 7 {
			weeks = append(weeks, row)
			row = make([]*DayCell, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, nil)
		}
		weeks = append(weeks, row)
	}
	return weeks
}

func MonthName(month int) string {
	return time.Month(month).String()
}
