package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/shelf/internal/core/calendar"
)

const cellWidth = 9

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthRenderer draws a habit month grid for a terminal. Colors depend on
// the profile of the writer it was built for; plain writers get plain text.
type MonthRenderer struct {
	header  lipgloss.Style
	weekday lipgloss.Style
	blank   lipgloss.Style
	none    lipgloss.Style
	missed  lipgloss.Style
	partial lipgloss.Style
	full    lipgloss.Style
	footer  lipgloss.Style
}

func NewMonthRenderer(w io.Writer) *MonthRenderer {
	r := lipgloss.NewRenderer(w)
	cell := r.NewStyle().Width(cellWidth)

	return &MonthRenderer{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Width(cellWidth * 7).Align(lipgloss.Center),
		weekday: cell.Foreground(lipgloss.Color("8")),
		blank:   cell,
		none:    cell.Faint(true),
		missed:  cell.Foreground(lipgloss.Color("9")),
		partial: cell.Foreground(lipgloss.Color("11")),
		full:    cell.Foreground(lipgloss.Color("10")),
		footer:  r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render lays the grid out Sunday first, one row per week. Each day shows
// completed over expected habits and a "+" when a workout was logged.
func (m *MonthRenderer) Render(grid calendar.MonthGrid) string {
	lines := []string{m.header.Render(fmt.Sprintf("%s %d", grid.MonthName, grid.Year))}

	names := make([]string, len(weekdayNames))
	for i, n := range weekdayNames {
		names[i] = m.weekday.Render(n)
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, names...))

	var today *calendar.DayCell
	for _, week := range grid.Weeks() {
		row := make([]string, len(week))
		for i, cell := range week {
			if cell == nil {
				row[i] = m.blank.Render("")
				continue
			}
			if cell.IsToday {
				today = cell
			}
			row[i] = m.cell(cell)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	if today != nil {
		lines = append(lines, m.footer.Render(fmt.Sprintf("Today: %d of %d habits completed", today.TotalCompleted, today.TotalExpected)))
	}

	return strings.Join(lines, "\n")
}

func (m *MonthRenderer) cell(c *calendar.DayCell) string {
	ratio := "-"
	if c.TotalExpected > 0 {
		ratio = fmt.Sprintf("%d/%d", c.TotalCompleted, c.TotalExpected)
	}
	text := fmt.Sprintf("%2d %s", c.Day, ratio)
	if c.WorkoutCount > 0 {
		text += "+"
	}

	var style lipgloss.Style
	switch {
	case c.TotalExpected == 0:
		style = m.none
	case c.TotalCompleted == 0:
		style = m.missed
	case c.TotalCompleted < c.TotalExpected:
		style = m.partial
	default:
		style = m.full
	}
	if c.IsToday {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(text)
}
