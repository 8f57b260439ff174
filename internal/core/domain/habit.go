package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

var (
	ErrHabitNotFound   = fmt.Errorf("habit %w", ErrNotFound)
	ErrHabitExists     = fmt.Errorf("habit %w", ErrDuplicate)
	ErrHabitNameEmpty  = fmt.Errorf("%w: habit name cannot be empty", ErrValidation)
	ErrHabitNameLong   = fmt.Errorf("%w: habit name is too long (max 100 chars)", ErrValidation)
	ErrHabitNoWeekdays = fmt.Errorf("%w: habit needs at least one scheduled weekday", ErrValidation)
	ErrInvalidWeekdays = fmt.Errorf("%w: invalid weekdays (must be 0-6)", ErrValidation)
	ErrInvalidColor    = fmt.Errorf("%w: invalid color format (must be #RRGGBB)", ErrValidation)
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const (
	DefaultHabitColor = "#605dff"
	MaxNameLen        = 100
)

// Habit is a recurring tracked item. Days holds the scheduled weekdays
// (0 = Sunday) and Completions the sorted set of completed dates.
type Habit struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Days          []int     `json:"days"`
	Color         string    `json:"color"`
	Completions   []DateKey `json:"completions"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func validateName(name string, empty, tooLong error) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", empty
	}
	if len(trimmed) > MaxNameLen {
		return "", tooLong
	}
	if Slugify(trimmed) == "" {
		return "", empty
	}
	return trimmed, nil
}

func validateColor(color string) (string, error) {
	if color == "" {
		return DefaultHabitColor, nil
	}
	if !colorRegex.MatchString(color) {
		return "", ErrInvalidColor
	}
	return color, nil
}

func normalizeCompletions(dates []DateKey) []DateKey {
	out := make([]DateKey, 0, len(dates))
	for _, d := range dates {
		if !d.IsZero() {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, DateKey.Compare)
	return slices.Compact(out)
}

func NewHabit(name string, days []int, color string, completions []DateKey) (*Habit, error) {
	cleanName, err := validateName(name, ErrHabitNameEmpty, ErrHabitNameLong)
	if err != nil {
		return nil, err
	}
	if err := validateWeekdays(days); err != nil {
		return nil, err
	}
	cleanColor, err := validateColor(color)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:          Slugify(cleanName),
		Name:        cleanName,
		Days:        normalizeWeekdays(days),
		Color:       cleanColor,
		Completions: normalizeCompletions(completions),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update applies new settings. The id follows the name, so a rename changes it;
// callers persist with the previous id. Completions are replaced only when non-nil.
func (h *Habit) Update(name string, days []int, color string, completions []DateKey) error {
	cleanName, err := validateName(name, ErrHabitNameEmpty, ErrHabitNameLong)
	if err != nil {
		return err
	}
	if err := validateWeekdays(days); err != nil {
		return err
	}
	cleanColor, err := validateColor(color)
	if err != nil {
		return err
	}

	h.ID = Slugify(cleanName)
	h.Name = cleanName
	h.Days = normalizeWeekdays(days)
	h.Color = cleanColor
	if completions != nil {
		h.Completions = normalizeCompletions(completions)
	}
	h.UpdatedAt = time.Now().UTC()

	return nil
}

func (h Habit) IsDue(date DateKey) bool {
	return IsDue(h.Days, date)
}

func (h Habit) IsCompleted(date DateKey) bool {
	return slices.Contains(h.Completions, date)
}

// Toggle returns a copy of h with date added to or removed from its
// completions. The receiver is left untouched.
func (h Habit) Toggle(date DateKey) Habit {
	out := h
	out.Days = slices.Clone(h.Days)

	// never nil, matching what NewHabit produces
	completions := append([]DateKey{}, h.Completions...)
	if idx := slices.Index(completions, date); idx >= 0 {
		out.Completions = slices.Delete(completions, idx, idx+1)
	} else {
		pos, _ := slices.BinarySearchFunc(completions, date, DateKey.Compare)
		out.Completions = slices.Insert(completions, pos, date)
	}
	return out
}

func (h *Habit) UpdateStreak(current, longest int) {
	h.CurrentStreak = current
	h.LongestStreak = longest
	h.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy so snapshots never share slices with the store.
func (h *Habit) Clone() *Habit {
	c := *h
	c.Days = slices.Clone(h.Days)
	c.Completions = slices.Clone(h.Completions)
	return &c
}
