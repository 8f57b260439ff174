package domain

import (
	"context"
)

// Store contracts. Implementations return the resource specific sentinel
// errors (ErrHabitNotFound, ErrHabitExists, ...) and wrap infrastructure
// failures with ErrTransport.

type HabitRepository interface {
	// Create persists a new habit together with its completions.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its slug id.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// List returns every habit ordered by name.
	List(ctx context.Context) ([]*Habit, error)

	// Update replaces the habit stored under oldID. A rename moves the row to habit.ID.
	Update(ctx context.Context, oldID string, habit *Habit) error

	// Delete removes the habit and its completion history.
	Delete(ctx context.Context, id string) error

	// SetCompletion records or clears a single completion date.
	SetCompletion(ctx context.Context, id string, date DateKey, completed bool) error

	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, id string) (*Activity, error)

	// List returns activities ordered by date then name, restricted to one
	// date when date is non-nil.
	List(ctx context.Context, date *DateKey) ([]*Activity, error)

	Delete(ctx context.Context, id string) error
}

type PresetRepository interface {
	Create(ctx context.Context, preset *Preset) error
	GetByID(ctx context.Context, id string) (*Preset, error)
	List(ctx context.Context) ([]*Preset, error)
	Update(ctx context.Context, oldID string, preset *Preset) error
	Delete(ctx context.Context, id string) error
}

type MediaRepository interface {
	Create(ctx context.Context, media *Media) error
	GetByID(ctx context.Context, id string) (*Media, error)

	// List returns media ordered by name, restricted to one status when status is non-nil.
	List(ctx context.Context, status *MediaStatus) ([]*Media, error)

	Update(ctx context.Context, oldID string, media *Media) error
	Delete(ctx context.Context, id string) error
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *Workout) error
	GetByID(ctx context.Context, id string) (*Workout, error)

	// List returns workouts newest first.
	List(ctx context.Context) ([]*Workout, error)

	Update(ctx context.Context, oldID string, workout *Workout) error
	Delete(ctx context.Context, id string) error

	// ListDates returns the date of every workout in [from, to], ascending.
	// A date repeats once per workout held on it.
	ListDates(ctx context.Context, from, to DateKey) ([]DateKey, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, tpl *WorkoutTemplate) error
	GetByID(ctx context.Context, id string) (*WorkoutTemplate, error)
	List(ctx context.Context) ([]*WorkoutTemplate, error)
	Update(ctx context.Context, oldID string, tpl *WorkoutTemplate) error
	Delete(ctx context.Context, id string) error
}
