package domain

import (
	"database/sql/driver"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// weights travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

const TimeLayout = "15:04:05"

var (
	ErrWorkoutNotFound   = fmt.Errorf("workout %w", ErrNotFound)
	ErrWorkoutExists     = fmt.Errorf("workout %w at this date and time", ErrDuplicate)
	ErrTemplateNotFound  = fmt.Errorf("template %w", ErrNotFound)
	ErrTemplateExists    = fmt.Errorf("template %w", ErrDuplicate)
	ErrTemplateNameEmpty = fmt.Errorf("%w: template name cannot be empty", ErrValidation)
	ErrTemplateNameLong  = fmt.Errorf("%w: template name is too long (max 100 chars)", ErrValidation)
	ErrWorkoutNoDate     = fmt.Errorf("%w: workout date is required", ErrValidation)
	ErrInvalidTime       = fmt.Errorf("%w: invalid time (must be HH:MM:SS)", ErrValidation)
	ErrGroupNameEmpty    = fmt.Errorf("%w: group name cannot be empty", ErrValidation)
	ErrExerciseNameEmpty = fmt.Errorf("%w: exercise name cannot be empty", ErrValidation)
	ErrNegativeRest      = fmt.Errorf("%w: rest seconds cannot be negative", ErrValidation)
	ErrInvalidSet        = fmt.Errorf("%w: reps and weight cannot be negative", ErrValidation)
)

// TimeOfDay is a wall-clock time with second precision, encoded as HH:MM:SS.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts HH:MM:SS and the HH:MM form browsers send.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := TimeLayout
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) Compare(other TimeOfDay) int {
	return sign(t.seconds() - other.seconds())
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case time.Time:
		*t = TimeOfDay{Hour: v.Hour(), Minute: v.Minute(), Second: v.Second()}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// WorkoutSet is one set entry. Both fields are optional.
type WorkoutSet struct {
	Reps   *int             `json:"reps"`
	Weight *decimal.Decimal `json:"weight"`
}

// Volume is reps times weight, zero when either is missing.
func (s WorkoutSet) Volume() decimal.Decimal {
	if s.Reps == nil || s.Weight == nil {
		return decimal.Zero
	}
	return s.Weight.Mul(decimal.NewFromInt(int64(*s.Reps)))
}

type Exercise struct {
	Name string       `json:"name"`
	Sets []WorkoutSet `json:"sets"`
}

type ExerciseGroup struct {
	Name        string     `json:"name"`
	RestSeconds int        `json:"rest_seconds"`
	Exercises   []Exercise `json:"exercises"`
}

// Groups is the ordered list of exercise groups shared by workouts and templates.
type Groups []ExerciseGroup

func (g Groups) Validate() error {
	for _, group := range g {
		if strings.TrimSpace(group.Name) == "" {
			return ErrGroupNameEmpty
		}
		if group.RestSeconds < 0 {
			return ErrNegativeRest
		}
		for _, ex := range group.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return ErrExerciseNameEmpty
			}
			for _, set := range ex.Sets {
				if (set.Reps != nil && *set.Reps < 0) || (set.Weight != nil && set.Weight.IsNegative()) {
					return ErrInvalidSet
				}
			}
		}
	}
	return nil
}

// Clone deep-copies the groups, including the optional set values.
func (g Groups) Clone() Groups {
	if g == nil {
		return nil
	}
	out := make(Groups, len(g))
	for i, group := range g {
		out[i] = group
		out[i].Exercises = make([]Exercise, len(group.Exercises))
		for j, ex := range group.Exercises {
			out[i].Exercises[j] = Exercise{Name: ex.Name, Sets: make([]WorkoutSet, len(ex.Sets))}
			for k, set := range ex.Sets {
				var cp WorkoutSet
				if set.Reps != nil {
					r := *set.Reps
					cp.Reps = &r
				}
				if set.Weight != nil {
					w := *set.Weight
					cp.Weight = &w
				}
				out[i].Exercises[j].Sets[k] = cp
			}
		}
	}
	return out
}

// Move relocates one group and returns the new ordering.
func (g Groups) Move(from, to int) (Groups, error) {
	return Move(g, from, to)
}

// MoveExercise reorders the exercises of one group. The receiver is left untouched.
func (g Groups) MoveExercise(group, from, to int) (Groups, error) {
	if group < 0 || group >= len(g) {
		return nil, fmt.Errorf("%w: group %d of %d", ErrIndexOutOfRange, group, len(g))
	}
	out := g.Clone()
	exercises, err := Move(out[group].Exercises, from, to)
	if err != nil {
		return nil, err
	}
	out[group].Exercises = exercises
	return out, nil
}

// MoveSet reorders the sets of one exercise.
func (g Groups) MoveSet(group, exercise, from, to int) (Groups, error) {
	if group < 0 || group >= len(g) {
		return nil, fmt.Errorf("%w: group %d of %d", ErrIndexOutOfRange, group, len(g))
	}
	if n := len(g[group].Exercises); exercise < 0 || exercise >= n {
		return nil, fmt.Errorf("%w: exercise %d of %d", ErrIndexOutOfRange, exercise, n)
	}
	out := g.Clone()
	ex := &out[group].Exercises[exercise]
	sets, err := Move(ex.Sets, from, to)
	if err != nil {
		return nil, err
	}
	ex.Sets = sets
	return out, nil
}

func (g Groups) Volume() decimal.Decimal {
	total := decimal.Zero
	for _, group := range g {
		for _, ex := range group.Exercises {
			for _, set := range ex.Sets {
				total = total.Add(set.Volume())
			}
		}
	}
	return total
}

func (g Groups) SetCount() int {
	n := 0
	for _, group := range g {
		for _, ex := range group.Exercises {
			n += len(ex.Sets)
		}
	}
	return n
}

// Workout is a logged training session. Its id encodes date and time, so at
// most one workout exists per second.
type Workout struct {
	ID      string    `json:"id"`
	Date    DateKey   `json:"date"`
	Time    TimeOfDay `json:"time"`
	Groups  Groups    `json:"groups"`
	Content string    `json:"content"`
}

func WorkoutID(date DateKey, t TimeOfDay) string {
	return fmt.Sprintf("%04d%02d%02d-%02d%02d%02d", date.Year, date.Month, date.Day, t.Hour, t.Minute, t.Second)
}

func NewWorkout(date DateKey, t TimeOfDay, groups Groups, content string) (*Workout, error) {
	w := &Workout{}
	if err := w.Apply(date, t, groups, content); err != nil {
		return nil, err
	}
	return w, nil
}

// Apply overwrites every field. The id follows date and time.
func (w *Workout) Apply(date DateKey, t TimeOfDay, groups Groups, content string) error {
	if date.IsZero() {
		return ErrWorkoutNoDate
	}
	if err := groups.Validate(); err != nil {
		return err
	}
	if groups == nil {
		groups = Groups{}
	}

	w.ID = WorkoutID(date, t)
	w.Date = date
	w.Time = t
	w.Groups = groups
	w.Content = strings.TrimSpace(content)
	return nil
}

func (w Workout) Volume() decimal.Decimal {
	return w.Groups.Volume()
}

// CompareWorkoutsDesc orders newest first by date, then time.
func CompareWorkoutsDesc(a, b Workout) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return b.Time.Compare(a.Time)
}

func SortWorkouts(ws []Workout) {
	slices.SortFunc(ws, CompareWorkoutsDesc)
}

// WorkoutTemplate is a reusable group layout, keyed by the slug of its name.
type WorkoutTemplate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Groups Groups `json:"groups"`
}

func NewWorkoutTemplate(name string, groups Groups) (*WorkoutTemplate, error) {
	tpl := &WorkoutTemplate{}
	if err := tpl.Apply(name, groups); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (t *WorkoutTemplate) Apply(name string, groups Groups) error {
	cleanName, err := validateName(name, ErrTemplateNameEmpty, ErrTemplateNameLong)
	if err != nil {
		return err
	}
	if err := groups.Validate(); err != nil {
		return err
	}
	if groups == nil {
		groups = Groups{}
	}

	t.ID = Slugify(cleanName)
	t.Name = cleanName
	t.Groups = groups
	return nil
}
