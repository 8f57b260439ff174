package domain

import (
	"fmt"
	"time"
)

var (
	ErrActivityNotFound  = fmt.Errorf("activity %w", ErrNotFound)
	ErrActivityExists    = fmt.Errorf("activity %w on this date", ErrDuplicate)
	ErrActivityNameEmpty = fmt.Errorf("%w: activity name cannot be empty", ErrValidation)
	ErrActivityNameLong  = fmt.Errorf("%w: activity name is too long (max 100 chars)", ErrValidation)
	ErrActivityNoDate    = fmt.Errorf("%w: activity date is required", ErrValidation)
)

// Activity is a one-off event tied to a single date. It is never completed,
// it only exists or not.
type Activity struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Date      DateKey   `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ActivityID joins the date and the slug of the name, so the same name can
// appear once per day.
func ActivityID(date DateKey, name string) string {
	return date.String() + "-" + Slugify(name)
}

func NewActivity(name string, date DateKey) (*Activity, error) {
	cleanName, err := validateName(name, ErrActivityNameEmpty, ErrActivityNameLong)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, ErrActivityNoDate
	}

	return &Activity{
		ID:        ActivityID(date, cleanName),
		Name:      cleanName,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// CompareActivities orders by date, then name.
func CompareActivities(a, b Activity) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	}
	return 0
}
