package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// FirstDate is the earliest valid DateKey.
var FirstDate = DateKey{Year: 1, Month: 1, Day: 1}

// DateKey is a calendar date without time or zone. Its canonical string form
// (YYYY-MM-DD) is the join key for completions, activities and workouts.
type DateKey struct {
	Year  int
	Month int
	Day   int
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func NewDateKey(year, month, day int) (DateKey, error) {
	if year < 1 || year > 9999 {
		return DateKey{}, &InvalidDateError{Reason: fmt.Sprintf("year %d out of range", year)}
	}
	if month < 1 || month > 12 {
		return DateKey{}, &InvalidDateError{Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return DateKey{}, &InvalidDateError{
			Reason: fmt.Sprintf("day %d out of range for %04d-%02d", day, year, month),
		}
	}
	return DateKey{Year: year, Month: month, Day: day}, nil
}

// MustDateKey panics on invalid input. Intended for constants and tests.
func MustDateKey(year, month, day int) DateKey {
	d, err := NewDateKey(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateKey{}, &InvalidDateError{Input: s, Reason: "expected YYYY-MM-DD"}
	}
	d, err := NewDateKey(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return DateKey{}, &InvalidDateError{Input: s, Reason: err.(*InvalidDateError).Reason}
	}
	return d, nil
}

// DateKeyFromTime takes the calendar date of t in its own location.
func DateKeyFromTime(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{Year: y, Month: int(m), Day: d}
}

func (d DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d DateKey) IsZero() bool {
	return d == DateKey{}
}

// Time returns midnight UTC of the date.
func (d DateKey) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns 0 for Sunday through 6 for Saturday.
func (d DateKey) Weekday() int {
	return int(d.Time().Weekday())
}

func (d DateKey) Compare(other DateKey) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

func (d DateKey) Before(other DateKey) bool { return d.Compare(other) < 0 }
func (d DateKey) After(other DateKey) bool  { return d.Compare(other) > 0 }

func (d DateKey) AddDays(n int) DateKey {
	return DateKeyFromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil counts whole days from d to other (negative when other is earlier).
func (d DateKey) DaysUntil(other DateKey) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d DateKey) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DateKey) UnmarshalText(text []byte) error {
	parsed, err := ParseDateKey(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateKey) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *DateKey) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = DateKeyFromTime(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateKey", src)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
