package calendar

import (
	"time"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

func PreviousMonth(year, month int) (int, int) {
	if month <= 1 {
		return year - 1, 12
	}
	return year, month - 1
}

func NextMonth(year, month int) (int, int) {
	if month >= 12 {
		return year + 1, 1
	}
	return year, month + 1
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Navigator resolves "today" in a fixed location. It is the only place the
// wall clock is read.
type Navigator struct {
	Clock    Clock
	Location *time.Location
}

func NewNavigator(clock Clock, loc *time.Location) Navigator {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return Navigator{Clock: clock, Location: loc}
}

func (n Navigator) Today() domain.DateKey {
	clock := n.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()
	if n.Location != nil {
		now = now.In(n.Location)
	}
	return domain.DateKeyFromTime(now)
}

// Resolve fills a missing year or month from today and validates the pair.
func (n Navigator) Resolve(year, month *int) (int, int, error) {
	today := n.Today()
	y, m := today.Year, today.Month
	if year != nil {
		y = *year
	}
	if month != nil {
		m = *month
	}
	if _, err := domain.NewDateKey(y, m, 1); err != nil {
		return 0, 0, err
	}
	return y, m, nil
}
