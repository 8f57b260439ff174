package services

import (
	"context"

	"github.com/comitanigiacomo/shelf/internal/core/calendar"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// CalendarService loads one consistent snapshot per call and hands it to the
// calendar package.
type CalendarService struct {
	habits     domain.HabitRepository
	activities domain.ActivityRepository
	workouts   domain.WorkoutRepository
	nav        calendar.Navigator
	log        *logrus.Entry
}

func NewCalendarService(
	habits domain.HabitRepository,
	activities domain.ActivityRepository,
	workouts domain.WorkoutRepository,
	nav calendar.Navigator,
	log *logrus.Entry,
) *CalendarService {
	return &CalendarService{
		habits:     habits,
		activities: activities,
		workouts:   workouts,
		nav:        nav,
		log:        log,
	}
}

type DayDetail struct {
	Cell       calendar.DayCell   `json:"cell"`
	Habits     []*domain.Habit    `json:"habits"`
	Activities []*domain.Activity `json:"activities"`
}

// WorkoutCalendar is the month view restricted to the has-workout marker.
type WorkoutCalendar struct {
	Year         int              `json:"year"`
	Month        int              `json:"month"`
	MonthName    string           `json:"month_name"`
	FirstWeekday int              `json:"first_weekday"`
	DaysInMonth  int              `json:"days_in_month"`
	WorkoutDates []domain.DateKey `json:"workout_dates"`
	Today        domain.DateKey   `json:"today"`
	PrevYear     int              `json:"prev_year"`
	PrevMonth    int              `json:"prev_month"`
	NextYear     int              `json:"next_year"`
	NextMonth    int              `json:"next_month"`
}

func (s *CalendarService) Today() domain.DateKey {
	return s.nav.Today()
}

func (s *CalendarService) snapshot(ctx context.Context, from, to domain.DateKey) (calendar.Snapshot, []*domain.Habit, []*domain.Activity, error) {
	var (
		habits     []*domain.Habit
		activities []*domain.Activity
		dates      []domain.DateKey
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		habits, err = s.habits.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.activities.List(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		dates, err = s.workouts.ListDates(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return calendar.Snapshot{}, nil, nil, err
	}

	inRange := make([]*domain.Activity, 0, len(activities))
	for _, a := range activities {
		if !a.Date.Before(from) && !a.Date.After(to) {
			inRange = append(inRange, a)
		}
	}

	snap := calendar.Snapshot{
		Habits:       deref(habits),
		Activities:   deref(inRange),
		WorkoutDates: dates,
	}
	return snap, habits, inRange, nil
}

// HabitMonth builds the habit grid. A nil year or month means the current one.
func (s *CalendarService) HabitMonth(ctx context.Context, year, month *int) (calendar.MonthGrid, error) {
	y, m, err := s.nav.Resolve(year, month)
	if err != nil {
		return calendar.MonthGrid{}, err
	}

	from, to := monthBounds(y, m)
	snap, _, _, err := s.snapshot(ctx, from, to)
	if err != nil {
		return calendar.MonthGrid{}, err
	}

	grid, err := calendar.BuildMonthGrid(y, m, snap, s.nav.Today())
	if err != nil {
		return calendar.MonthGrid{}, err
	}

	s.log.WithFields(logrus.Fields{
		"year":   y,
		"month":  m,
		"habits": len(snap.Habits),
	}).Debug("habit month built")

	return grid, nil
}

func (s *CalendarService) Day(ctx context.Context, date domain.DateKey) (*DayDetail, error) {
	snap, habits, activities, err := s.snapshot(ctx, date, date)
	if err != nil {
		return nil, err
	}

	cell := calendar.AggregateDay(snap, date)
	cell.IsToday = date == s.nav.Today()

	return &DayDetail{
		Cell:       cell,
		Habits:     habits,
		Activities: activities,
	}, nil
}

func (s *CalendarService) WorkoutMonth(ctx context.Context, year, month *int) (*WorkoutCalendar, error) {
	y, m, err := s.nav.Resolve(year, month)
	if err != nil {
		return nil, err
	}

	from, to := monthBounds(y, m)
	dates, err := s.workouts.ListDates(ctx, from, to)
	if err != nil {
		return nil, err
	}

	today := s.nav.Today()
	grid, err := calendar.BuildMonthGrid(y, m, calendar.Snapshot{WorkoutDates: dates}, today)
	if err != nil {
		return nil, err
	}

	out := &WorkoutCalendar{
		Year:         grid.Year,
		Month:        grid.Month,
		MonthName:    grid.MonthName,
		FirstWeekday: grid.LeadingBlankCount,
		DaysInMonth:  grid.DayCount,
		WorkoutDates: []domain.DateKey{},
		Today:        today,
		PrevYear:     grid.PrevYear,
		PrevMonth:    grid.PrevMonth,
		NextYear:     grid.NextYear,
		NextMonth:    grid.NextMonth,
	}
	for _, cell := range grid.Cells {
		if cell.WorkoutCount > 0 {
			out.WorkoutDates = append(out.WorkoutDates, cell.Date)
		}
	}
	return out, nil
}

// Stats covers [start, end]. end defaults to today and start to the six
// days before end, but never before year 1.
func (s *CalendarService) Stats(ctx context.Context, start, end *domain.DateKey) (*calendar.RangeStats, error) {
	to := s.nav.Today()
	if end != nil {
		to = *end
	}
	from := to.AddDays(-(calendar.DefaultRangeDays - 1))
	if from.Before(domain.FirstDate) {
		from = domain.FirstDate
	}
	if start != nil {
		from = *start
	}

	if err := calendar.ValidateRange(from, to); err != nil {
		return nil, err
	}

	snap, _, _, err := s.snapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	stats, err := calendar.ComputeRangeStats(snap, from, to)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func monthBounds(year, month int) (domain.DateKey, domain.DateKey) {
	return domain.DateKey{Year: year, Month: month, Day: 1},
		domain.DateKey{Year: year, Month: month, Day: domain.DaysInMonth(year, month)}
}
