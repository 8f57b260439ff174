package services

import (
	"context"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/sirupsen/logrus"
)

// StreakScheduler queues a streak recomputation for a habit.
type StreakScheduler interface {
	Enqueue(habitID string)
}

type HabitService struct {
	repo    domain.HabitRepository
	streaks StreakScheduler
	log     *logrus.Entry
}

func NewHabitService(repo domain.HabitRepository, streaks StreakScheduler, log *logrus.Entry) *HabitService {
	return &HabitService{
		repo:    repo,
		streaks: streaks,
		log:     log,
	}
}

type CreateHabitInput struct {
	Name        string
	Days        []int
	Color       string
	Completions []domain.DateKey
}

// UpdateHabitInput leaves a field unchanged when it is empty or nil.
type UpdateHabitInput struct {
	ID          string
	Name        string
	Days        []int
	Color       string
	Completions []domain.DateKey
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name, input.Days, input.Color, input.Completions)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	s.scheduleStreak(habit.ID)
	return habit, nil
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.repo.List(ctx)
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	days := habit.Days
	if input.Days != nil {
		days = input.Days
	}

	err = habit.Update(
		mergeString(input.Name, habit.Name),
		days,
		mergeString(input.Color, habit.Color),
		input.Completions,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, input.ID, habit); err != nil {
		return nil, err
	}

	if input.Completions != nil {
		s.scheduleStreak(habit.ID)
	}
	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Toggle flips the completion of date and persists only that date.
func (s *HabitService) Toggle(ctx context.Context, id string, date domain.DateKey) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	toggled := habit.Toggle(date)
	if err := s.repo.SetCompletion(ctx, id, date, toggled.IsCompleted(date)); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"habit_id":  id,
		"date":      date.String(),
		"completed": toggled.IsCompleted(date),
	}).Debug("completion toggled")

	s.scheduleStreak(id)
	return &toggled, nil
}

func (s *HabitService) scheduleStreak(id string) {
	if s.streaks == nil {
		return
	}
	s.streaks.Enqueue(id)
}
