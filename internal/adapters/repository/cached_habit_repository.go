package repository

import (
	"context"

	"github.com/comitanigiacomo/shelf/internal/adapters/cache"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/sirupsen/logrus"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const habitListKey = "all"

// CachedHabitRepository keeps the full habit list in Redis. The calendar
// reads that list on every request; any write drops it.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *cache.JSONCache
	log   *logrus.Entry
}

func NewCachedHabitRepository(next domain.HabitRepository, c *cache.JSONCache, log *logrus.Entry) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: c,
		log:   log,
	}
}

func (r *CachedHabitRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, habitListKey); err != nil {
		r.log.WithError(err).Warn("failed to invalidate habit cache")
	}
}

func (r *CachedHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	found, err := r.cache.Get(ctx, habitListKey, &habits)
	if err != nil {
		r.log.WithError(err).Warn("habit cache read failed")
	}
	if found {
		return habits, nil
	}

	habits, err = r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, habitListKey, habits); err != nil {
		r.log.WithError(err).Warn("habit cache write failed")
	}
	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	if err := r.next.Create(ctx, h); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, oldID string, h *domain.Habit) error {
	if err := r.next.Update(ctx, oldID, h); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) SetCompletion(ctx context.Context, id string, date domain.DateKey, completed bool) error {
	if err := r.next.SetCompletion(ctx, id, date, completed); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	if err := r.next.UpdateStreaks(ctx, id, current, longest); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
