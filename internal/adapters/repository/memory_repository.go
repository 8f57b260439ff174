package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

// memoryStore is a mutex guarded map keyed by id. Values are cloned on the
// way in and out so callers never share state with the store.
type memoryStore[T any] struct {
	mu       sync.RWMutex
	items    map[string]T
	clone    func(T) T
	notFound error
	exists   error
}

func newMemoryStore[T any](clone func(T) T, notFound, exists error) *memoryStore[T] {
	return &memoryStore[T]{
		items:    make(map[string]T),
		clone:    clone,
		notFound: notFound,
		exists:   exists,
	}
}

func (s *memoryStore[T]) create(id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return s.exists
	}
	s.items[id] = s.clone(v)
	return nil
}

func (s *memoryStore[T]) get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, s.notFound
	}
	return s.clone(v), nil
}

func (s *memoryStore[T]) list(keep func(T) bool, compare func(a, b T) int) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if keep == nil || keep(v) {
			out = append(out, s.clone(v))
		}
	}
	slices.SortFunc(out, compare)
	return out
}

// replace stores v under newID in place of oldID.
func (s *memoryStore[T]) replace(oldID, newID string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[oldID]; !ok {
		return s.notFound
	}
	if newID != oldID {
		if _, taken := s.items[newID]; taken {
			return s.exists
		}
		delete(s.items, oldID)
	}
	s.items[newID] = s.clone(v)
	return nil
}

// modify applies fn to the stored value in place.
func (s *memoryStore[T]) modify(id string, fn func(T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[id]
	if !ok {
		return s.notFound
	}
	fn(v)
	return nil
}

func (s *memoryStore[T]) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return s.notFound
	}
	delete(s.items, id)
	return nil
}

func shallowClone[T any](v *T) *T {
	c := *v
	return &c
}

func compareByName(nameA, idA, nameB, idB string) int {
	return cmp.Or(cmp.Compare(nameA, nameB), cmp.Compare(idA, idB))
}

var (
	_ domain.HabitRepository    = (*MemoryHabitRepository)(nil)
	_ domain.ActivityRepository = (*MemoryActivityRepository)(nil)
	_ domain.PresetRepository   = (*MemoryPresetRepository)(nil)
	_ domain.MediaRepository    = (*MemoryMediaRepository)(nil)
	_ domain.WorkoutRepository  = (*MemoryWorkoutRepository)(nil)
	_ domain.TemplateRepository = (*MemoryTemplateRepository)(nil)
)

type MemoryHabitRepository struct {
	store *memoryStore[*domain.Habit]
}

func NewMemoryHabitRepository() *MemoryHabitRepository {
	return &MemoryHabitRepository{
		store: newMemoryStore((*domain.Habit).Clone, domain.ErrHabitNotFound, domain.ErrHabitExists),
	}
}

func (r *MemoryHabitRepository) Create(_ context.Context, h *domain.Habit) error {
	return r.store.create(h.ID, h)
}

func (r *MemoryHabitRepository) GetByID(_ context.Context, id string) (*domain.Habit, error) {
	return r.store.get(id)
}

func (r *MemoryHabitRepository) List(_ context.Context) ([]*domain.Habit, error) {
	return r.store.list(nil, func(a, b *domain.Habit) int {
		return compareByName(a.Name, a.ID, b.Name, b.ID)
	}), nil
}

func (r *MemoryHabitRepository) Update(_ context.Context, oldID string, h *domain.Habit) error {
	return r.store.replace(oldID, h.ID, h)
}

func (r *MemoryHabitRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

func (r *MemoryHabitRepository) SetCompletion(_ context.Context, id string, date domain.DateKey, completed bool) error {
	return r.store.modify(id, func(h *domain.Habit) {
		if h.IsCompleted(date) != completed {
			*h = h.Toggle(date)
		}
	})
}

func (r *MemoryHabitRepository) UpdateStreaks(_ context.Context, id string, current, longest int) error {
	return r.store.modify(id, func(h *domain.Habit) {
		h.CurrentStreak = current
		h.LongestStreak = longest
	})
}

type MemoryActivityRepository struct {
	store *memoryStore[*domain.Activity]
}

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{
		store: newMemoryStore(shallowClone[domain.Activity], domain.ErrActivityNotFound, domain.ErrActivityExists),
	}
}

func (r *MemoryActivityRepository) Create(_ context.Context, a *domain.Activity) error {
	return r.store.create(a.ID, a)
}

func (r *MemoryActivityRepository) GetByID(_ context.Context, id string) (*domain.Activity, error) {
	return r.store.get(id)
}

func (r *MemoryActivityRepository) List(_ context.Context, date *domain.DateKey) ([]*domain.Activity, error) {
	var keep func(*domain.Activity) bool
	if date != nil {
		keep = func(a *domain.Activity) bool { return a.Date == *date }
	}
	return r.store.list(keep, func(a, b *domain.Activity) int {
		return domain.CompareActivities(*a, *b)
	}), nil
}

func (r *MemoryActivityRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

type MemoryPresetRepository struct {
	store *memoryStore[*domain.Preset]
}

func NewMemoryPresetRepository() *MemoryPresetRepository {
	return &MemoryPresetRepository{
		store: newMemoryStore(shallowClone[domain.Preset], domain.ErrPresetNotFound, domain.ErrPresetExists),
	}
}

func (r *MemoryPresetRepository) Create(_ context.Context, p *domain.Preset) error {
	return r.store.create(p.ID, p)
}

func (r *MemoryPresetRepository) GetByID(_ context.Context, id string) (*domain.Preset, error) {
	return r.store.get(id)
}

func (r *MemoryPresetRepository) List(_ context.Context) ([]*domain.Preset, error) {
	return r.store.list(nil, func(a, b *domain.Preset) int {
		return compareByName(a.Name, a.ID, b.Name, b.ID)
	}), nil
}

func (r *MemoryPresetRepository) Update(_ context.Context, oldID string, p *domain.Preset) error {
	return r.store.replace(oldID, p.ID, p)
}

func (r *MemoryPresetRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

type MemoryMediaRepository struct {
	store *memoryStore[*domain.Media]
}

func NewMemoryMediaRepository() *MemoryMediaRepository {
	return &MemoryMediaRepository{
		store: newMemoryStore(shallowClone[domain.Media], domain.ErrMediaNotFound, domain.ErrDuplicateName),
	}
}

func (r *MemoryMediaRepository) Create(_ context.Context, m *domain.Media) error {
	return r.store.create(m.ID, m)
}

func (r *MemoryMediaRepository) GetByID(_ context.Context, id string) (*domain.Media, error) {
	return r.store.get(id)
}

func (r *MemoryMediaRepository) List(_ context.Context, status *domain.MediaStatus) ([]*domain.Media, error) {
	var keep func(*domain.Media) bool
	if status != nil {
		keep = func(m *domain.Media) bool { return m.Status == *status }
	}
	return r.store.list(keep, func(a, b *domain.Media) int {
		return compareByName(a.Name, a.ID, b.Name, b.ID)
	}), nil
}

func (r *MemoryMediaRepository) Update(_ context.Context, oldID string, m *domain.Media) error {
	return r.store.replace(oldID, m.ID, m)
}

func (r *MemoryMediaRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

func cloneWorkout(w *domain.Workout) *domain.Workout {
	c := *w
	c.Groups = w.Groups.Clone()
	return &c
}

type MemoryWorkoutRepository struct {
	store *memoryStore[*domain.Workout]
}

func NewMemoryWorkoutRepository() *MemoryWorkoutRepository {
	return &MemoryWorkoutRepository{
		store: newMemoryStore(cloneWorkout, domain.ErrWorkoutNotFound, domain.ErrWorkoutExists),
	}
}

func (r *MemoryWorkoutRepository) Create(_ context.Context, w *domain.Workout) error {
	return r.store.create(w.ID, w)
}

func (r *MemoryWorkoutRepository) GetByID(_ context.Context, id string) (*domain.Workout, error) {
	return r.store.get(id)
}

func (r *MemoryWorkoutRepository) List(_ context.Context) ([]*domain.Workout, error) {
	return r.store.list(nil, func(a, b *domain.Workout) int {
		return domain.CompareWorkoutsDesc(*a, *b)
	}), nil
}

func (r *MemoryWorkoutRepository) Update(_ context.Context, oldID string, w *domain.Workout) error {
	return r.store.replace(oldID, w.ID, w)
}

func (r *MemoryWorkoutRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

func (r *MemoryWorkoutRepository) ListDates(_ context.Context, from, to domain.DateKey) ([]domain.DateKey, error) {
	inRange := func(w *domain.Workout) bool {
		return !w.Date.Before(from) && !w.Date.After(to)
	}
	workouts := r.store.list(inRange, func(a, b *domain.Workout) int {
		return domain.CompareWorkoutsDesc(*b, *a)
	})

	dates := make([]domain.DateKey, 0, len(workouts))
	for _, w := range workouts {
		dates = append(dates, w.Date)
	}
	return dates, nil
}

func cloneTemplate(t *domain.WorkoutTemplate) *domain.WorkoutTemplate {
	c := *t
	c.Groups = t.Groups.Clone()
	return &c
}

type MemoryTemplateRepository struct {
	store *memoryStore[*domain.WorkoutTemplate]
}

func NewMemoryTemplateRepository() *MemoryTemplateRepository {
	return &MemoryTemplateRepository{
		store: newMemoryStore(cloneTemplate, domain.ErrTemplateNotFound, domain.ErrTemplateExists),
	}
}

func (r *MemoryTemplateRepository) Create(_ context.Context, tpl *domain.WorkoutTemplate) error {
	return r.store.create(tpl.ID, tpl)
}

func (r *MemoryTemplateRepository) GetByID(_ context.Context, id string) (*domain.WorkoutTemplate, error) {
	return r.store.get(id)
}

func (r *MemoryTemplateRepository) List(_ context.Context) ([]*domain.WorkoutTemplate, error) {
	return r.store.list(nil, func(a, b *domain.WorkoutTemplate) int {
		return compareByName(a.Name, a.ID, b.Name, b.ID)
	}), nil
}

func (r *MemoryTemplateRepository) Update(_ context.Context, oldID string, tpl *domain.WorkoutTemplate) error {
	return r.store.replace(oldID, tpl.ID, tpl)
}

func (r *MemoryTemplateRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}
