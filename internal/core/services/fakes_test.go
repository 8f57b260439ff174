package services_test

import (
	"context"
	"slices"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

type fakeActivityRepo struct {
	items   []*domain.Activity
	listErr error
}

func (f *fakeActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	for _, it := range f.items {
		if it.ID == a.ID {
			return domain.ErrActivityExists
		}
	}
	cp := *a
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	for _, it := range f.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, domain.ErrActivityNotFound
}

func (f *fakeActivityRepo) List(ctx context.Context, date *domain.DateKey) ([]*domain.Activity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*domain.Activity{}
	for _, it := range f.items {
		if date == nil || it.Date == *date {
			cp := *it
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Activity) int { return domain.CompareActivities(*a, *b) })
	return out, nil
}

func (f *fakeActivityRepo) Delete(ctx context.Context, id string) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = slices.Delete(f.items, i, i+1)
			return nil
		}
	}
	return domain.ErrActivityNotFound
}

type fakePresetRepo struct {
	items map[string]*domain.Preset
}

func newFakePresetRepo() *fakePresetRepo {
	return &fakePresetRepo{items: map[string]*domain.Preset{}}
}

func (f *fakePresetRepo) Create(ctx context.Context, p *domain.Preset) error {
	if _, ok := f.items[p.ID]; ok {
		return domain.ErrPresetExists
	}
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakePresetRepo) GetByID(ctx context.Context, id string) (*domain.Preset, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, domain.ErrPresetNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePresetRepo) List(ctx context.Context) ([]*domain.Preset, error) {
	out := []*domain.Preset{}
	for _, p := range f.items {
		cp := *p
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *domain.Preset) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out, nil
}

func (f *fakePresetRepo) Update(ctx context.Context, oldID string, p *domain.Preset) error {
	if _, ok := f.items[oldID]; !ok {
		return domain.ErrPresetNotFound
	}
	if _, ok := f.items[p.ID]; ok && p.ID != oldID {
		return domain.ErrPresetExists
	}
	delete(f.items, oldID)
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakePresetRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrPresetNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeWorkoutRepo struct {
	items map[string]*domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{items: map[string]*domain.Workout{}}
}

func (f *fakeWorkoutRepo) Create(ctx context.Context, w *domain.Workout) error {
	if _, ok := f.items[w.ID]; ok {
		return domain.ErrWorkoutExists
	}
	cp := *w
	cp.Groups = w.Groups.Clone()
	f.items[w.ID] = &cp
	return nil
}

func (f *fakeWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	w, ok := f.items[id]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	cp := *w
	cp.Groups = w.Groups.Clone()
	return &cp, nil
}

func (f *fakeWorkoutRepo) List(ctx context.Context) ([]*domain.Workout, error) {
	vals := make([]domain.Workout, 0, len(f.items))
	for _, w := range f.items {
		vals = append(vals, *w)
	}
	domain.SortWorkouts(vals)
	out := make([]*domain.Workout, len(vals))
	for i := range vals {
		out[i] = &vals[i]
	}
	return out, nil
}

func (f *fakeWorkoutRepo) Update(ctx context.Context, oldID string, w *domain.Workout) error {
	if _, ok := f.items[oldID]; !ok {
		return domain.ErrWorkoutNotFound
	}
	if _, ok := f.items[w.ID]; ok && w.ID != oldID {
		return domain.ErrWorkoutExists
	}
	delete(f.items, oldID)
	cp := *w
	cp.Groups = w.Groups.Clone()
	f.items[w.ID] = &cp
	return nil
}

func (f *fakeWorkoutRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrWorkoutNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeWorkoutRepo) ListDates(ctx context.Context, from, to domain.DateKey) ([]domain.DateKey, error) {
	out := []domain.DateKey{}
	for _, w := range f.items {
		if !w.Date.Before(from) && !w.Date.After(to) {
			out = append(out, w.Date)
		}
	}
	slices.SortFunc(out, domain.DateKey.Compare)
	return out, nil
}

type fakeTemplateRepo struct {
	items map[string]*domain.WorkoutTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{items: map[string]*domain.WorkoutTemplate{}}
}

func (f *fakeTemplateRepo) Create(ctx context.Context, t *domain.WorkoutTemplate) error {
	if _, ok := f.items[t.ID]; ok {
		return domain.ErrTemplateExists
	}
	cp := *t
	cp.Groups = t.Groups.Clone()
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTemplateRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutTemplate, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	cp := *t
	cp.Groups = t.Groups.Clone()
	return &cp, nil
}

func (f *fakeTemplateRepo) List(ctx context.Context) ([]*domain.WorkoutTemplate, error) {
	out := []*domain.WorkoutTemplate{}
	for _, t := range f.items {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTemplateRepo) Update(ctx context.Context, oldID string, t *domain.WorkoutTemplate) error {
	if _, ok := f.items[oldID]; !ok {
		return domain.ErrTemplateNotFound
	}
	delete(f.items, oldID)
	cp := *t
	cp.Groups = t.Groups.Clone()
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrTemplateNotFound
	}
	delete(f.items, id)
	return nil
}
