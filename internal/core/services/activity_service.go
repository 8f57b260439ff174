package services

import (
	"context"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

// ActivityService manages one-off activities and the presets offered when
// logging them.
type ActivityService struct {
	activities domain.ActivityRepository
	presets    domain.PresetRepository
}

func NewActivityService(activities domain.ActivityRepository, presets domain.PresetRepository) *ActivityService {
	return &ActivityService{
		activities: activities,
		presets:    presets,
	}
}

func (s *ActivityService) List(ctx context.Context, date *domain.DateKey) ([]*domain.Activity, error) {
	return s.activities.List(ctx, date)
}

func (s *ActivityService) Create(ctx context.Context, name string, date domain.DateKey) (*domain.Activity, error) {
	activity, err := domain.NewActivity(name, date)
	if err != nil {
		return nil, err
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

func (s *ActivityService) ListPresets(ctx context.Context) ([]*domain.Preset, error) {
	return s.presets.List(ctx)
}

func (s *ActivityService) CreatePreset(ctx context.Context, name string) (*domain.Preset, error) {
	preset, err := domain.NewPreset(name)
	if err != nil {
		return nil, err
	}
	if err := s.presets.Create(ctx, preset); err != nil {
		return nil, err
	}
	return preset, nil
}

func (s *ActivityService) UpdatePreset(ctx context.Context, id, name string) (*domain.Preset, error) {
	preset, err := s.presets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := preset.Rename(name); err != nil {
		return nil, err
	}
	if err := s.presets.Update(ctx, id, preset); err != nil {
		return nil, err
	}
	return preset, nil
}

func (s *ActivityService) DeletePreset(ctx context.Context, id string) error {
	return s.presets.Delete(ctx, id)
}

// Suggestions merges preset names with every activity name used so far.
func (s *ActivityService) Suggestions(ctx context.Context) ([]string, error) {
	presets, err := s.presets.List(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	return domain.SuggestionNames(deref(presets), deref(activities)), nil
}

func deref[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}
