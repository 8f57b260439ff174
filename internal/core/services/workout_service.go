package services

import (
	"context"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

type WorkoutService struct {
	workouts  domain.WorkoutRepository
	templates domain.TemplateRepository
}

func NewWorkoutService(workouts domain.WorkoutRepository, templates domain.TemplateRepository) *WorkoutService {
	return &WorkoutService{
		workouts:  workouts,
		templates: templates,
	}
}

type WorkoutInput struct {
	Date    domain.DateKey
	Time    domain.TimeOfDay
	Groups  domain.Groups
	Content string
}

func (s *WorkoutService) List(ctx context.Context) ([]*domain.Workout, error) {
	return s.workouts.List(ctx)
}

func (s *WorkoutService) Get(ctx context.Context, id string) (*domain.Workout, error) {
	return s.workouts.GetByID(ctx, id)
}

func (s *WorkoutService) Create(ctx context.Context, input WorkoutInput) (*domain.Workout, error) {
	workout, err := domain.NewWorkout(input.Date, input.Time, input.Groups, input.Content)
	if err != nil {
		return nil, err
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Update replaces the workout. Changing date or time moves it to a new id.
func (s *WorkoutService) Update(ctx context.Context, id string, input WorkoutInput) (*domain.Workout, error) {
	workout, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := workout.Apply(input.Date, input.Time, input.Groups, input.Content); err != nil {
		return nil, err
	}
	if err := s.workouts.Update(ctx, id, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id string) error {
	return s.workouts.Delete(ctx, id)
}

func (s *WorkoutService) MoveGroup(ctx context.Context, id string, from, to int) (*domain.Workout, error) {
	return s.reorder(ctx, id, func(g domain.Groups) (domain.Groups, error) { return g.Move(from, to) })
}

func (s *WorkoutService) MoveExercise(ctx context.Context, id string, group, from, to int) (*domain.Workout, error) {
	return s.reorder(ctx, id, func(g domain.Groups) (domain.Groups, error) { return g.MoveExercise(group, from, to) })
}

func (s *WorkoutService) MoveSet(ctx context.Context, id string, group, exercise, from, to int) (*domain.Workout, error) {
	return s.reorder(ctx, id, func(g domain.Groups) (domain.Groups, error) { return g.MoveSet(group, exercise, from, to) })
}

// reorder stores the workout only when the move succeeds.
func (s *WorkoutService) reorder(ctx context.Context, id string, move func(domain.Groups) (domain.Groups, error)) (*domain.Workout, error) {
	workout, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	groups, err := move(workout.Groups)
	if err != nil {
		return nil, err
	}
	workout.Groups = groups
	if err := s.workouts.Update(ctx, id, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) ListTemplates(ctx context.Context) ([]*domain.WorkoutTemplate, error) {
	return s.templates.List(ctx)
}

func (s *WorkoutService) GetTemplate(ctx context.Context, id string) (*domain.WorkoutTemplate, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *WorkoutService) CreateTemplate(ctx context.Context, name string, groups domain.Groups) (*domain.WorkoutTemplate, error) {
	tpl, err := domain.NewWorkoutTemplate(name, groups)
	if err != nil {
		return nil, err
	}
	if err := s.templates.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *WorkoutService) UpdateTemplate(ctx context.Context, id, name string, groups domain.Groups) (*domain.WorkoutTemplate, error) {
	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tpl.Apply(name, groups); err != nil {
		return nil, err
	}
	if err := s.templates.Update(ctx, id, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *WorkoutService) DeleteTemplate(ctx context.Context, id string) error {
	return s.templates.Delete(ctx, id)
}

func (s *WorkoutService) MoveTemplateGroup(ctx context.Context, id string, from, to int) (*domain.WorkoutTemplate, error) {
	return s.reorderTemplate(ctx, id, func(g domain.Groups) (domain.Groups, error) { return g.Move(from, to) })
}

func (s *WorkoutService) MoveTemplateExercise(ctx context.Context, id string, group, from, to int) (*domain.WorkoutTemplate, error) {
	return s.reorderTemplate(ctx, id, func(g domain.Groups) (domain.Groups, error) { return g.MoveExercise(group, from, to) })
}

func (s *WorkoutService) MoveTemplateSet(ctx context.Context, id string, group, exercise, from, to int) (*domain.WorkoutTemplate, error) {
	return s.reorderTemplate(ctx, id, func(g domain.Groups) (domain.Groups, error) { return g.MoveSet(group, exercise, from, to) })
}

func (s *WorkoutService) reorderTemplate(ctx context.Context, id string, move func(domain.Groups) (domain.Groups, error)) (*domain.WorkoutTemplate, error) {
	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	groups, err := move(tpl.Groups)
	if err != nil {
		return nil, err
	}
	tpl.Groups = groups
	if err := s.templates.Update(ctx, id, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}
