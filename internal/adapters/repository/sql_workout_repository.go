package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var (
	_ domain.WorkoutRepository  = (*SQLWorkoutRepository)(nil)
	_ domain.TemplateRepository = (*SQLTemplateRepository)(nil)
)

// Exercise groups are stored as a JSON document per row.

func marshalGroups(g domain.Groups) (string, error) {
	if g == nil {
		g = domain.Groups{}
	}
	data, err := json.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("failed to marshal exercise groups: %w", err)
	}
	return string(data), nil
}

func unmarshalGroups(id, raw string) (domain.Groups, error) {
	groups := domain.Groups{}
	if raw == "" {
		return groups, nil
	}
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exercise groups of %s: %w", id, err)
	}
	return groups, nil
}

type SQLWorkoutRepository struct {
	db *sqlx.DB
}

func NewSQLWorkoutRepository(db *sqlx.DB) *SQLWorkoutRepository {
	return &SQLWorkoutRepository{db: db}
}

type workoutRow struct {
	ID      string           `db:"id"`
	Date    domain.DateKey   `db:"date"`
	Time    domain.TimeOfDay `db:"time"`
	Groups  string           `db:"exercise_groups"`
	Content string           `db:"content"`
}

func (row workoutRow) toDomain() (*domain.Workout, error) {
	groups, err := unmarshalGroups(row.ID, row.Groups)
	if err != nil {
		return nil, err
	}
	return &domain.Workout{
		ID:      row.ID,
		Date:    row.Date,
		Time:    row.Time,
		Groups:  groups,
		Content: row.Content,
	}, nil
}

const workoutColumns = `id, date, time, exercise_groups, content`

func (r *SQLWorkoutRepository) Create(ctx context.Context, w *domain.Workout) error {
	groups, err := marshalGroups(w.Groups)
	if err != nil {
		return err
	}
	query := r.db.Rebind(`INSERT INTO workouts (` + workoutColumns + `) VALUES (?, ?, ?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, w.ID, w.Date, w.Time, groups, w.Content); err != nil {
		return mapWriteError("insert workout", err, domain.ErrWorkoutExists)
	}
	return nil
}

func (r *SQLWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var row workoutRow
	query := r.db.Rebind(`SELECT ` + workoutColumns + ` FROM workouts WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, storeError("get workout", err)
	}
	return row.toDomain()
}

func (r *SQLWorkoutRepository) List(ctx context.Context) ([]*domain.Workout, error) {
	var rows []workoutRow
	query := `SELECT ` + workoutColumns + ` FROM workouts ORDER BY date DESC, time DESC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, storeError("list workouts", err)
	}

	workouts := make([]*domain.Workout, 0, len(rows))
	for _, row := range rows {
		w, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

func (r *SQLWorkoutRepository) Update(ctx context.Context, oldID string, w *domain.Workout) error {
	groups, err := marshalGroups(w.Groups)
	if err != nil {
		return err
	}
	query := r.db.Rebind(`
        UPDATE workouts SET
            id = ?, date = ?, time = ?, exercise_groups = ?, content = ?
        WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, w.ID, w.Date, w.Time, groups, w.Content, oldID)
	if err != nil {
		return mapWriteError("update workout", err, domain.ErrWorkoutExists)
	}
	return expectRow(res, domain.ErrWorkoutNotFound)
}

func (r *SQLWorkoutRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM workouts WHERE id = ?`), id)
	if err != nil {
		return storeError("delete workout", err)
	}
	return expectRow(res, domain.ErrWorkoutNotFound)
}

func (r *SQLWorkoutRepository) ListDates(ctx context.Context, from, to domain.DateKey) ([]domain.DateKey, error) {
	dates := []domain.DateKey{}
	query := r.db.Rebind(`SELECT date FROM workouts WHERE date >= ? AND date <= ? ORDER BY date, time`)
	if err := r.db.SelectContext(ctx, &dates, query, from, to); err != nil {
		return nil, storeError("list workout dates", err)
	}
	return dates, nil
}

type SQLTemplateRepository struct {
	db *sqlx.DB
}

func NewSQLTemplateRepository(db *sqlx.DB) *SQLTemplateRepository {
	return &SQLTemplateRepository{db: db}
}

type templateRow struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Groups string `db:"exercise_groups"`
}

func (row templateRow) toDomain() (*domain.WorkoutTemplate, error) {
	groups, err := unmarshalGroups(row.ID, row.Groups)
	if err != nil {
		return nil, err
	}
	return &domain.WorkoutTemplate{ID: row.ID, Name: row.Name, Groups: groups}, nil
}

func (r *SQLTemplateRepository) Create(ctx context.Context, tpl *domain.WorkoutTemplate) error {
	groups, err := marshalGroups(tpl.Groups)
	if err != nil {
		return err
	}
	query := r.db.Rebind(`INSERT INTO workout_templates (id, name, exercise_groups) VALUES (?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, tpl.ID, tpl.Name, groups); err != nil {
		return mapWriteError("insert template", err, domain.ErrTemplateExists)
	}
	return nil
}

func (r *SQLTemplateRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutTemplate, error) {
	var row templateRow
	query := r.db.Rebind(`SELECT id, name, exercise_groups FROM workout_templates WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, storeError("get template", err)
	}
	return row.toDomain()
}

func (r *SQLTemplateRepository) List(ctx context.Context) ([]*domain.WorkoutTemplate, error) {
	var rows []templateRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, exercise_groups FROM workout_templates ORDER BY name, id`); err != nil {
		return nil, storeError("list templates", err)
	}

	templates := make([]*domain.WorkoutTemplate, 0, len(rows))
	for _, row := range rows {
		tpl, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

func (r *SQLTemplateRepository) Update(ctx context.Context, oldID string, tpl *domain.WorkoutTemplate) error {
	groups, err := marshalGroups(tpl.Groups)
	if err != nil {
		return err
	}
	query := r.db.Rebind(`UPDATE workout_templates SET id = ?, name = ?, exercise_groups = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, tpl.ID, tpl.Name, groups, oldID)
	if err != nil {
		return mapWriteError("update template", err, domain.ErrTemplateExists)
	}
	return expectRow(res, domain.ErrTemplateNotFound)
}

func (r *SQLTemplateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM workout_templates WHERE id = ?`), id)
	if err != nil {
		return storeError("delete template", err)
	}
	return expectRow(res, domain.ErrTemplateNotFound)
}
