package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var (
	_ domain.ActivityRepository = (*SQLActivityRepository)(nil)
	_ domain.PresetRepository   = (*SQLPresetRepository)(nil)
)

type SQLActivityRepository struct {
	db *sqlx.DB
}

func NewSQLActivityRepository(db *sqlx.DB) *SQLActivityRepository {
	return &SQLActivityRepository{db: db}
}

const activityColumns = `id, name, date, created_at`

func (r *SQLActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := r.db.Rebind(`INSERT INTO activities (` + activityColumns + `) VALUES (?, ?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Date, a.CreatedAt); err != nil {
		return mapWriteError("insert activity", err, domain.ErrActivityExists)
	}
	return nil
}

func (r *SQLActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	var a domain.Activity
	query := r.db.Rebind(`SELECT ` + activityColumns + ` FROM activities WHERE id = ?`)
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, storeError("get activity", err)
	}
	return &a, nil
}

func (r *SQLActivityRepository) List(ctx context.Context, date *domain.DateKey) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities`
	var args []any
	if date != nil {
		query += ` WHERE date = ?`
		args = append(args, *date)
	}
	query += ` ORDER BY date, name`

	activities := []*domain.Activity{}
	if err := r.db.SelectContext(ctx, &activities, r.db.Rebind(query), args...); err != nil {
		return nil, storeError("list activities", err)
	}
	return activities, nil
}

func (r *SQLActivityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM activities WHERE id = ?`), id)
	if err != nil {
		return storeError("delete activity", err)
	}
	return expectRow(res, domain.ErrActivityNotFound)
}

type SQLPresetRepository struct {
	db *sqlx.DB
}

func NewSQLPresetRepository(db *sqlx.DB) *SQLPresetRepository {
	return &SQLPresetRepository{db: db}
}

func (r *SQLPresetRepository) Create(ctx context.Context, p *domain.Preset) error {
	query := r.db.Rebind(`INSERT INTO presets (id, name) VALUES (?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name); err != nil {
		return mapWriteError("insert preset", err, domain.ErrPresetExists)
	}
	return nil
}

func (r *SQLPresetRepository) GetByID(ctx context.Context, id string) (*domain.Preset, error) {
	var p domain.Preset
	if err := r.db.GetContext(ctx, &p, r.db.Rebind(`SELECT id, name FROM presets WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPresetNotFound
		}
		return nil, storeError("get preset", err)
	}
	return &p, nil
}

func (r *SQLPresetRepository) List(ctx context.Context) ([]*domain.Preset, error) {
	presets := []*domain.Preset{}
	if err := r.db.SelectContext(ctx, &presets, `SELECT id, name FROM presets ORDER BY name, id`); err != nil {
		return nil, storeError("list presets", err)
	}
	return presets, nil
}

func (r *SQLPresetRepository) Update(ctx context.Context, oldID string, p *domain.Preset) error {
	query := r.db.Rebind(`UPDATE presets SET id = ?, name = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, p.ID, p.Name, oldID)
	if err != nil {
		return mapWriteError("update preset", err, domain.ErrPresetExists)
	}
	return expectRow(res, domain.ErrPresetNotFound)
}

func (r *SQLPresetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM presets WHERE id = ?`), id)
	if err != nil {
		return storeError("delete preset", err)
	}
	return expectRow(res, domain.ErrPresetNotFound)
}
