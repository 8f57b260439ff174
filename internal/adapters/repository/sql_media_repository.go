package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.MediaRepository = (*SQLMediaRepository)(nil)

type SQLMediaRepository struct {
	db *sqlx.DB
}

func NewSQLMediaRepository(db *sqlx.DB) *SQLMediaRepository {
	return &SQLMediaRepository{db: db}
}

const mediaColumns = `id, name, country, type, status, rating, review, created_at, updated_at`

func (r *SQLMediaRepository) Create(ctx context.Context, m *domain.Media) error {
	query := r.db.Rebind(`INSERT INTO media (` + mediaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Country, m.Type, m.Status, m.Rating, m.Review, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return mapWriteError("insert media", err, domain.ErrDuplicateName)
	}
	return nil
}

func (r *SQLMediaRepository) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	var m domain.Media
	query := r.db.Rebind(`SELECT ` + mediaColumns + ` FROM media WHERE id = ?`)
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, storeError("get media", err)
	}
	return &m, nil
}

func (r *SQLMediaRepository) List(ctx context.Context, status *domain.MediaStatus) ([]*domain.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media`
	var args []any
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, *status)
	}
	query += ` ORDER BY name, id`

	items := []*domain.Media{}
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, storeError("list media", err)
	}
	return items, nil
}

func (r *SQLMediaRepository) Update(ctx context.Context, oldID string, m *domain.Media) error {
	query := r.db.Rebind(`
        UPDATE media SET
            id = ?, name = ?, country = ?, type = ?, status = ?,
            rating = ?, review = ?, updated_at = ?
        WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Country, m.Type, m.Status, m.Rating, m.Review, m.UpdatedAt, oldID)
	if err != nil {
		return mapWriteError("update media", err, domain.ErrDuplicateName)
	}
	return expectRow(res, domain.ErrMediaNotFound)
}

func (r *SQLMediaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM media WHERE id = ?`), id)
	if err != nil {
		return storeError("delete media", err)
	}
	return expectRow(res, domain.ErrMediaNotFound)
}
