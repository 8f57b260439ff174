package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.HabitRepository = (*SQLHabitRepository)(nil)

// SQLHabitRepository stores habits in Postgres or SQLite. Completions live
// in their own table, one row per (habit, date).
type SQLHabitRepository struct {
	db *sqlx.DB
}

func NewSQLHabitRepository(db *sqlx.DB) *SQLHabitRepository {
	return &SQLHabitRepository{db: db}
}

type habitRow struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Days          string    `db:"days"`
	Color         string    `db:"color"`
	CurrentStreak int       `db:"current_streak"`
	LongestStreak int       `db:"longest_streak"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type completionRow struct {
	HabitID string         `db:"habit_id"`
	Date    domain.DateKey `db:"date"`
}

func (row habitRow) toDomain(completions []domain.DateKey) (*domain.Habit, error) {
	var days []int
	if err := json.Unmarshal([]byte(row.Days), &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal days of %s: %w", row.ID, err)
	}
	if completions == nil {
		completions = []domain.DateKey{}
	}
	return &domain.Habit{
		ID:            row.ID,
		Name:          row.Name,
		Days:          days,
		Color:         row.Color,
		Completions:   completions,
		CurrentStreak: row.CurrentStreak,
		LongestStreak: row.LongestStreak,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

const habitColumns = `id, name, days, color, current_streak, longest_streak, created_at, updated_at`

func (r *SQLHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	days, err := json.Marshal(h.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal days: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeError("begin habit insert", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`INSERT INTO habits (` + habitColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = tx.ExecContext(ctx, query,
		h.ID, h.Name, string(days), h.Color, h.CurrentStreak, h.LongestStreak, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return mapWriteError("insert habit", err, domain.ErrHabitExists)
	}

	if err := insertCompletions(ctx, tx, h.ID, h.Completions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("commit habit insert", err)
	}
	return nil
}

func insertCompletions(ctx context.Context, tx *sqlx.Tx, habitID string, dates []domain.DateKey) error {
	query := tx.Rebind(`INSERT INTO habit_completions (habit_id, date) VALUES (?, ?)`)
	for _, d := range dates {
		if _, err := tx.ExecContext(ctx, query, habitID, d); err != nil {
			return storeError("insert completion", err)
		}
	}
	return nil
}

func (r *SQLHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var row habitRow
	query := r.db.Rebind(`SELECT ` + habitColumns + ` FROM habits WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, storeError("get habit", err)
	}

	var completions []domain.DateKey
	query = r.db.Rebind(`SELECT date FROM habit_completions WHERE habit_id = ? ORDER BY date`)
	if err := r.db.SelectContext(ctx, &completions, query, id); err != nil {
		return nil, storeError("list completions", err)
	}

	return row.toDomain(completions)
}

func (r *SQLHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	var rows []habitRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+habitColumns+` FROM habits ORDER BY name, id`); err != nil {
		return nil, storeError("list habits", err)
	}

	var completions []completionRow
	if err := r.db.SelectContext(ctx, &completions, `SELECT habit_id, date FROM habit_completions ORDER BY habit_id, date`); err != nil {
		return nil, storeError("list completions", err)
	}

	byHabit := make(map[string][]domain.DateKey, len(rows))
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c.Date)
	}

	habits := make([]*domain.Habit, 0, len(rows))
	for _, row := range rows {
		h, err := row.toDomain(byHabit[row.ID])
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

// Update rewrites the habit row and its full completion set. A changed id
// cascades to existing completions before they are replaced.
func (r *SQLHabitRepository) Update(ctx context.Context, oldID string, h *domain.Habit) error {
	days, err := json.Marshal(h.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal days: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeError("begin habit update", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
        UPDATE habits SET
            id = ?, name = ?, days = ?, color = ?, updated_at = ?
        WHERE id = ?`)
	res, err := tx.ExecContext(ctx, query, h.ID, h.Name, string(days), h.Color, h.UpdatedAt, oldID)
	if err != nil {
		return mapWriteError("update habit", err, domain.ErrHabitExists)
	}
	if err := expectRow(res, domain.ErrHabitNotFound); err != nil {
		return err
	}

	// clear both ids so the result does not depend on FK cascade support
	clearQuery := tx.Rebind(`DELETE FROM habit_completions WHERE habit_id = ? OR habit_id = ?`)
	if _, err := tx.ExecContext(ctx, clearQuery, oldID, h.ID); err != nil {
		return storeError("clear completions", err)
	}
	if err := insertCompletions(ctx, tx, h.ID, h.Completions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("commit habit update", err)
	}
	return nil
}

func (r *SQLHabitRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeError("begin habit delete", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM habit_completions WHERE habit_id = ?`), id); err != nil {
		return storeError("delete completions", err)
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM habits WHERE id = ?`), id)
	if err != nil {
		return storeError("delete habit", err)
	}
	if err := expectRow(res, domain.ErrHabitNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("commit habit delete", err)
	}
	return nil
}

func (r *SQLHabitRepository) SetCompletion(ctx context.Context, id string, date domain.DateKey, completed bool) error {
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(`SELECT COUNT(*) FROM habits WHERE id = ?`), id); err != nil {
		return storeError("check habit", err)
	}
	if count == 0 {
		return domain.ErrHabitNotFound
	}

	var query string
	if completed {
		query = `INSERT INTO habit_completions (habit_id, date) VALUES (?, ?) ON CONFLICT (habit_id, date) DO NOTHING`
	} else {
		query = `DELETE FROM habit_completions WHERE habit_id = ? AND date = ?`
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), id, date); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHabitNotFound
		}
		return storeError("set completion", err)
	}
	return nil
}

func (r *SQLHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	query := r.db.Rebind(`UPDATE habits SET current_streak = ?, longest_streak = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, current, longest, id)
	if err != nil {
		return storeError("update streaks", err)
	}
	return expectRow(res, domain.ErrHabitNotFound)
}
