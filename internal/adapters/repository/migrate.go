package repository

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies every up migration. The statements are idempotent, so
// running it on each start is safe.
func MigrateUp(ctx context.Context, db *sqlx.DB) error {
	return applyMigrations(ctx, db, ".up.sql", false)
}

func MigrateDown(ctx context.Context, db *sqlx.DB) error {
	return applyMigrations(ctx, db, ".down.sql", true)
}

func applyMigrations(ctx context.Context, db *sqlx.DB, suffix string, reverse bool) error {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(entries)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	}

	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read migration %s: %w", name, readErr)
		}
		// one statement per Exec keeps every driver happy
		for _, stmt := range strings.Split(string(sqlBytes), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, execErr := db.ExecContext(ctx, stmt); execErr != nil {
				return fmt.Errorf("apply migration %s: %w", name, execErr)
			}
		}
	}
	return nil
}
