package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/shelf/internal/adapters/importer"
	"github.com/comitanigiacomo/shelf/internal/adapters/repository"
	"github.com/comitanigiacomo/shelf/internal/config"
)

// backend bundles the stores for the configured driver. db is nil for the
// in-memory driver.
type backend struct {
	importer.Stores
	db *sqlx.DB
}

func openBackend(ctx context.Context, cfg *config.Config, migrate bool) (*backend, error) {
	if cfg.DBDriver == config.DriverMemory {
		return &backend{Stores: importer.Stores{
			Habits:     repository.NewMemoryHabitRepository(),
			Activities: repository.NewMemoryActivityRepository(),
			Presets:    repository.NewMemoryPresetRepository(),
			Media:      repository.NewMemoryMediaRepository(),
			Workouts:   repository.NewMemoryWorkoutRepository(),
			Templates:  repository.NewMemoryTemplateRepository(),
		}}, nil
	}

	db, err := repository.Open(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := repository.MigrateUp(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &backend{
		db: db,
		Stores: importer.Stores{
			Habits:     repository.NewSQLHabitRepository(db),
			Activities: repository.NewSQLActivityRepository(db),
			Presets:    repository.NewSQLPresetRepository(db),
			Media:      repository.NewSQLMediaRepository(db),
			Workouts:   repository.NewSQLWorkoutRepository(db),
			Templates:  repository.NewSQLTemplateRepository(db),
		},
	}, nil
}

func (b *backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
