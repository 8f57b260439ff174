package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/shelf/internal/adapters/repository"
	"github.com/comitanigiacomo/shelf/internal/config"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert the database schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if cfg.DBDriver == config.DriverMemory {
		return errors.New("the memory driver has no schema to migrate")
	}

	direction := "up"
	if len(args) == 1 {
		direction = args[0]
	}

	store, err := openBackend(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer store.Close()

	switch direction {
	case "up":
		err = repository.MigrateUp(cmd.Context(), store.db)
	case "down":
		err = repository.MigrateDown(cmd.Context(), store.db)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	logging.Component(logger, "migrate").
		WithField("driver", cfg.DBDriver).
		WithField("direction", direction).
		Info("migrations applied")
	return nil
}
