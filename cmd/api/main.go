package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/comitanigiacomo/shelf/internal/config"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

//	@title			shelf API
//	@version		1.0
//	@description	Personal tracker for habits, activities, media and workouts, with calendar aggregation.
//	@BasePath		/api

var (
	envFile string

	cfg    *config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Personal tracking backend",
	Long: `shelf serves habits, activities, media and workouts over HTTP and
aggregates habit completions into calendar views.

Without a subcommand it runs the API server.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runServe,
}

func setup(cmd *cobra.Command, args []string) error {
	var err error

	cfg, err = config.Load(envFile)
	if err != nil {
		return err
	}

	logger, err = logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Debugf)); err != nil {
		return fmt.Errorf("error setting GOMAXPROCS: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(monthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
