package main

import (
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/shelf/internal/adapters/importer"
	"github.com/comitanigiacomo/shelf/internal/config"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

var importConfig string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load markdown notes into the configured store",
	Long: `Reads the *_dir keys of a config.toml and imports every markdown file
with YAML frontmatter found there. Records that already exist are skipped,
so the command can be run repeatedly.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importConfig, "config", "config.toml", "TOML file naming the markdown directories")
}

func runImport(cmd *cobra.Command, args []string) error {
	log := logging.Component(logger, "import")
	if cfg.DBDriver == config.DriverMemory {
		log.Warn("memory driver selected, imported data is discarded on exit")
	}

	dirs, err := importer.LoadDirs(importConfig)
	if err != nil {
		return err
	}

	store, err := openBackend(cmd.Context(), cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := importer.New(store.Stores, log).Run(cmd.Context(), dirs)
	if err != nil {
		return err
	}

	log.WithFields(report.Fields()).Info("import finished")
	return nil
}
