package main

import (
	"log/slog"
	"os"

	"github.com/sitebuilder/internal/config"
	"github.com/sitebuilder/internal/db"
	"github.com/sitebuilder/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sitebuilder",
	Short:         "Backend for the drag-and-drop website builder.",
	Long:          `sitebuilder serves the builder REST API, renders pages to static HTML and publishes them over FTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		logging.Init(config.Load().LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), config.Load())
	},
}

func init() {
	rootCmd.AddCommand(newServeCommand(), newRenderCommand(), newSeedCommand())
}

func openStore(cfg config.AppConfig) (*db.Store, error) {
	store, err := db.Open(cfg.DatabasePath, cfg.StoreWorkers)
	if err != nil {
		return nil, err
	}
	slog.Info("database ready", "path", cfg.DatabasePath, "workers", store.Workers())
	return store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("sitebuilder failed", "err", err)
		os.Exit(1)
	}
}
