package cmd

import (
	"fmt"
	"net/http"

	"poc-portal/core/config"
	"poc-portal/core/database"
	"poc-portal/core/logger"
	"poc-portal/core/storage"
	"poc-portal/feature/usecases"
	"poc-portal/feature/usecases/history"
	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application bundles what every command needs.
type application struct {
	cfg      *config.Config
	logger   *zap.Logger
	resolver *source.Resolver
	store    *inventory.Store
	service  *usecases.Service
}

// bootstrap loads the configuration and wires the use case service.
// The history database is optional: a failed connection is logged and skipped.
func bootstrap(cmd *cobra.Command) (*application, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if repoURL, _ := cmd.Flags().GetString("repo-url"); repoURL != "" {
		cfg.Content.RepoURL = repoURL
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var hist *history.Store
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if hist, err = history.NewStore(db); err != nil {
			logg.Warn("Sync history disabled", zap.Error(err))
			hist = nil
		} else {
			logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	pool := storage.NewPool(cfg.Storage)
	resolver := source.NewResolver(pool, &http.Client{}, cfg.Content.Timeout())
	store := inventory.NewStore(cfg.Content.LocalPath, logg)

	return &application{
		cfg:      cfg,
		logger:   logg,
		resolver: resolver,
		store:    store,
		service:  usecases.NewService(cfg.Content, resolver, store, hist, logg),
	}, nil
}
