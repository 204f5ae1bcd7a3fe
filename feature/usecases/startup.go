package usecases

import (
	"context"
	"errors"

	"poc-portal/feature/usecases/models"

	"go.uber.org/zap"
)

// Startup checks the configured repository and synchronizes it when new or
// updated use cases are available. Every outcome is logged; nothing is returned
// because startup must not be blocked by an unreachable source.
func (s *Service) Startup(ctx context.Context) {
	if s.location == "" {
		s.logger.Info("No use case repository configured, skipping startup sync")
		return
	}

	s.logger.Info("Checking for use case updates", zap.String("source", s.location))

	status := s.syncer.CheckForUpdates(ctx, s.location)
	if status.Error != "" {
		s.logger.Warn("Use case update check failed", zap.String("error", status.Error))
		return
	}

	s.logger.Info("Use case manifest loaded",
		zap.Int("use_cases", status.TotalInManifest),
		zap.Int("images", status.ImageCount),
		zap.Int("new", len(status.NewUseCases)),
		zap.Int("updated", len(status.Updated)))

	if !status.HasChanges() {
		s.logger.Info("Use cases are up to date")
		return
	}

	events := make(chan models.Progress)
	go func() {
		for ev := range events {
			if ev.Sequence%5 == 0 || ev.Sequence == ev.Total {
				s.logger.Info("Use case sync progress",
					zap.Int("current", ev.Sequence),
					zap.Int("total", ev.Total),
					zap.String("name", ev.Name))
			}
		}
	}()

	result, err := s.SyncAll(ctx, s.location, TriggerStartup, events)
	if err != nil {
		if errors.Is(err, models.ErrSyncInProgress) {
			s.logger.Info("Startup sync skipped, a sync is already running")
			return
		}
		s.logger.Error("Startup sync failed", zap.Error(err))
		return
	}

	s.logger.Info("Startup sync complete",
		zap.Int("downloaded", result.Downloaded),
		zap.Int("failed", result.Failed))
}
