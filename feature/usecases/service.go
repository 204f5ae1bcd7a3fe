package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"poc-portal/core/content"
	"poc-portal/core/metrics"
	"poc-portal/core/reconcile"
	"poc-portal/feature/usecases/history"
	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/remote"

	"go.uber.org/zap"
)

// Sync triggers recorded in the history.
const (
	TriggerAPI     = "api"
	TriggerStartup = "startup"
	TriggerCLI     = "cli"
)

// Service orchestrates update checks, downloads and bulk synchronizations.
type Service struct {
	syncer   *remote.Syncer
	store    *inventory.Store
	history  *history.Store
	cache    *reconcile.Cache[*models.UpdateStatus]
	location string
	logger   *zap.Logger

	// running serializes bulk synchronizations, which must not overlap on one content root.
	running sync.Mutex
}

// NewService creates a new use case service. history may be nil when no database is configured.
func NewService(cfg content.Config, resolver remote.Resolver, store *inventory.Store, hist *history.Store, logger *zap.Logger) *Service {
	return &Service{
		syncer:   remote.NewSyncer(resolver, store, logger),
		store:    store,
		history:  hist,
		cache:    reconcile.NewCache[*models.UpdateStatus](cfg.StatusCacheTTL()),
		location: cfg.RepoURL,
		logger:   logger,
	}
}

// Location returns the configured repository location.
func (s *Service) Location() string {
	return s.location
}

func (s *Service) resolveLocation(location string) (string, error) {
	if location != "" {
		return location, nil
	}
	if s.location != "" {
		return s.location, nil
	}
	return "", models.ErrNoSource
}

// CheckForUpdates reports new and updated use cases for location, falling back
// to the configured repository. Results are cached per location for a short time.
func (s *Service) CheckForUpdates(ctx context.Context, location string) *models.UpdateStatus {
	location, err := s.resolveLocation(location)
	if err != nil {
		return &models.UpdateStatus{
			NewUseCases: []models.ManifestItem{},
			Updated:     []models.UpdatedItem{},
			Error:       err.Error(),
		}
	}

	var fresh *models.UpdateStatus
	status, err := s.cache.GetOrBuild(ctx, location, func(ctx context.Context) (*models.UpdateStatus, error) {
		fresh = s.syncer.CheckForUpdates(ctx, location)
		if fresh.Error != "" {
			return nil, errors.New(fresh.Error)
		}
		return fresh, nil
	})
	if err != nil {
		if fresh != nil {
			return fresh
		}
		// another caller's check failed while this one waited on it
		return &models.UpdateStatus{
			NewUseCases: []models.ManifestItem{},
			Updated:     []models.UpdatedItem{},
			Error:       err.Error(),
		}
	}
	return status
}

// SyncInProgress reports whether a bulk synchronization is running.
func (s *Service) SyncInProgress() bool {
	if s.running.TryLock() {
		s.running.Unlock()
		return false
	}
	return true
}

// SyncAll runs a bulk synchronization of location and records it in the history.
// events is closed when SyncAll returns. Overlapping calls fail with models.ErrSyncInProgress.
func (s *Service) SyncAll(ctx context.Context, location, trigger string, events chan<- models.Progress) (*models.SyncResult, error) {
	if !s.running.TryLock() {
		if events != nil {
			close(events)
		}
		return nil, models.ErrSyncInProgress
	}
	defer s.running.Unlock()

	location, err := s.resolveLocation(location)
	if err != nil {
		if events != nil {
			close(events)
		}
		return nil, err
	}

	started := time.Now()
	result, err := s.syncer.SyncAll(ctx, location, events)
	s.cache.InvalidateAll()
	s.record(ctx, history.NewRun(location, trigger, started, result, err))
	return result, err
}

// DownloadItem installs a single use case.
func (s *Service) DownloadItem(ctx context.Context, location, category, slug string) error {
	location, err := s.resolveLocation(location)
	if err != nil {
		return err
	}
	if err := s.syncer.DownloadItem(ctx, location, category, slug); err != nil {
		return err
	}
	s.cache.InvalidateAll()
	return nil
}

// Inventory lists the installed use cases and slug conflicts.
func (s *Service) Inventory() (*models.Inventory, error) {
	inv, err := s.store.List()
	if err != nil {
		return nil, err
	}
	metrics.SetConflicts(len(inv.Conflicts))
	return inv, nil
}

// HistoryEnabled reports whether sync runs are persisted.
func (s *Service) HistoryEnabled() bool {
	return s.history != nil
}

// History returns the most recent sync runs.
func (s *Service) History(ctx context.Context, limit int) ([]history.SyncRun, error) {
	if s.history == nil {
		return []history.SyncRun{}, nil
	}
	return s.history.Recent(ctx, limit)
}

func (s *Service) record(ctx context.Context, run history.SyncRun) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(context.WithoutCancel(ctx), &run); err != nil {
		s.logger.Warn("Failed to record sync run", zap.Error(err))
	}
}
