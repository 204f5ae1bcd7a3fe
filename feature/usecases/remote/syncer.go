package remote

import (
	"context"
	"time"

	"poc-portal/core/metrics"
	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/source"

	"go.uber.org/zap"
)

// Resolver turns a location string into content sources.
type Resolver interface {
	Resolve(location string) ([]source.ContentSource, error)
}

// Syncer runs update checks and synchronizations against remote locations.
// SyncAll must not run concurrently against the same content root; callers serialize it.
type Syncer struct {
	resolver Resolver
	store    *inventory.Store
	fetcher  *Fetcher
	logger   *zap.Logger
}

// NewSyncer creates a syncer installing into store.
func NewSyncer(resolver Resolver, store *inventory.Store, logger *zap.Logger) *Syncer {
	return &Syncer{
		resolver: resolver,
		store:    store,
		fetcher:  NewFetcher(store),
		logger:   logger,
	}
}

// FetchManifest resolves location and retrieves its manifest.
func (s *Syncer) FetchManifest(ctx context.Context, location string) (*models.Manifest, error) {
	sources, err := s.resolver.Resolve(location)
	if err != nil {
		return nil, err
	}
	return FetchManifest(ctx, s.logger, sources)
}

// CheckForUpdates compares the remote manifest with the local inventory.
// It never fails: problems are reported in the Error field of the status.
func (s *Syncer) CheckForUpdates(ctx context.Context, location string) *models.UpdateStatus {
	status := &models.UpdateStatus{
		NewUseCases: []models.ManifestItem{},
		Updated:     []models.UpdatedItem{},
	}

	manifest, err := s.FetchManifest(ctx, location)
	if err != nil {
		status.Error = err.Error()
		return status
	}

	inv, err := s.store.List()
	if err != nil {
		status.Error = err.Error()
		return status
	}

	diff := Diff(manifest, inv.UseCases)
	status.NewUseCases = diff.New
	status.Updated = diff.Updated
	status.Unchanged = diff.Unchanged
	status.TotalInManifest = diff.Total
	status.ImageCount = len(manifest.Images)

	metrics.SetPending(len(diff.New), len(diff.Updated))
	metrics.SetConflicts(len(inv.Conflicts))
	return status
}

// DownloadItem installs a single use case from the primary source of location.
func (s *Syncer) DownloadItem(ctx context.Context, location, category, slug string) error {
	sources, err := s.resolver.Resolve(location)
	if err != nil {
		return err
	}
	err = s.fetcher.DownloadItem(ctx, sources[0], category, slug)
	metrics.RecordSyncUnit(string(models.KindItem), err == nil)
	return err
}

// SyncAll downloads every use case of the manifest and then every image,
// one at a time. A progress event is sent for each unit whether it succeeded
// or not, and events is closed when SyncAll returns. A nil channel disables
// progress reporting.
//
// Unit failures are counted, never returned. The returned error is set only
// when the manifest cannot be obtained or is empty.
func (s *Syncer) SyncAll(ctx context.Context, location string, events chan<- models.Progress) (*models.SyncResult, error) {
	if events != nil {
		defer close(events)
	}

	start := time.Now()
	result, err := s.syncAll(ctx, location, events)
	elapsed := time.Since(start)
	metrics.RecordSyncRun(err == nil && result.Failed == 0, elapsed)
	if err == nil {
		s.logger.Info("Synchronization finished",
			zap.Int("downloaded", result.Downloaded),
			zap.Int("failed", result.Failed),
			zap.Duration("elapsed", elapsed))
	}
	return result, err
}

func (s *Syncer) syncAll(ctx context.Context, location string, events chan<- models.Progress) (*models.SyncResult, error) {
	sources, err := s.resolver.Resolve(location)
	if err != nil {
		return nil, err
	}

	manifest, err := FetchManifest(ctx, s.logger, sources)
	if err != nil {
		return nil, err
	}
	if manifest.Total() == 0 {
		return nil, models.ErrEmptyManifest
	}

	primary := sources[0]
	result := &models.SyncResult{Total: manifest.Total()}
	result.UseCases.Total = len(manifest.UseCases)
	result.Images.Total = len(manifest.Images)

	s.logger.Info("Synchronizing use cases",
		zap.String("source", primary.Location()),
		zap.Int("use_cases", result.UseCases.Total),
		zap.Int("images", result.Images.Total))

	seq := 0
	emit := func(name string, kind models.UnitKind, unitErr error) {
		seq++
		ok := unitErr == nil
		result.Record(kind, ok)
		metrics.RecordSyncUnit(string(kind), ok)
		if !ok {
			s.logger.Warn("Sync unit failed", zap.String("name", name), zap.String("kind", string(kind)), zap.Error(unitErr))
		}
		if events == nil {
			return
		}
		select {
		case events <- models.Progress{Sequence: seq, Total: result.Total, Name: name, Kind: kind, OK: ok}:
		case <-ctx.Done():
		}
	}

	for _, item := range manifest.UseCases {
		category, slug, _ := models.SplitID(item.ID)
		emit(item.DisplayName(), models.KindItem, s.fetcher.DownloadItem(ctx, primary, category, slug))
	}
	for _, img := range manifest.Images {
		emit(models.AssetDisplayName(img), models.KindAsset, s.fetcher.DownloadAsset(ctx, primary, img))
	}

	return result, nil
}
