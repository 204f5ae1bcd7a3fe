package integrity

import (
	"context"

	"poc-portal/feature/integrity/checks"
	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/remote"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	store    *inventory.Store
	resolver remote.Resolver
	location string
	logger   *zap.Logger
}

// NewService creates a new integrity service checking store against the repository at location.
func NewService(store *inventory.Store, resolver remote.Resolver, location string, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		resolver: resolver,
		location: location,
		logger:   logger,
	}
}

// CheckStructure reports incomplete use cases and stray staging files.
func (s *Service) CheckStructure() (*checks.StructureReport, error) {
	return checks.CheckStructure(s.store.Root())
}

// FixStructure removes stray staging files.
func (s *Service) FixStructure(stray []string) error {
	return checks.FixStructure(s.store.Root(), s.logger, stray)
}

// CheckImages returns the manifest images missing from the content root.
func (s *Service) CheckImages(ctx context.Context) ([]string, error) {
	if s.location == "" {
		return nil, models.ErrNoSource
	}
	sources, err := s.resolver.Resolve(s.location)
	if err != nil {
		return nil, err
	}
	manifest, err := remote.FetchManifest(ctx, s.logger, sources)
	if err != nil {
		return nil, err
	}
	return checks.MissingImages(s.store.Root(), manifest.Images), nil
}

// CheckSource probes every source the repository location resolves to.
func (s *Service) CheckSource(ctx context.Context) ([]checks.SourceReport, error) {
	if s.location == "" {
		return nil, models.ErrNoSource
	}
	sources, err := s.resolver.Resolve(s.location)
	if err != nil {
		return nil, err
	}

	reports := make([]checks.SourceReport, 0, len(sources))
	for _, src := range sources {
		reports = append(reports, checks.CheckSource(ctx, src))
	}
	return reports, nil
}
