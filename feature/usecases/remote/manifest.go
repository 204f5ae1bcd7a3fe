package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"poc-portal/core/metrics"
	"poc-portal/core/utils"
	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/source"

	"go.uber.org/zap"
)

var imageExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".svg": {}, ".webp": {},
}

// FetchManifest retrieves the manifest from the first strategy that works:
// an explicit manifest.json on any source (in source order), then a raw
// listing of any source synthesized into a manifest. Unusable manifest ids and
// image paths are dropped.
func FetchManifest(ctx context.Context, logger *zap.Logger, sources []source.ContentSource) (*models.Manifest, error) {
	var errs []error

	for _, src := range sources {
		m, err := fetchExplicit(ctx, src)
		metrics.RecordManifestFetch(string(src.Kind()), "manifest", err == nil)
		if err == nil {
			logger.Debug("Loaded manifest.json", zap.String("source", src.Location()))
			return sanitize(m, logger), nil
		}
		if !errors.Is(err, models.ErrObjectNotFound) {
			logger.Warn("Manifest fetch failed", zap.String("source", src.Location()), zap.Error(err))
		}
		errs = append(errs, err)
	}

	for _, src := range sources {
		keys, err := src.ListObjects(ctx)
		metrics.RecordManifestFetch(string(src.Kind()), "listing", err == nil)
		if err == nil {
			m := Synthesize(keys)
			logger.Info("Built manifest from listing",
				zap.String("source", src.Location()),
				zap.Int("use_cases", len(m.UseCases)),
				zap.Int("images", len(m.Images)))
			return sanitize(m, logger), nil
		}
		logger.Warn("Listing failed", zap.String("source", src.Location()), zap.Error(err))
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, models.ErrNoSource
	}
	return nil, fmt.Errorf("%w: %w", models.ErrManifestUnavailable, errors.Join(errs...))
}

func fetchExplicit(ctx context.Context, src source.ContentSource) (*models.Manifest, error) {
	raw, err := src.FetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	var m models.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest.json from %s: %w", src.Location(), err)
	}
	return &m, nil
}

// Synthesize builds a manifest from a raw key listing. Keys of the form
// <category>/<slug>.yaml become use cases named after their slug with a
// placeholder version; keys below an images/ directory with an image
// extension become assets. Everything else is ignored.
func Synthesize(keys []string) *models.Manifest {
	m := &models.Manifest{UseCases: []models.ManifestItem{}, Images: []string{}}

	for _, key := range keys {
		key = utils.TrimSlashes(key)

		if strings.Contains("/"+key, "/images/") {
			if isImage(key) {
				m.Images = append(m.Images, key)
			}
			continue
		}

		if !strings.HasSuffix(key, models.MetadataExt) {
			continue
		}
		parts := strings.Split(strings.TrimSuffix(key, models.MetadataExt), "/")
		if len(parts) != 2 {
			continue
		}

		m.UseCases = append(m.UseCases, models.ManifestItem{
			ID:      parts[0] + "/" + parts[1],
			Name:    utils.DisplayName(parts[1]),
			Version: models.PlaceholderVersion,
		})
	}

	return m
}

func sanitize(m *models.Manifest, logger *zap.Logger) *models.Manifest {
	if m.UseCases == nil {
		m.UseCases = []models.ManifestItem{}
	}
	if m.Images == nil {
		m.Images = []string{}
	}

	items := m.UseCases[:0]
	for _, uc := range m.UseCases {
		if _, _, err := models.SplitID(uc.ID); err != nil {
			logger.Warn("Ignoring manifest entry", zap.String("id", uc.ID), zap.Error(err))
			continue
		}
		items = append(items, uc)
	}
	m.UseCases = items

	images := m.Images[:0]
	for _, img := range m.Images {
		if err := models.ValidateAssetPath(img); err != nil {
			logger.Warn("Ignoring manifest image", zap.String("path", img), zap.Error(err))
			continue
		}
		if !isImage(img) {
			logger.Warn("Ignoring manifest image", zap.String("path", img), zap.String("reason", "not an image below images/"))
			continue
		}
		images = append(images, img)
	}
	m.Images = images

	if dropped := m.Dedupe(); dropped > 0 {
		logger.Warn("Manifest lists duplicate use case ids", zap.Int("dropped", dropped))
	}
	return m
}

// isImage reports whether key sits below an images/ directory and carries an image extension.
func isImage(key string) bool {
	if !strings.Contains("/"+key, "/images/") {
		return false
	}
	_, ok := imageExtensions[strings.ToLower(path.Ext(key))]
	return ok
}
