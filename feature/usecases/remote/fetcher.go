package remote

import (
	"context"
	"fmt"

	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/source"

	"golang.org/x/sync/errgroup"
)

// Fetcher downloads single use cases and images and installs them locally.
type Fetcher struct {
	store *inventory.Store
}

// NewFetcher creates a fetcher writing into store.
func NewFetcher(store *inventory.Store) *Fetcher {
	return &Fetcher{store: store}
}

// FetchItem downloads the document and the metadata of a use case in parallel.
// Either both are returned or the call fails with models.ErrItemFetchFailed.
func (f *Fetcher) FetchItem(ctx context.Context, src source.ContentSource, category, slug string) ([]byte, []byte, error) {
	if err := models.ValidateSegment(category); err != nil {
		return nil, nil, err
	}
	if err := models.ValidateSegment(slug); err != nil {
		return nil, nil, err
	}

	var document, metadata []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		document, err = src.FetchObject(gctx, category+"/"+slug+models.DocumentExt)
		return err
	})
	g.Go(func() error {
		var err error
		metadata, err = src.FetchObject(gctx, category+"/"+slug+models.MetadataExt)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s/%s: %w", models.ErrItemFetchFailed, category, slug, err)
	}

	return document, metadata, nil
}

// DownloadItem fetches a use case and installs both of its files.
func (f *Fetcher) DownloadItem(ctx context.Context, src source.ContentSource, category, slug string) error {
	document, metadata, err := f.FetchItem(ctx, src, category, slug)
	if err != nil {
		return err
	}
	if err := f.store.SaveItem(category, slug, document, metadata); err != nil {
		return fmt.Errorf("%w: %s/%s: %w", models.ErrItemFetchFailed, category, slug, err)
	}
	return nil
}

// FetchAsset downloads one image. Failures are reported as models.ErrAssetFetchFailed.
func (f *Fetcher) FetchAsset(ctx context.Context, src source.ContentSource, relPath string) ([]byte, error) {
	if err := models.ValidateAssetPath(relPath); err != nil {
		return nil, err
	}
	data, err := src.FetchObject(ctx, relPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrAssetFetchFailed, relPath, err)
	}
	return data, nil
}

// DownloadAsset fetches an image and writes it below the content root.
func (f *Fetcher) DownloadAsset(ctx context.Context, src source.ContentSource, relPath string) error {
	data, err := f.FetchAsset(ctx, src, relPath)
	if err != nil {
		return err
	}
	if err := f.store.SaveAsset(relPath, data); err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrAssetFetchFailed, relPath, err)
	}
	return nil
}
