package models

import "errors"

// Sentinel errors for use case synchronization
var (
	// ErrManifestUnavailable means none of the manifest retrieval strategies succeeded.
	ErrManifestUnavailable = errors.New("could not fetch manifest.json or list the content source")

	// ErrItemFetchFailed means the document or metadata file of a use case could not be retrieved.
	ErrItemFetchFailed = errors.New("use case fetch failed")

	// ErrAssetFetchFailed means an image could not be retrieved.
	ErrAssetFetchFailed = errors.New("asset fetch failed")

	// ErrObjectNotFound means the source answered but holds no such object.
	ErrObjectNotFound = errors.New("object not found")

	// ErrEmptyManifest means the manifest lists neither use cases nor images.
	ErrEmptyManifest = errors.New("no use cases found in manifest")

	// ErrInvalidID means an id or path is not a safe category/slug reference.
	ErrInvalidID = errors.New("invalid use case reference")

	// ErrSyncInProgress means another bulk synchronization is running.
	ErrSyncInProgress = errors.New("a synchronization is already running")

	// ErrNoSource means no content source location is configured or given.
	ErrNoSource = errors.New("no use case repository configured")

	// ErrUnsupportedLocation means the location is neither an object storage address nor an HTTP URL.
	ErrUnsupportedLocation = errors.New("unsupported content source location")
)
