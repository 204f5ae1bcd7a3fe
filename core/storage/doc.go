// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the read
// operations the portal needs: checking bucket existence, downloading objects
// and listing objects. This abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Client Pool
//
// Pool creates one client per region on first use. It replaces process-wide
// client caches: the component that builds content sources owns the pool and
// hands it down, so tests can swap the factory for a mock.
//
// # Usage
//
//	pool := storage.NewPool(cfg.Storage)
//	client, err := pool.Get("eu-west-1")
//	data, err := storage.ReadObject(ctx, client, "poc-content", "manifest.json")
package storage
