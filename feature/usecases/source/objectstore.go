package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"poc-portal/core/storage"
	"poc-portal/core/utils"
	"poc-portal/feature/usecases/models"

	"github.com/minio/minio-go/v7"
)

// ObjectStoreSource reads content through the object storage API.
type ObjectStoreSource struct {
	client   storage.Client
	loc      S3Location
	location string
	timeout  time.Duration
}

// NewObjectStoreSource creates a source over loc.
func NewObjectStoreSource(client storage.Client, loc S3Location, location string, timeout time.Duration) *ObjectStoreSource {
	return &ObjectStoreSource{client: client, loc: loc, location: location, timeout: timeout}
}

func (s *ObjectStoreSource) Kind() Kind       { return KindObjectStore }
func (s *ObjectStoreSource) Location() string { return s.location }

// Bucket returns the bucket the source reads from.
func (s *ObjectStoreSource) Bucket() string { return s.loc.Bucket }

// BucketExists reports whether the bucket behind the source exists.
func (s *ObjectStoreSource) BucketExists(ctx context.Context) (bool, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.client.BucketExists(ctx, s.loc.Bucket)
}

func (s *ObjectStoreSource) FetchManifest(ctx context.Context) ([]byte, error) {
	data, err := s.read(ctx, models.ManifestName)
	if err != nil && storage.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", models.ErrObjectNotFound, utils.JoinKey(s.loc.Prefix, models.ManifestName))
	}
	return data, err
}

func (s *ObjectStoreSource) ListObjects(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	prefix := ""
	if s.loc.Prefix != "" {
		prefix = s.loc.Prefix + "/"
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.loc.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list s3://%s/%s: %w", s.loc.Bucket, prefix, obj.Err)
		}
		key := strings.TrimPrefix(obj.Key, prefix)
		if key == "" || strings.HasSuffix(key, "/") {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *ObjectStoreSource) FetchObject(ctx context.Context, key string) ([]byte, error) {
	data, err := s.read(ctx, key)
	if err != nil && storage.IsNotFound(err) {
		return nil, errors.Join(models.ErrObjectNotFound, err)
	}
	return data, err
}

func (s *ObjectStoreSource) read(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return storage.ReadObject(ctx, s.client, s.loc.Bucket, utils.JoinKey(s.loc.Prefix, key))
}
