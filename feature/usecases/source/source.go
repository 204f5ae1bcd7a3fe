package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"poc-portal/core/storage"
	"poc-portal/feature/usecases/models"
)

// Kind names the transport of a content source.
type Kind string

const (
	KindObjectStore Kind = "s3"
	KindHTTP        Kind = "http"
)

// ContentSource is a remote place holding use cases, images and possibly a manifest.
// Keys are relative to the source root, for example "security/mfa-setup.yaml".
type ContentSource interface {
	Kind() Kind
	// Location is the address the source was built from.
	Location() string
	// FetchManifest returns the raw manifest.json, or models.ErrObjectNotFound when the source has none.
	FetchManifest(ctx context.Context) ([]byte, error)
	// ListObjects enumerates every key below the source root.
	ListObjects(ctx context.Context) ([]string, error)
	// FetchObject downloads one file.
	FetchObject(ctx context.Context, key string) ([]byte, error)
}

// Resolver turns a location string into content sources.
type Resolver struct {
	pool       *storage.Pool
	httpClient *http.Client
	timeout    time.Duration
}

// NewResolver creates a resolver. Every request made by the returned sources is bounded by timeout.
func NewResolver(pool *storage.Pool, httpClient *http.Client, timeout time.Duration) *Resolver {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Resolver{pool: pool, httpClient: httpClient, timeout: timeout}
}

// Resolve returns the sources for location in the order they should be tried.
// The first one is the primary source and serves content downloads.
// Object storage addresses given as HTTPS URLs get an HTTP source appended.
func (r *Resolver) Resolve(location string) ([]ContentSource, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, models.ErrNoSource
	}

	if r.pool != nil {
		if loc, ok := ParseS3(location, r.pool.DefaultRegion()); ok {
			client, err := r.pool.Get(loc.Region)
			if err != nil {
				return nil, fmt.Errorf("object storage client for %s: %w", loc.Region, err)
			}

			sources := []ContentSource{NewObjectStoreSource(client, loc, location, r.timeout)}
			if loc.Web {
				sources = append(sources, NewHTTPSource(r.httpClient, location, r.timeout))
			}
			return sources, nil
		}
	}

	u, err := url.Parse(location)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedLocation, location)
	}
	return []ContentSource{NewHTTPSource(r.httpClient, location, r.timeout)}, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
