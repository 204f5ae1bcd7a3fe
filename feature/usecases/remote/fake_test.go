package remote

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/source"
)

// fakeSource serves objects from memory.
type fakeSource struct {
	kind     source.Kind
	location string
	manifest []byte
	listErr  error
	objects  map[string][]byte
	failing  map[string]bool

	mu      sync.Mutex
	fetched []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		kind:     source.KindObjectStore,
		location: "s3://poc-content",
		objects:  make(map[string][]byte),
		failing:  make(map[string]bool),
	}
}

func (f *fakeSource) withItem(id, version string) *fakeSource {
	f.objects[id+".md"] = []byte("# " + id)
	f.objects[id+".yaml"] = []byte(fmt.Sprintf("version: %q\n", version))
	return f
}

func (f *fakeSource) Kind() source.Kind { return f.kind }
func (f *fakeSource) Location() string  { return f.location }

func (f *fakeSource) FetchManifest(ctx context.Context) ([]byte, error) {
	if f.manifest == nil {
		return nil, models.ErrObjectNotFound
	}
	return f.manifest, nil
}

func (f *fakeSource) ListObjects(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *fakeSource) FetchObject(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, key)
	f.mu.Unlock()

	if f.failing[key] {
		return nil, errors.New("connection reset")
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, models.ErrObjectNotFound
	}
	return data, nil
}

type fakeResolver struct {
	sources []source.ContentSource
	err     error
}

func (r fakeResolver) Resolve(location string) ([]source.ContentSource, error) {
	return r.sources, r.err
}
