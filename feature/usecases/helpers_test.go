package usecases_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"poc-portal/core/content"
	"poc-portal/feature/usecases"
	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/source"

	"go.uber.org/zap"
)

// contentServer serves a use case repository over HTTP.
type contentServer struct {
	*httptest.Server
	files         map[string]string
	manifestCalls atomic.Int32

	// gate, when set, holds every request except the manifest until closed.
	gate    chan struct{}
	waiting chan struct{}
}

func newContentServer(t *testing.T, files map[string]string) *contentServer {
	t.Helper()
	return startContentServer(t, &contentServer{files: files})
}

// newGatedContentServer returns a server whose object requests block until
// gate is closed. waiting receives a signal once the first one arrives.
func newGatedContentServer(t *testing.T, files map[string]string) *contentServer {
	t.Helper()
	cs := &contentServer{
		files:   files,
		gate:    make(chan struct{}),
		waiting: make(chan struct{}, 1),
	}
	return startContentServer(t, cs)
}

func startContentServer(t *testing.T, cs *contentServer) *contentServer {
	t.Helper()
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, "/")
		if key == "manifest.json" {
			cs.manifestCalls.Add(1)
		} else if cs.gate != nil {
			select {
			case cs.waiting <- struct{}{}:
			default:
			}
			<-cs.gate
		}
		body, ok := cs.files[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if strings.HasSuffix(key, ".json") {
			w.Header().Set("Content-Type", "application/json")
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(cs.Close)
	return cs
}

func defaultFiles() map[string]string {
	return map[string]string{
		"manifest.json": `{
			"useCases":[
				{"id":"tls/onboarding","name":"TLS Onboarding","version":"2"},
				{"id":"security/mfa-setup","name":"MFA Setup","version":"1"}
			],
			"images":["security/images/diagram.png"]
		}`,
		"tls/onboarding.md":           "# TLS Onboarding",
		"tls/onboarding.yaml":         "version: \"2\"\n",
		"security/mfa-setup.md":       "# MFA",
		"security/mfa-setup.yaml":     "version: \"1\"\n",
		"security/images/diagram.png": "png",
	}
}

func newTestService(t *testing.T, repoURL string) (*usecases.Service, *inventory.Store) {
	t.Helper()
	cfg := content.Config{RepoURL: repoURL, StatusCacheSeconds: 60}
	store := inventory.NewStore(t.TempDir(), zap.NewNop())
	resolver := source.NewResolver(nil, http.DefaultClient, 5*time.Second)
	return usecases.NewService(cfg, resolver, store, nil, zap.NewNop()), store
}
