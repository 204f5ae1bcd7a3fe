package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poc-portal/feature/usecases/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingXML = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>poc-content</Name>
  <Prefix></Prefix>
  <Contents><Key>security/mfa-setup.yaml</Key></Contents>
  <Contents><Key>security/mfa-setup.md</Key></Contents>
  <Contents><Key>security/images/diagram.png</Key></Contents>
</ListBucketResult>`

func TestHTTPSource_FetchManifest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/content/manifest.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"useCases":[{"id":"tls/onboarding","version":"2"}]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.Client(), srv.URL+"/content/", time.Second)
	data, err := src.FetchManifest(context.Background())

	require.NoError(t, err)
	assert.Contains(t, string(data), "tls/onboarding")
}

func TestHTTPSource_FetchManifestRejectsNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not here</html>"))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.Client(), srv.URL, time.Second).FetchManifest(context.Background())

	assert.ErrorIs(t, err, models.ErrObjectNotFound)
}

func TestHTTPSource_FetchManifestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewHTTPSource(srv.Client(), srv.URL, time.Second).FetchManifest(context.Background())

	assert.ErrorIs(t, err, models.ErrObjectNotFound)
}

func TestHTTPSource_ListObjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(listingXML))
	}))
	defer srv.Close()

	keys, err := NewHTTPSource(srv.Client(), srv.URL, time.Second).ListObjects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"security/mfa-setup.yaml", "security/mfa-setup.md", "security/images/diagram.png"}, keys)
}

func TestHTTPSource_ListObjectsNotAListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>index</html>"))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.Client(), srv.URL, time.Second).ListObjects(context.Background())

	assert.ErrorContains(t, err, "did not answer with a bucket listing")
}

func TestParseListing_StripsPrefix(t *testing.T) {
	keys, err := ParseListing([]byte(`<ListBucketResult><Prefix>use-cases/</Prefix>
		<Contents><Key>use-cases/</Key></Contents>
		<Contents><Key>use-cases/tls/onboarding.yaml</Key></Contents>
	</ListBucketResult>`))

	require.NoError(t, err)
	assert.Equal(t, []string{"tls/onboarding.yaml"}, keys)
}

func TestHTTPSource_FetchObjectStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.Client(), srv.URL, time.Second).FetchObject(context.Background(), "tls/onboarding.md")

	assert.ErrorContains(t, err, "status 500")
}

func TestHTTPSource_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.Client(), srv.URL, 50*time.Millisecond).FetchObject(context.Background(), "slow.md")

	assert.Error(t, err)
}
