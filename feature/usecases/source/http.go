package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"poc-portal/feature/usecases/models"
)

// HTTPSource reads content with plain GET requests below a base URL.
type HTTPSource struct {
	client  *http.Client
	base    string
	timeout time.Duration
}

// NewHTTPSource creates a source rooted at base.
func NewHTTPSource(client *http.Client, base string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{client: client, base: strings.TrimRight(base, "/"), timeout: timeout}
}

func (s *HTTPSource) Kind() Kind       { return KindHTTP }
func (s *HTTPSource) Location() string { return s.base }

// FetchManifest accepts only 2xx answers declaring a JSON content type.
func (s *HTTPSource) FetchManifest(ctx context.Context) ([]byte, error) {
	body, header, err := s.get(ctx, s.base+"/"+models.ManifestName)
	if err != nil {
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(header.Get("Content-Type"))
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: %s served %q instead of JSON", models.ErrObjectNotFound, models.ManifestName, header.Get("Content-Type"))
	}
	return body, nil
}

// listBucketResult is the part of an S3 ListObjects XML answer we care about.
type listBucketResult struct {
	XMLName  xml.Name `xml:"ListBucketResult"`
	Prefix   string   `xml:"Prefix"`
	Contents []struct {
		Key string `xml:"Key"`
	} `xml:"Contents"`
}

// ListObjects fetches the base URL and parses it as a bucket listing.
// Keys are made relative to the listing prefix.
func (s *HTTPSource) ListObjects(ctx context.Context) ([]string, error) {
	body, _, err := s.get(ctx, s.base)
	if err != nil {
		return nil, err
	}

	text := string(body)
	if !strings.Contains(text, "<ListBucketResult") && !strings.Contains(text, "<Contents>") {
		return nil, fmt.Errorf("%s did not answer with a bucket listing", s.base)
	}

	return ParseListing(body)
}

// ParseListing extracts object keys from an S3 ListBucketResult document.
func ParseListing(body []byte) ([]string, error) {
	var result listBucketResult
	if err := xml.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse bucket listing: %w", err)
	}

	prefix := strings.Trim(result.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	keys := make([]string, 0, len(result.Contents))
	for _, c := range result.Contents {
		key := strings.TrimPrefix(c.Key, prefix)
		if key == "" || strings.HasSuffix(key, "/") {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *HTTPSource) FetchObject(ctx context.Context, key string) ([]byte, error) {
	body, _, err := s.get(ctx, s.base+"/"+strings.TrimLeft(key, "/"))
	return body, err
}

func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, http.Header, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil, fmt.Errorf("%w: %s", models.ErrObjectNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return body, resp.Header, nil
}
