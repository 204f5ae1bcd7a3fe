package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

const (
	// DocumentExt is the extension of the markdown document of a use case.
	DocumentExt = ".md"
	// MetadataExt is the extension of the YAML metadata of a use case.
	MetadataExt = ".yaml"
	// ManifestName is the object name of an explicit manifest.
	ManifestName = "manifest.json"
	// PlaceholderVersion is given to use cases synthesized from a raw listing.
	PlaceholderVersion = "1.0.0"
)

// ManifestItem is one use case listed by the remote manifest.
type ManifestItem struct {
	// ID is "<category>/<slug>".
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// UnmarshalJSON accepts the version as a JSON string or number. Numbers keep
// their literal text, so 1.10 stays "1.10".
func (m *ManifestItem) UnmarshalJSON(data []byte) error {
	type plain ManifestItem
	aux := struct {
		*plain
		Version json.RawMessage `json:"version"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.Version = ""
	raw := bytes.TrimSpace(aux.Version)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		return json.Unmarshal(raw, &m.Version)
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("version of %q must be a string or a number: %w", m.ID, err)
		}
		m.Version = n.String()
	}
	return nil
}

func (m ManifestItem) Key() string        { return m.ID }
func (m ManifestItem) VersionTag() string { return m.Version }

// DisplayName returns the name, falling back to the id.
func (m ManifestItem) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Manifest is the canonical remote listing of use cases and images.
type Manifest struct {
	UseCases []ManifestItem `json:"useCases"`
	Images   []string       `json:"images"`
}

// Dedupe drops repeated use case ids (first one wins) and repeated image paths.
// It returns the number of dropped use cases.
func (m *Manifest) Dedupe() int {
	seen := make(map[string]struct{}, len(m.UseCases))
	kept := m.UseCases[:0]
	for _, uc := range m.UseCases {
		if _, ok := seen[uc.ID]; ok {
			continue
		}
		seen[uc.ID] = struct{}{}
		kept = append(kept, uc)
	}
	dropped := len(m.UseCases) - len(kept)
	m.UseCases = kept

	images := make(map[string]struct{}, len(m.Images))
	keptImages := m.Images[:0]
	for _, img := range m.Images {
		if _, ok := images[img]; ok {
			continue
		}
		images[img] = struct{}{}
		keptImages = append(keptImages, img)
	}
	m.Images = keptImages

	return dropped
}

// Total returns the number of sync units (use cases plus images).
func (m *Manifest) Total() int {
	return len(m.UseCases) + len(m.Images)
}

// LocalItem is a use case installed under the local content root.
type LocalItem struct {
	ID       string `json:"id"`
	Category string `json:"productCategory"`
	Slug     string `json:"slug"`
	Name     string `json:"name,omitempty"`
	Version  string `json:"version"`
}

func (l LocalItem) Key() string        { return l.ID }
func (l LocalItem) VersionTag() string { return l.Version }

// Conflict is a slug installed under more than one category.
type Conflict struct {
	Slug       string   `json:"slug"`
	Categories []string `json:"productCategories"`
	IDs        []string `json:"ids"`
}

// Inventory is the result of scanning the local content root.
type Inventory struct {
	UseCases  []LocalItem `json:"useCases"`
	Conflicts []Conflict  `json:"conflicts"`
}

// UpdatedItem is a remote use case whose version differs from the installed one.
type UpdatedItem struct {
	ManifestItem
	LocalVersion string `json:"localVersion"`
}

// DiffResult lists what a sync would add or refresh. Unchanged items are only counted.
type DiffResult struct {
	New       []ManifestItem `json:"newUseCases"`
	Updated   []UpdatedItem  `json:"updated"`
	Unchanged int            `json:"unchanged"`
	Total     int            `json:"total"`
}

// UpdateStatus is the answer of an update check. Failures are reported in Error.
type UpdateStatus struct {
	NewUseCases     []ManifestItem `json:"newUseCases"`
	Updated         []UpdatedItem  `json:"updated"`
	Unchanged       int            `json:"unchanged"`
	TotalInManifest int            `json:"totalInManifest"`
	ImageCount      int            `json:"imageCount"`
	Error           string         `json:"error,omitempty"`
}

// HasChanges reports whether a sync would bring anything new.
func (s *UpdateStatus) HasChanges() bool {
	return len(s.NewUseCases) > 0 || len(s.Updated) > 0
}

// UnitKind distinguishes use cases from images in progress reports.
type UnitKind string

const (
	KindItem  UnitKind = "item"
	KindAsset UnitKind = "asset"
)

// Progress is emitted once per processed unit, whether it succeeded or not.
type Progress struct {
	// Sequence runs from 1 to Total without gaps.
	Sequence int      `json:"current"`
	Total    int      `json:"total"`
	Name     string   `json:"name"`
	Kind     UnitKind `json:"kind"`
	OK       bool     `json:"ok"`
}

// Percent maps the sequence onto 10..95, leaving room for the manifest fetch and the final summary.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 95
	}
	return 10 + (p.Sequence*85+p.Total/2)/p.Total
}

// Counts holds per-kind sync outcomes.
type Counts struct {
	Downloaded int `json:"downloaded"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// SyncResult aggregates one bulk synchronization.
type SyncResult struct {
	Downloaded int    `json:"downloaded"`
	Failed     int    `json:"failed"`
	Total      int    `json:"total"`
	UseCases   Counts `json:"useCases"`
	Images     Counts `json:"images"`
}

// Record adds one unit outcome.
func (r *SyncResult) Record(kind UnitKind, ok bool) {
	c := &r.UseCases
	if kind == KindAsset {
		c = &r.Images
	}
	if ok {
		c.Downloaded++
		r.Downloaded++
	} else {
		c.Failed++
		r.Failed++
	}
}

// SplitID validates a "<category>/<slug>" id and returns its parts.
func SplitID(id string) (category, slug string, err error) {
	parts := strings.Split(id, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q is not category/slug", ErrInvalidID, id)
	}
	if err := ValidateSegment(parts[0]); err != nil {
		return "", "", err
	}
	if err := ValidateSegment(parts[1]); err != nil {
		return "", "", err
	}
	return parts[0], parts[1], nil
}

// ValidateSegment rejects empty, dot and separator-carrying path segments.
func ValidateSegment(s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("%w: bad segment %q", ErrInvalidID, s)
	}
	return nil
}

// ValidateAssetPath accepts relative slash-separated paths without parent references.
func ValidateAssetPath(p string) error {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return fmt.Errorf("%w: bad asset path %q", ErrInvalidID, p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: bad asset path %q", ErrInvalidID, p)
		}
	}
	if path.Clean(p) != p {
		return fmt.Errorf("%w: bad asset path %q", ErrInvalidID, p)
	}
	return nil
}

// AssetDisplayName is the progress label of an image.
func AssetDisplayName(p string) string {
	return "Image: " + path.Base(p)
}
