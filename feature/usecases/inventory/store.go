package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"poc-portal/feature/usecases/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// metadata is the subset of the use case YAML the inventory reads.
type metadata struct {
	Version string `yaml:"version"`
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
}

// Store reads and writes use cases below a root directory laid out as
// <root>/<category>/<slug>.md and <root>/<category>/<slug>.yaml.
type Store struct {
	root   string
	logger *zap.Logger
}

// NewStore creates a store rooted at root.
func NewStore(root string, logger *zap.Logger) *Store {
	return &Store{root: filepath.Clean(root), logger: logger}
}

// Root returns the content root directory.
func (s *Store) Root() string {
	return s.root
}

// List scans the root and returns every complete use case plus slug conflicts.
// A missing root is created and yields an empty inventory.
// Only use cases with both a document and a metadata file are listed; conflicts
// are counted from metadata files alone.
func (s *Store) List() (*models.Inventory, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create content root %s: %w", s.root, err)
	}

	categories, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read content root %s: %w", s.root, err)
	}

	inv := &models.Inventory{UseCases: []models.LocalItem{}, Conflicts: []models.Conflict{}}
	slugs := make(map[string][]string)

	for _, cat := range categories {
		if !cat.IsDir() || strings.HasPrefix(cat.Name(), ".") {
			continue
		}
		category := cat.Name()

		entries, err := os.ReadDir(filepath.Join(s.root, category))
		if err != nil {
			s.logger.Warn("Skipping unreadable category", zap.String("category", category), zap.Error(err))
			continue
		}

		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), models.MetadataExt) {
				continue
			}
			slug := strings.TrimSuffix(e.Name(), models.MetadataExt)
			if slug == "" {
				continue
			}
			slugs[slug] = append(slugs[slug], category)

			item, ok := s.load(category, slug)
			if ok {
				inv.UseCases = append(inv.UseCases, item)
			}
		}
	}

	inv.Conflicts = conflicts(slugs)
	return inv, nil
}

func (s *Store) load(category, slug string) (models.LocalItem, bool) {
	docPath, metaPath := s.paths(category, slug)

	if _, err := os.Stat(docPath); err != nil {
		return models.LocalItem{}, false
	}

	raw, err := os.ReadFile(metaPath)
	if err != nil {
		s.logger.Warn("Skipping unreadable use case metadata", zap.String("path", metaPath), zap.Error(err))
		return models.LocalItem{}, false
	}

	var meta metadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		s.logger.Warn("Skipping use case with invalid YAML", zap.String("path", metaPath), zap.Error(err))
		return models.LocalItem{}, false
	}

	name := meta.Name
	if name == "" {
		name = meta.Title
	}

	return models.LocalItem{
		ID:       category + "/" + slug,
		Category: category,
		Slug:     slug,
		Name:     name,
		Version:  meta.Version,
	}, true
}

func conflicts(slugs map[string][]string) []models.Conflict {
	result := []models.Conflict{}
	for slug, categories := range slugs {
		if len(categories) < 2 {
			continue
		}
		sort.Strings(categories)
		ids := make([]string, len(categories))
		for i, c := range categories {
			ids[i] = c + "/" + slug
		}
		result = append(result, models.Conflict{Slug: slug, Categories: categories, IDs: ids})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Slug < result[j].Slug })
	return result
}

// SaveItem writes the document and metadata of a use case. Both files are staged
// first and then moved into place. If the metadata cannot be installed the
// previous document is put back (or the new one removed), so the pair on disk
// never mixes versions.
func (s *Store) SaveItem(category, slug string, document, metadata []byte) error {
	if err := models.ValidateSegment(category); err != nil {
		return err
	}
	if err := models.ValidateSegment(slug); err != nil {
		return err
	}

	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create category directory: %w", err)
	}

	docPath, metaPath := s.paths(category, slug)

	docTmp, err := stage(dir, document)
	if err != nil {
		return err
	}
	metaTmp, err := stage(dir, metadata)
	if err != nil {
		os.Remove(docTmp)
		return err
	}

	backup, err := s.moveAside(dir, docPath)
	if err != nil {
		os.Remove(docTmp)
		os.Remove(metaTmp)
		return err
	}

	if err := os.Rename(docTmp, docPath); err != nil {
		os.Remove(docTmp)
		os.Remove(metaTmp)
		s.restore(backup, docPath)
		return fmt.Errorf("failed to install %s: %w", docPath, err)
	}
	if err := os.Rename(metaTmp, metaPath); err != nil {
		os.Remove(metaTmp)
		s.restore(backup, docPath)
		return fmt.Errorf("failed to install %s: %w", metaPath, err)
	}

	if backup != "" {
		os.Remove(backup)
	}
	return nil
}

// moveAside renames an existing file to a staging name and returns that name.
// It returns "" when there is nothing to move.
func (s *Store) moveAside(dir, target string) (string, error) {
	if _, err := os.Stat(target); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	f, err := os.CreateTemp(dir, ".sync-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	f.Close()

	if err := os.Rename(target, f.Name()); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to back up %s: %w", target, err)
	}
	return f.Name(), nil
}

// restore puts a moved-aside file back over target, or removes target when
// there was no previous file.
func (s *Store) restore(backup, target string) {
	if backup == "" {
		os.Remove(target)
		return
	}
	if err := os.Rename(backup, target); err != nil {
		s.logger.Error("Failed to restore previous file",
			zap.String("path", target),
			zap.String("backup", backup),
			zap.Error(err))
	}
}

// SaveAsset writes an image below the root, creating parent directories.
func (s *Store) SaveAsset(relPath string, data []byte) error {
	if err := models.ValidateAssetPath(relPath); err != nil {
		return err
	}

	target := filepath.Join(s.root, filepath.FromSlash(relPath))
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create asset directory: %w", err)
	}

	tmp, err := stage(dir, data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to install %s: %w", target, err)
	}
	return nil
}

// Exists reports whether both files of a use case are present.
func (s *Store) Exists(category, slug string) bool {
	docPath, metaPath := s.paths(category, slug)
	_, docErr := os.Stat(docPath)
	_, metaErr := os.Stat(metaPath)
	return docErr == nil && metaErr == nil
}

func (s *Store) paths(category, slug string) (doc, meta string) {
	base := filepath.Join(s.root, category, slug)
	return base + models.DocumentExt, base + models.MetadataExt
}

func stage(dir string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, ".sync-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	_, werr := f.Write(data)
	merr := f.Chmod(0o644)
	cerr := f.Close()
	if err := errors.Join(werr, merr, cerr); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return f.Name(), nil
}
