package checks

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"poc-portal/feature/usecases/models"

	"go.uber.org/zap"
)

// StructureReport describes problems in the local content root.
type StructureReport struct {
	// Incomplete lists use cases with only one of their two files.
	Incomplete []string `json:"incomplete"`
	// Stray lists staging files left behind by interrupted writes, relative to the root.
	Stray []string `json:"stray"`
}

// OK reports whether nothing was found.
func (r *StructureReport) OK() bool {
	return len(r.Incomplete) == 0 && len(r.Stray) == 0
}

// CheckStructure walks the content root looking for half-installed use cases
// and leftover staging files.
func CheckStructure(root string) (*StructureReport, error) {
	report := &StructureReport{Incomplete: []string{}, Stray: []string{}}

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("content root %s is not accessible: %w", root, err)
	}

	// category/slug -> number of pair files found
	pairs := make(map[string]int)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()

		if strings.HasPrefix(name, ".sync-") && strings.HasSuffix(name, ".tmp") {
			report.Stray = append(report.Stray, rel)
			return nil
		}

		parts := strings.Split(rel, "/")
		if len(parts) != 2 {
			return nil
		}
		for _, ext := range []string{models.DocumentExt, models.MetadataExt} {
			if strings.HasSuffix(name, ext) {
				pairs[parts[0]+"/"+strings.TrimSuffix(name, ext)]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan content root: %w", err)
	}

	for id, n := range pairs {
		if n == 1 {
			report.Incomplete = append(report.Incomplete, id)
		}
	}
	sort.Strings(report.Incomplete)
	sort.Strings(report.Stray)

	return report, nil
}

// FixStructure removes the stray staging files. Incomplete use cases are left
// alone, a sync or a single download repairs them.
func FixStructure(root string, logger *zap.Logger, stray []string) error {
	for _, rel := range stray {
		if err := models.ValidateAssetPath(rel); err != nil {
			return err
		}
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Error("Failed to remove stray file", zap.String("file", rel), zap.Error(err))
			return err
		}
		logger.Info("Removed stray file", zap.String("file", rel))
	}
	return nil
}
