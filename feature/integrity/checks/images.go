package checks

import (
	"os"
	"path/filepath"
)

// MissingImages returns the manifest images that are not present under root.
func MissingImages(root string, images []string) []string {
	missing := []string{}
	for _, img := range images {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(img))); err != nil {
			missing = append(missing, img)
		}
	}
	return missing
}
