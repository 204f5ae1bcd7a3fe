package remote

import (
	"poc-portal/core/reconcile"
	"poc-portal/feature/usecases/models"
)

// Diff classifies manifest use cases against the local inventory.
// Versions are compared as opaque strings; unchanged items are only counted.
func Diff(manifest *models.Manifest, local []models.LocalItem) models.DiffResult {
	result := reconcile.Diff(manifest.UseCases, local)
	summary := result.Summary()

	diff := models.DiffResult{
		New:       result.New,
		Updated:   make([]models.UpdatedItem, 0, len(result.Updated)),
		Unchanged: summary.Unchanged,
		Total:     summary.Total,
	}
	if diff.New == nil {
		diff.New = []models.ManifestItem{}
	}
	for _, u := range result.Updated {
		diff.Updated = append(diff.Updated, models.UpdatedItem{ManifestItem: u.Item, LocalVersion: u.LocalVersion})
	}
	return diff
}
