package checks

import (
	"context"
	"errors"

	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/source"
)

// SourceReport describes the reachability of one content source.
type SourceReport struct {
	Kind     string `json:"kind"`
	Location string `json:"location"`
	// BucketExists is only set for object storage sources.
	BucketExists *bool  `json:"bucketExists,omitempty"`
	Manifest     bool   `json:"manifest"`
	Listing      bool   `json:"listing"`
	Objects      int    `json:"objects"`
	Error        string `json:"error,omitempty"`
}

// bucketChecker is implemented by sources backed by a bucket.
type bucketChecker interface {
	BucketExists(ctx context.Context) (bool, error)
}

// CheckSource probes a source: bucket existence, an explicit manifest and a listing.
func CheckSource(ctx context.Context, src source.ContentSource) SourceReport {
	report := SourceReport{Kind: string(src.Kind()), Location: src.Location()}
	var errs []error

	if bc, ok := src.(bucketChecker); ok {
		exists, err := bc.BucketExists(ctx)
		if err != nil {
			errs = append(errs, err)
		} else {
			report.BucketExists = &exists
		}
	}

	if _, err := src.FetchManifest(ctx); err == nil {
		report.Manifest = true
	} else if !errors.Is(err, models.ErrObjectNotFound) {
		errs = append(errs, err)
	}

	if keys, err := src.ListObjects(ctx); err == nil {
		report.Listing = true
		report.Objects = len(keys)
	} else if !report.Manifest {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		report.Error = err.Error()
	}
	return report
}

// Reachable reports whether the source can serve a manifest one way or another.
func (r SourceReport) Reachable() bool {
	return r.Manifest || r.Listing
}
