// Package metrics provides Prometheus metrics for the POC Portal.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Manifest retrieval, one observation per attempted strategy
	manifestFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poc_portal_manifest_fetch_total",
			Help: "Manifest retrieval attempts by source kind, strategy and result",
		},
		[]string{"source", "strategy", "result"},
	)

	// Sync units (items and assets)
	syncUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poc_portal_sync_units_total",
			Help: "Processed sync units by kind and result",
		},
		[]string{"kind", "result"},
	)

	syncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poc_portal_sync_runs_total",
			Help: "Bulk synchronization runs by result",
		},
		[]string{"result"},
	)

	syncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poc_portal_sync_duration_seconds",
			Help:    "Duration of bulk synchronization runs",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
	)

	// Diff gauges, refreshed by every update check
	pendingUseCases = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "poc_portal_pending_use_cases",
			Help: "Use cases waiting to be synchronized, by change type",
		},
		[]string{"change"},
	)

	localConflicts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "poc_portal_local_conflicts",
			Help: "Slugs present in more than one local category",
		},
	)
)

// RecordManifestFetch records one manifest retrieval attempt.
func RecordManifestFetch(source, strategy string, ok bool) {
	manifestFetchTotal.WithLabelValues(source, strategy, result(ok)).Inc()
}

// RecordSyncUnit records one processed item or asset.
func RecordSyncUnit(kind string, ok bool) {
	syncUnitsTotal.WithLabelValues(kind, result(ok)).Inc()
}

// RecordSyncRun records a finished bulk synchronization.
func RecordSyncRun(ok bool, d time.Duration) {
	syncRunsTotal.WithLabelValues(result(ok)).Inc()
	syncDuration.Observe(d.Seconds())
}

// SetPending publishes the latest diff counts.
func SetPending(newCount, updatedCount int) {
	pendingUseCases.WithLabelValues("new").Set(float64(newCount))
	pendingUseCases.WithLabelValues("updated").Set(float64(updatedCount))
}

// SetConflicts publishes the number of local slug conflicts.
func SetConflicts(n int) {
	localConflicts.Set(float64(n))
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
