package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(syncUnitsTotal.WithLabelValues("item", "failure"))
	RecordSyncUnit("item", false)
	assert.Equal(t, before+1, testutil.ToFloat64(syncUnitsTotal.WithLabelValues("item", "failure")))

	before = testutil.ToFloat64(manifestFetchTotal.WithLabelValues("http", "listing", "success"))
	RecordManifestFetch("http", "listing", true)
	assert.Equal(t, before+1, testutil.ToFloat64(manifestFetchTotal.WithLabelValues("http", "listing", "success")))

	before = testutil.ToFloat64(syncRunsTotal.WithLabelValues("success"))
	RecordSyncRun(true, time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(syncRunsTotal.WithLabelValues("success")))

	SetPending(3, 1)
	assert.Equal(t, 3.0, testutil.ToFloat64(pendingUseCases.WithLabelValues("new")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pendingUseCases.WithLabelValues("updated")))

	SetConflicts(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(localConflicts))
}

func TestHandler(t *testing.T) {
	RecordSyncUnit("asset", true)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "poc_portal_sync_units_total")
}
