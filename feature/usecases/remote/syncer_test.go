package remote

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSyncer(t *testing.T, sources ...source.ContentSource) (*Syncer, *inventory.Store) {
	t.Helper()
	store := inventory.NewStore(t.TempDir(), zap.NewNop())
	return NewSyncer(fakeResolver{sources: sources}, store, zap.NewNop()), store
}

func collect(t *testing.T, run func(chan<- models.Progress) (*models.SyncResult, error)) ([]models.Progress, *models.SyncResult, error) {
	t.Helper()
	events := make(chan models.Progress)
	var (
		result *models.SyncResult
		err    error
	)
	done := make(chan struct{})
	go func() {
		result, err = run(events)
		close(done)
	}()

	var got []models.Progress
	for ev := range events {
		got = append(got, ev)
	}
	<-done
	return got, result, err
}

func TestSyncAll_InstallsEverything(t *testing.T) {
	src := newFakeSource().withItem("tls/onboarding", "2").withItem("security/mfa-setup", "1")
	src.objects["security/images/diagram.png"] = []byte("png")
	syncer, store := newTestSyncer(t, src)

	events, result, err := collect(t, func(ch chan<- models.Progress) (*models.SyncResult, error) {
		return syncer.SyncAll(context.Background(), "s3://poc-content", ch)
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Downloaded)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, models.Counts{Downloaded: 2, Total: 2}, result.UseCases)
	assert.Equal(t, models.Counts{Downloaded: 1, Total: 1}, result.Images)

	require.Len(t, events, 3)
	assert.Equal(t, models.KindItem, events[0].Kind)
	assert.Equal(t, models.KindItem, events[1].Kind)
	assert.Equal(t, models.Progress{Sequence: 3, Total: 3, Name: "Image: diagram.png", Kind: models.KindAsset, OK: true}, events[2])

	assert.True(t, store.Exists("tls", "onboarding"))
	assert.FileExists(t, filepath.Join(store.Root(), "security", "images", "diagram.png"))
}

func TestSyncAll_PartialFailure(t *testing.T) {
	src := newFakeSource()
	src.manifest = []byte(`{"useCases":[
		{"id":"a/one","name":"One","version":"1"},
		{"id":"a/two","name":"Two","version":"1"},
		{"id":"a/three","name":"Three","version":"1"},
		{"id":"a/four","name":"Four","version":"1"},
		{"id":"a/five","name":"Five","version":"1"}
	]}`)
	for _, id := range []string{"a/one", "a/two", "a/three", "a/four", "a/five"} {
		src.withItem(id, "1")
	}
	src.failing["a/three.yaml"] = true
	syncer, store := newTestSyncer(t, src)

	events, result, err := collect(t, func(ch chan<- models.Progress) (*models.SyncResult, error) {
		return syncer.SyncAll(context.Background(), "s3://poc-content", ch)
	})

	require.NoError(t, err)
	assert.Equal(t, 4, result.Downloaded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, result.Total, result.Downloaded+result.Failed)

	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, i+1, ev.Sequence)
		assert.Equal(t, 5, ev.Total)
	}
	assert.False(t, events[2].OK)
	assert.Equal(t, "Three", events[2].Name)

	// neither file of the failed use case is installed
	assert.NoFileExists(t, filepath.Join(store.Root(), "a", "three.md"))
	assert.NoFileExists(t, filepath.Join(store.Root(), "a", "three.yaml"))
	assert.True(t, store.Exists("a", "five"))
}

func TestSyncAll_ProgressPercentIsMonotonic(t *testing.T) {
	src := newFakeSource()
	for _, id := range []string{"a/1", "a/2", "a/3", "b/4", "b/5", "b/6", "c/7"} {
		src.withItem(id, "1")
	}
	syncer, _ := newTestSyncer(t, src)

	events, _, err := collect(t, func(ch chan<- models.Progress) (*models.SyncResult, error) {
		return syncer.SyncAll(context.Background(), "s3://poc-content", ch)
	})

	require.NoError(t, err)
	last := 10
	for _, ev := range events {
		p := ev.Percent()
		assert.GreaterOrEqual(t, p, last)
		assert.LessOrEqual(t, p, 95)
		last = p
	}
	assert.Equal(t, 95, last)
}

func TestSyncAll_EmptyManifest(t *testing.T) {
	src := newFakeSource()
	src.manifest = []byte(`{"useCases":[],"images":[]}`)
	syncer, _ := newTestSyncer(t, src)

	events, result, err := collect(t, func(ch chan<- models.Progress) (*models.SyncResult, error) {
		return syncer.SyncAll(context.Background(), "s3://poc-content", ch)
	})

	assert.ErrorIs(t, err, models.ErrEmptyManifest)
	assert.Nil(t, result)
	assert.Empty(t, events)
}

func TestSyncAll_ManifestUnavailable(t *testing.T) {
	src := newFakeSource()
	src.listErr = errors.New("no route to host")
	syncer, _ := newTestSyncer(t, src)

	_, err := syncer.SyncAll(context.Background(), "s3://poc-content", nil)

	assert.ErrorIs(t, err, models.ErrManifestUnavailable)
}

func TestSyncAll_ThenCheckIsIdempotent(t *testing.T) {
	src := newFakeSource().withItem("tls/onboarding", "2").withItem("security/mfa-setup", "1")
	src.manifest = []byte(`{"useCases":[{"id":"tls/onboarding","version":"2"},{"id":"security/mfa-setup","version":"1"}]}`)
	syncer, _ := newTestSyncer(t, src)

	before := syncer.CheckForUpdates(context.Background(), "s3://poc-content")
	require.Empty(t, before.Error)
	assert.Len(t, before.NewUseCases, 2)

	_, err := syncer.SyncAll(context.Background(), "s3://poc-content", nil)
	require.NoError(t, err)

	after := syncer.CheckForUpdates(context.Background(), "s3://poc-content")
	assert.Empty(t, after.Error)
	assert.Empty(t, after.NewUseCases)
	assert.Empty(t, after.Updated)
	assert.Equal(t, 2, after.Unchanged)
	assert.Equal(t, 2, after.TotalInManifest)
}

func TestCheckForUpdates_ReportsUpdated(t *testing.T) {
	src := newFakeSource()
	src.manifest = []byte(`{"useCases":[{"id":"tls/onboarding","name":"Onboarding","version":"2"}],"images":["tls/images/x.png"]}`)
	syncer, store := newTestSyncer(t, src)
	require.NoError(t, store.SaveItem("tls", "onboarding", []byte("# v1"), []byte("version: \"1\"\n")))

	status := syncer.CheckForUpdates(context.Background(), "s3://poc-content")

	assert.Empty(t, status.Error)
	assert.Empty(t, status.NewUseCases)
	require.Len(t, status.Updated, 1)
	assert.Equal(t, "1", status.Updated[0].LocalVersion)
	assert.Equal(t, "2", status.Updated[0].Version)
	assert.Equal(t, 1, status.TotalInManifest)
	assert.Equal(t, 1, status.ImageCount)
}

func TestCheckForUpdates_ErrorIsReportedInStatus(t *testing.T) {
	syncer := NewSyncer(fakeResolver{err: models.ErrUnsupportedLocation}, inventory.NewStore(t.TempDir(), zap.NewNop()), zap.NewNop())

	status := syncer.CheckForUpdates(context.Background(), "ftp://nowhere")

	assert.Contains(t, status.Error, "unsupported content source location")
	assert.NotNil(t, status.NewUseCases)
	assert.NotNil(t, status.Updated)
}

func TestDownloadItem(t *testing.T) {
	src := newFakeSource().withItem("tls/onboarding", "2")
	syncer, store := newTestSyncer(t, src)

	require.NoError(t, syncer.DownloadItem(context.Background(), "s3://poc-content", "tls", "onboarding"))

	doc, err := os.ReadFile(filepath.Join(store.Root(), "tls", "onboarding.md"))
	require.NoError(t, err)
	assert.Equal(t, "# tls/onboarding", string(doc))

	err = syncer.DownloadItem(context.Background(), "s3://poc-content", "tls", "missing")
	assert.ErrorIs(t, err, models.ErrItemFetchFailed)
	assert.False(t, store.Exists("tls", "missing"))
}
