package usecases_test

import (
	"context"
	"sync"
	"testing"

	"poc-portal/core/content"
	"poc-portal/core/database"
	"poc-portal/feature/usecases"
	"poc-portal/feature/usecases/history"
	"poc-portal/feature/usecases/inventory"
	"poc-portal/feature/usecases/models"
	"poc-portal/feature/usecases/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CheckForUpdatesIsCached(t *testing.T) {
	srv := newContentServer(t, defaultFiles())
	svc, _ := newTestService(t, srv.URL)

	first := svc.CheckForUpdates(context.Background(), "")
	second := svc.CheckForUpdates(context.Background(), "")

	require.Empty(t, first.Error)
	assert.Len(t, first.NewUseCases, 2)
	assert.Equal(t, 1, first.ImageCount)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), srv.manifestCalls.Load())
}

func TestService_CheckForUpdatesWithoutSource(t *testing.T) {
	svc, _ := newTestService(t, "")

	status := svc.CheckForUpdates(context.Background(), "")

	assert.Equal(t, models.ErrNoSource.Error(), status.Error)
	assert.NotNil(t, status.NewUseCases)
}

func TestService_FailedChecksAreNotCached(t *testing.T) {
	files := defaultFiles()
	delete(files, "manifest.json")
	srv := newContentServer(t, files)
	svc, _ := newTestService(t, srv.URL)

	first := svc.CheckForUpdates(context.Background(), "")
	assert.Contains(t, first.Error, "could not fetch manifest.json")

	srv.files["manifest.json"] = defaultFiles()["manifest.json"]
	second := svc.CheckForUpdates(context.Background(), "")
	assert.Empty(t, second.Error)
	assert.Len(t, second.NewUseCases, 2)
}

func TestService_SyncAllInvalidatesCache(t *testing.T) {
	srv := newContentServer(t, defaultFiles())
	svc, store := newTestService(t, srv.URL)

	before := svc.CheckForUpdates(context.Background(), "")
	require.Len(t, before.NewUseCases, 2)

	result, err := svc.SyncAll(context.Background(), "", usecases.TriggerAPI, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Downloaded)
	assert.True(t, store.Exists("tls", "onboarding"))

	after := svc.CheckForUpdates(context.Background(), "")
	assert.Empty(t, after.NewUseCases)
	assert.Empty(t, after.Updated)
}

func TestService_SyncAllRejectsOverlap(t *testing.T) {
	srv := newContentServer(t, defaultFiles())
	svc, _ := newTestService(t, srv.URL)

	events := make(chan models.Progress)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.SyncAll(context.Background(), "", usecases.TriggerAPI, events)
		assert.NoError(t, err)
	}()

	// the first sync blocks on its first progress event until we read it
	first := <-events
	assert.Equal(t, 1, first.Sequence)
	assert.True(t, svc.SyncInProgress())

	overlap := make(chan models.Progress)
	_, err := svc.SyncAll(context.Background(), "", usecases.TriggerAPI, overlap)
	assert.ErrorIs(t, err, models.ErrSyncInProgress)
	_, open := <-overlap
	assert.False(t, open)

	for range events {
	}
	wg.Wait()
	assert.False(t, svc.SyncInProgress())
}

func TestService_DownloadItem(t *testing.T) {
	srv := newContentServer(t, defaultFiles())
	svc, store := newTestService(t, srv.URL)

	require.NoError(t, svc.DownloadItem(context.Background(), "", "tls", "onboarding"))
	assert.True(t, store.Exists("tls", "onboarding"))

	err := svc.DownloadItem(context.Background(), "", "tls", "missing")
	assert.ErrorIs(t, err, models.ErrItemFetchFailed)

	err = svc.DownloadItem(context.Background(), "", "..", "onboarding")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestService_RecordsHistory(t *testing.T) {
	srv := newContentServer(t, defaultFiles())

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	hist, err := history.NewStore(db)
	require.NoError(t, err)

	store := inventory.NewStore(t.TempDir(), zap.NewNop())
	svc := usecases.NewService(content.Config{RepoURL: srv.URL}, source.NewResolver(nil, nil, 0), store, hist, zap.NewNop())
	assert.True(t, svc.HistoryEnabled())

	_, err = svc.SyncAll(context.Background(), "", usecases.TriggerCLI, nil)
	require.NoError(t, err)

	runs, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, srv.URL, runs[0].Source)
	assert.Equal(t, usecases.TriggerCLI, runs[0].Trigger)
	assert.Equal(t, 3, runs[0].Downloaded)
}

func TestService_HistoryWithoutDatabase(t *testing.T) {
	svc, _ := newTestService(t, "")

	runs, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.False(t, svc.HistoryEnabled())
}

func TestService_StartupSyncsWhenChangesExist(t *testing.T) {
	srv := newContentServer(t, defaultFiles())
	svc, store := newTestService(t, srv.URL)

	svc.Startup(context.Background())

	assert.True(t, store.Exists("tls", "onboarding"))
	assert.True(t, store.Exists("security", "mfa-setup"))
}

func TestService_StartupSkipsWhenUpToDate(t *testing.T) {
	files := defaultFiles()
	srv := newContentServer(t, files)
	svc, store := newTestService(t, srv.URL)
	require.NoError(t, store.SaveItem("tls", "onboarding", []byte("local"), []byte("version: \"2\"\n")))
	require.NoError(t, store.SaveItem("security", "mfa-setup", []byte("local"), []byte("version: \"1\"\n")))

	svc.Startup(context.Background())

	inv, err := svc.Inventory()
	require.NoError(t, err)
	assert.Len(t, inv.UseCases, 2)
	// local documents were not overwritten
	assert.NoFileExists(t, store.Root()+"/security/images/diagram.png")
}

func TestService_StartupWithoutRepository(t *testing.T) {
	svc, store := newTestService(t, "")

	svc.Startup(context.Background())

	inv, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, inv.UseCases)
}
