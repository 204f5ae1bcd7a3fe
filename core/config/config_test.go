package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./use-cases", cfg.Content.LocalPath)
	assert.Equal(t, 30, cfg.Content.TimeoutSeconds)
	assert.True(t, cfg.Content.SyncOnStartup)
	assert.Equal(t, "us-west-2", cfg.Storage.Region)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CONTENT_REPO_URL", "s3://poc-content/use-cases")
	t.Setenv("CONTENT_TIMEOUT_SECONDS", "12")
	t.Setenv("SERVER_API_KEY", "secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "s3://poc-content/use-cases", cfg.Content.RepoURL)
	assert.Equal(t, 12, cfg.Content.TimeoutSeconds)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CONTENT_LOCAL_PATH=/srv/use-cases\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CONTENT_LOCAL_PATH") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/use-cases", cfg.Content.LocalPath)
}
