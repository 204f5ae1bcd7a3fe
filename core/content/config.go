package content

import "time"

// Config holds configuration for the use case content source.
type Config struct {
	// RepoURL is the remote source location (s3:// address, S3 HTTPS URL or plain HTTP base URL).
	// Leaving it empty disables remote synchronization.
	RepoURL string `mapstructure:"repo_url" default:""`
	// LocalPath is the root directory use cases are stored in (<category>/<slug>.md|.yaml).
	LocalPath string `mapstructure:"local_path" default:"./use-cases"`
	// TimeoutSeconds bounds every single remote request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// SyncOnStartup runs an update check (and a sync when needed) before the server starts.
	SyncOnStartup bool `mapstructure:"sync_on_startup" default:"true"`
	// StatusCacheSeconds is how long an update check result is reused for the same location.
	StatusCacheSeconds int `mapstructure:"status_cache_seconds" default:"60"`
}

// Timeout returns the per-request timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StatusCacheTTL returns the update check cache lifetime. Zero disables caching.
func (c Config) StatusCacheTTL() time.Duration {
	if c.StatusCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.StatusCacheSeconds) * time.Second
}
