// Package config provides configuration management for the POC Portal.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials, endpoint override and default region
//   - Content: use case source location, local content root, request timeout
//   - Database: optional sync history database
//   - Log: Logging level and format
//
// Every key maps to an environment variable by upper-casing it and replacing
// dots with underscores, e.g. content.repo_url -> CONTENT_REPO_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Content.RepoURL)
package config
