// Package usecases implements the remote use case synchronization feature.
//
// Use cases are pairs of files (<slug>.md and <slug>.yaml) grouped by product
// category. They live in a remote content source, either an S3 bucket or a
// plain web server, and are mirrored into a local content root.
//
// # Components
//
//   - models: manifest, inventory, diff, progress and result types plus sentinel errors.
//   - source: object storage and HTTP content sources, resolved from a location string.
//   - inventory: scans and writes the local content root.
//   - remote: manifest retrieval, diffing, single downloads and the bulk synchronizer.
//   - history: optional database record of sync runs.
//   - Service: serializes bulk syncs, caches update checks and runs the startup sync.
//   - Handler: exposes the HTTP endpoints.
//
// # HTTP Endpoints
//
//   - GET  /usecases/updates?repoUrl= : New and updated use cases.
//   - POST /usecases/sync : Bulk synchronization streamed as NDJSON.
//   - POST /usecases/download : Install one use case.
//   - GET  /usecases/inventory : Installed use cases and slug conflicts.
//   - GET  /usecases/history : Recent sync runs.
package usecases
