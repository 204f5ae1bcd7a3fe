// Package integrity provides health checks for the use case content.
//
// Unlike the 'usecases' package which moves content from the remote repository
// to disk, this package validates what is already there and whether the
// repository can be reached at all.
//
// # Checks Provided
//
//   - Structure: Finds use cases missing their document or metadata file and staging files left by interrupted writes.
//   - Images: Lists images named by the remote manifest that are not present locally.
//   - Source: Probes every content source of the repository (bucket existence, manifest, listing).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/images : Runs images check.
//   - GET /integrity/source : Runs source check.
package integrity
