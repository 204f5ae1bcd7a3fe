// Package source abstracts the remote places use cases are synchronized from.
//
// A location string is resolved into one or more ContentSource values: an
// object storage source for s3:// addresses and S3 HTTPS URLs (backed by the
// shared storage.Pool), and a plain HTTP source for web servers and public
// bucket endpoints. Every request is bounded by the configured timeout.
package source
