// Package content holds the configuration of the use case content source
// and the local content directory.
//
// The remote location decides which transport is used by the synchronization
// feature (object storage or plain HTTP); the local path is the directory tree
// the portal serves use cases from.
package content
