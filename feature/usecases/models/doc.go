// Package models defines the data shapes shared by the use case synchronization
// packages: the remote manifest, the local inventory, diff and sync results,
// progress events and the sentinel errors.
package models
