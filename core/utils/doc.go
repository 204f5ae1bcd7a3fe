// Package utils provides common utility functions for the poc-portal application.
// It includes helpers for slug and object key manipulation and loose flag parsing
// that don't fit into domain-specific packages.
package utils
