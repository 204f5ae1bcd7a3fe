// Package history records bulk synchronization runs in the optional database.
package history
