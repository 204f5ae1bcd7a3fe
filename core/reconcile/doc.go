// Package reconcile provides a generic, version-based comparison between a
// remote listing and a local inventory, plus a TTL cache for the slow remote side.
//
// # Engine
//
// Diff builds an index of the local entities by key and classifies each remote
// entity as new, updated or unchanged. Version tags are opaque strings: they are
// compared for inequality only and an empty tag on either side never yields an
// update. Content is never hashed.
//
// # Cache
//
// Cache stores values (such as a fetched manifest or an update check) per key
// for a TTL and uses singleflight to prevent stampedes when a polled endpoint
// misses the cache from several requests at once.
//
// # Usage Example
//
//	result := reconcile.Diff(manifest.UseCases, localItems)
//	s := result.Summary()
//	fmt.Println(s.New, s.Updated)
package reconcile
