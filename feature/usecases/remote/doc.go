// Package remote synchronizes use cases from a remote content source into the
// local inventory.
//
// FetchManifest obtains the canonical listing (an explicit manifest.json, or
// one synthesized from a raw object listing), Diff compares it with what is
// installed, and Syncer drives single downloads and the sequential bulk sync
// that reports one progress event per use case or image.
package remote
