package reconcile

// Versioned is an entity that can be matched across sources by key and compared by version.
type Versioned interface {
	// Key is the identity shared by the remote and local representations.
	Key() string
	// VersionTag is an opaque version token. Empty means "unknown".
	VersionTag() string
}

// Update pairs a remote entity with the version currently installed locally.
type Update[T Versioned] struct {
	Item         T
	LocalVersion string
}

// Result partitions the remote entities against the local ones.
// Every remote entity lands in exactly one of New, Updated or Unchanged.
type Result[T Versioned] struct {
	// New holds entities present remotely but absent locally.
	New []T
	// Updated holds entities present on both sides with differing, non-empty versions.
	Updated []Update[T]
	// Unchanged holds everything else.
	Unchanged []T
}

// Summary holds the counts of a Result.
type Summary struct {
	New       int `json:"new"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Total     int `json:"total"`
}

// Summary returns counts by classification.
func (r Result[T]) Summary() Summary {
	return Summary{
		New:       len(r.New),
		Updated:   len(r.Updated),
		Unchanged: len(r.Unchanged),
		Total:     len(r.New) + len(r.Updated) + len(r.Unchanged),
	}
}
