package reconcile

// Diff classifies every remote entity against the local index.
//
// An entity whose key is missing locally is new. An entity present on both
// sides is updated only when both version tags are non-empty and differ by
// plain string comparison; versions are never parsed, so "1.9" vs "1.10" counts
// as an update. Everything else is unchanged. Remote order is preserved within
// each group.
func Diff[R Versioned, L Versioned](remote []R, local []L) Result[R] {
	index := make(map[string]string, len(local))
	for _, l := range local {
		if _, seen := index[l.Key()]; !seen {
			index[l.Key()] = l.VersionTag()
		}
	}

	var result Result[R]
	for _, r := range remote {
		localVersion, present := index[r.Key()]
		switch {
		case !present:
			result.New = append(result.New, r)
		case r.VersionTag() != "" && localVersion != "" && r.VersionTag() != localVersion:
			result.Updated = append(result.Updated, Update[R]{Item: r, LocalVersion: localVersion})
		default:
			result.Unchanged = append(result.Unchanged, r)
		}
	}

	return result
}
