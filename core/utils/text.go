package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisplayName turns a slug into a human readable title: hyphens become spaces
// and the first letter of every word is upper-cased ("mfa-setup" -> "Mfa Setup").
func DisplayName(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// TrimSlashes removes leading and trailing slashes.
func TrimSlashes(s string) string {
	return strings.Trim(s, "/")
}

// JoinKey joins non-empty path segments with "/".
func JoinKey(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = TrimSlashes(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// ToBool converts a loosely typed flag ("1", "true", "yes", "on") to bool.
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Truncate cuts s to at most limit runes, marking a cut with a trailing "...".
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
