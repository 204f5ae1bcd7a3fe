package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"mfa-setup":          "Mfa Setup",
		"onboarding":         "Onboarding",
		"tls-cert-lifecycle": "Tls Cert Lifecycle",
		"already-Upper":      "Already Upper",
		"double--hyphen":     "Double  Hyphen",
		"":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayName(in), in)
	}
}

func TestJoinKey(t *testing.T) {
	assert.Equal(t, "use-cases/tls/a.md", JoinKey("/use-cases/", "tls", "a.md"))
	assert.Equal(t, "tls/a.md", JoinKey("", "tls", "a.md"))
	assert.Equal(t, "manifest.json", JoinKey("", "manifest.json"))
}

func TestToBool(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes ", "on"} {
		assert.True(t, ToBool(v), v)
	}
	for _, v := range []string{"", "0", "false", "nope"} {
		assert.False(t, ToBool(v), v)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abcd...", Truncate("abcdefghij", 7))
	assert.Equal(t, "ééé...", Truncate("éééééééé", 6))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "", Truncate("abc", 0))
}
