package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeUGC(t *testing.T) {
	assert.Equal(t, "hello", SanitizeUGC("hello"))
	assert.Equal(t, "hello", SanitizeUGC(`hello<script>alert(1)</script>`))
	assert.NotContains(t, SanitizeUGC(`<img src=x onerror=alert(1)>`), "onerror")
	// unescaped output, not entity-encoded
	assert.Equal(t, "a & b", SanitizeUGC("a & b"))
}

func TestParseTime(t *testing.T) {
	parsed, err := ParseTime("2024-05-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), parsed)

	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}

// TestAvatar verifies the URL is stable per seed and safe for odd names.
func TestAvatar(t *testing.T) {
	assert.Equal(t, Avatar("Alice"), Avatar("Alice"))
	assert.NotEqual(t, Avatar("Alice"), Avatar("Bob"))
	assert.NotContains(t, Avatar("two words/slash"), " ")
}
