package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends under test share one contract; sqlkv is exercised against a real
// database elsewhere.
func testBackends(t *testing.T) map[string]Store {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)
	return map[string]Store{
		"memory": NewMemory(),
		"dir":    dir,
	}
}

// TestGetMissingKey verifies a missing key is (nil, false, nil), not an error.
func TestGetMissingKey(t *testing.T) {
	for name, s := range testBackends(t) {
		blob, ok, err := s.Get("users")
		require.NoError(t, err, name)
		assert.False(t, ok, name)
		assert.Nil(t, blob, name)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	for name, s := range testBackends(t) {
		require.NoError(t, s.Set("posts", []byte(`[{"id":"1"}]`)), name)

		blob, ok, err := s.Get("posts")
		require.NoError(t, err, name)
		require.True(t, ok, name)
		assert.Equal(t, `[{"id":"1"}]`, string(blob), name)
	}
}

// TestSetOverwrites verifies writes replace the named blob wholesale.
func TestSetOverwrites(t *testing.T) {
	for name, s := range testBackends(t) {
		require.NoError(t, s.Set("posts", []byte(`["old"]`)), name)
		require.NoError(t, s.Set("posts", []byte(`["new"]`)), name)

		blob, ok, err := s.Get("posts")
		require.NoError(t, err, name)
		require.True(t, ok, name)
		assert.Equal(t, `["new"]`, string(blob), name)
	}
}

func TestDelete(t *testing.T) {
	for name, s := range testBackends(t) {
		require.NoError(t, s.Set("currentUser", []byte(`{}`)), name)
		require.NoError(t, s.Delete("currentUser"), name)

		_, ok, err := s.Get("currentUser")
		require.NoError(t, err, name)
		assert.False(t, ok, name)

		// deleting a missing key is not an error
		assert.NoError(t, s.Delete("currentUser"), name)
	}
}

// TestDirSurvivesReopen verifies the dir backend actually persists.
func TestDirSurvivesReopen(t *testing.T) {
	path := t.TempDir()

	first, err := NewDir(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("users", []byte(`[]`)))

	second, err := NewDir(path)
	require.NoError(t, err)
	blob, ok, err := second.Get("users")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(blob))
}

// TestDirLeavesNoTempFiles verifies the rename-into-place write cleans up.
func TestDirLeavesNoTempFiles(t *testing.T) {
	path := t.TempDir()

	dir, err := NewDir(path)
	require.NoError(t, err)
	require.NoError(t, dir.Set("comments", []byte(`[]`)))

	entries, err := os.ReadDir(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "comments.json", filepath.Base(entries[0].Name()))
}

// TestMemoryCopiesBlobs verifies callers can't mutate stored state through
// the slices they hand in or get back.
func TestMemoryCopiesBlobs(t *testing.T) {
	m := NewMemory()
	in := []byte(`["a"]`)
	require.NoError(t, m.Set("posts", in))
	in[2] = 'z'

	out, ok, err := m.Get("posts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["a"]`, string(out))

	out[2] = 'z'
	again, _, err := m.Get("posts")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(again))
}
