package props

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytes(t *testing.T) {
	m, err := LoadBytes([]byte("git.branch=main\ngit.commit.id=abc123\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"git.branch", "git.commit.id"}, m.Keys())
	got, ok := m.Get("git.commit.id")
	require.True(t, ok)
	assert.Equal(t, "abc123", got)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.properties")

	m := NewMap()
	m.Set("version", "1.0.0-SNAPSHOT")
	m.Set("git.branch", "feature/x")
	require.NoError(t, m.WriteFile(path, 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Keys(), loaded.Keys())
	for _, key := range m.Keys() {
		want, _ := m.Get(key)
		got, _ := loaded.Get(key)
		assert.Equal(t, want, got, "key %q", key)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.properties"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading properties file")
}
