package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent on an existing directory.
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "result.json")

	require.NoError(t, WriteFile(path, []byte("{}"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	file, err := CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.True(t, FileExists(path))
}
