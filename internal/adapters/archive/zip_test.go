package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/adapters/archive"
	"go.trai.ch/cxpack/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestZip_RoundTrip(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "hi")
	writeFile(t, filepath.Join(src, "sub", "b.json"), "{}")

	dest := filepath.Join(t.TempDir(), "out", "item.zip")
	z := archive.NewZip()
	require.NoError(t, z.Archive(src, dest))

	names, err := z.List(dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "sub/b.json"}, names)

	data, err := z.ReadFile(dest, "sub/b.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = z.ReadFile(dest, "missing.txt")
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestZip_Archive_EmptyDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "empty.zip")
	z := archive.NewZip()
	require.NoError(t, z.Archive(t.TempDir(), dest))

	names, err := z.List(dest)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestZip_Archive_MissingSource(t *testing.T) {
	destDir := t.TempDir()
	dest := filepath.Join(destDir, "item.zip")

	err := archive.NewZip().Archive(filepath.Join(destDir, "missing"), dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArchiveFailed)
	assert.NoFileExists(t, dest)

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no partial output should remain")
}

func TestZip_Archive_ReplacesExisting(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "new.txt"), "new")

	dest := filepath.Join(t.TempDir(), "item.zip")
	writeFile(t, dest, "not a zip")

	z := archive.NewZip()
	require.NoError(t, z.Archive(src, dest))

	names, err := z.List(dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.txt"}, names)
}
