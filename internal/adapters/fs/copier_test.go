package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/adapters/fs"
	"go.trai.ch/cxpack/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCopier_CopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "index.html"), "<html></html>")
	writeFile(t, filepath.Join(src, "main.js"), "console.log(1)")
	writeFile(t, filepath.Join(src, "assets", "logo.svg"), "<svg/>")

	copier := fs.NewCopier(fs.NewWalker())
	err := copier.CopyTree(src, dst, func(path string) bool {
		return filepath.Base(path) == "index.html"
	})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dst, "index.html"))
	content, err := os.ReadFile(filepath.Join(dst, "main.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(content))
	assert.FileExists(t, filepath.Join(dst, "assets", "logo.svg"))
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestCopier_CopyTree_FollowsSymlinkedDirectories(t *testing.T) {
	shared := t.TempDir()
	writeFile(t, filepath.Join(shared, "logo.svg"), "<svg/>")
	writeFile(t, filepath.Join(shared, "fonts", "a.woff"), "woff")

	src := t.TempDir()
	writeFile(t, filepath.Join(src, "main.js"), "console.log(1)")
	symlinkOrSkip(t, shared, filepath.Join(src, "assets"))
	symlinkOrSkip(t, filepath.Join(src, "main.js"), filepath.Join(src, "alias.js"))

	var skipped []string
	dst := filepath.Join(t.TempDir(), "out")
	copier := fs.NewCopier(fs.NewWalker())
	err := copier.CopyTree(src, dst, func(path string) bool {
		if filepath.Base(path) == "a.woff" {
			skipped = append(skipped, path)
			return true
		}
		return false
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dst, "assets", "logo.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))

	info, err := os.Lstat(filepath.Join(dst, "assets"))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "symlinked directory is copied as a real directory")

	alias, err := os.ReadFile(filepath.Join(dst, "alias.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(alias))

	assert.Equal(t, []string{filepath.Join(src, "assets", "fonts", "a.woff")}, skipped)
	assert.NoFileExists(t, filepath.Join(dst, "assets", "fonts", "a.woff"))
}

func TestCopier_CopyTree_SymlinkCycle(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "nested", "main.js"), "x")
	symlinkOrSkip(t, src, filepath.Join(src, "nested", "loop"))

	copier := fs.NewCopier(fs.NewWalker())
	err := copier.CopyTree(src, filepath.Join(t.TempDir(), "out"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symlink cycle")
}

func TestCopier_CopyTree_MissingSource(t *testing.T) {
	copier := fs.NewCopier(fs.NewWalker())

	err := copier.CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestCopier_CopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "icon.png")
	writeFile(t, src, "png")

	copier := fs.NewCopier(fs.NewWalker())
	dst := filepath.Join(tmpDir, "nested", "icon.png")
	require.NoError(t, copier.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "png", string(content))

	err = copier.CopyFile(filepath.Join(tmpDir, "missing.png"), dst)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}
