package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TreeCopier = (*Copier)(nil)

// Copier copies files and directory trees.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyTree copies every file below src into dst, keeping relative paths.
// Symlinked files and directories are copied as their targets. skip receives
// paths below src, even for files reached through a symlinked directory.
func (c *Copier) CopyTree(src, dst string, skip func(path string) bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return domain.Tag(domain.ErrResourceNotFound, zerr.With(zerr.Wrap(err, "failed to stat source directory"), "path", src))
	}
	if !info.IsDir() {
		return domain.Tag(domain.ErrResourceNotFound, zerr.With(zerr.New("source is not a directory"), "path", src))
	}

	resolved, err := filepath.EvalSymlinks(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "path", src)
	}
	return c.copyTree(src, resolved, dst, skip, map[string]bool{resolved: true})
}

// copyTree walks walkRoot, the resolved form of src. active holds the
// resolved directories currently being copied.
func (c *Copier) copyTree(src, walkRoot, dst string, skip func(path string) bool, active map[string]bool) error {
	for path, walkErr := range c.walker.WalkFiles(walkRoot) {
		if walkErr != nil {
			return zerr.With(zerr.Wrap(walkErr, "failed to walk source directory"), "path", src)
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}
		logical := filepath.Join(src, rel)
		if skip != nil && skip(logical) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", logical)
		}
		if !info.IsDir() {
			if err := c.CopyFile(path, filepath.Join(dst, rel)); err != nil {
				return err
			}
			continue
		}

		// A symlink to a directory.
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve symlink"), "path", logical)
		}
		if active[target] {
			return zerr.With(zerr.With(zerr.New("symlink cycle in source directory"), "path", logical), "target", target)
		}
		active[target] = true
		err = c.copyTree(logical, target, filepath.Join(dst, rel), skip, active)
		delete(active, target)
		if err != nil {
			return err
		}
	}
	return nil
}

// CopyFile copies src to dst, creating dst's parent directories.
func (c *Copier) CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Tag(domain.ErrResourceNotFound, zerr.With(zerr.Wrap(err, "failed to open file"), "path", src))
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}
	return nil
}
