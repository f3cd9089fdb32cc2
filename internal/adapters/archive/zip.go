// Package archive implements zip archiving of staged directories.
package archive

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Archiver      = (*Zip)(nil)
	_ ports.ArchiveReader = (*Zip)(nil)
)

// Zip writes and reads deflate-compressed zip archives.
type Zip struct{}

// NewZip creates a new Zip archiver.
func NewZip() *Zip {
	return &Zip{}
}

// Archive writes every file below sourceDir into destFile using slash-separated
// paths relative to sourceDir. The archive is written to a sibling temporary file
// and renamed into place, so destFile is either complete or untouched.
func (z *Zip) Archive(sourceDir, destFile string) (err error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(zerr.Wrap(err, "failed to stat source directory"), "path", sourceDir))
	}
	if !info.IsDir() {
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(zerr.New("source is not a directory"), "path", sourceDir))
	}

	if err := os.MkdirAll(filepath.Dir(destFile), 0o750); err != nil {
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", destFile))
	}

	tmp, err := os.CreateTemp(filepath.Dir(destFile), "."+filepath.Base(destFile)+"-*.partial")
	if err != nil {
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(zerr.Wrap(err, "failed to create archive file"), "path", destFile))
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	zw := zip.NewWriter(tmp)
	if err = addTree(zw, sourceDir); err != nil {
		_ = zw.Close()
		_ = tmp.Close()
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(err, "source", sourceDir))
	}
	if err = zw.Close(); err != nil {
		_ = tmp.Close()
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(zerr.Wrap(err, "failed to finalize archive"), "path", destFile))
	}
	if err = tmp.Close(); err != nil {
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(zerr.Wrap(err, "failed to close archive file"), "path", destFile))
	}
	if err = os.Rename(tmpName, destFile); err != nil {
		return domain.Tag(domain.ErrArchiveFailed, zerr.With(zerr.Wrap(err, "failed to move archive into place"), "path", destFile))
	}
	return nil
}

func addTree(zw *zip.Writer, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk source directory"), "path", path)
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}

		info, err := d.Info()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
		}

		return addFile(zw, path, filepath.ToSlash(rel), info)
	})
}

func addFile(zw *zip.Writer, path, name string, info fs.FileInfo) error {
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create zip header"), "path", path)
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create zip entry"), "entry", name)
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from walking the source directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write zip entry"), "entry", name)
	}
	return nil
}

// List returns the sorted entry names of an archive.
func (z *Zip) List(archive string) ([]string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archive)
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names, nil
}

// ReadFile returns the content of a single archive entry.
func (z *Zip) ReadFile(archive, name string) ([]byte, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archive)
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	f, err := r.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Tag(domain.ErrResourceNotFound, zerr.With(zerr.New("archive entry not found"), "entry", name))
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open archive entry"), "entry", name)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read archive entry"), "entry", name)
	}
	return data, nil
}
