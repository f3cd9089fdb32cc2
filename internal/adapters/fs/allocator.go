package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceAllocator = (*Allocator)(nil)

// Allocator creates uniquely named staging directories.
// Uniqueness relies on os.Mkdir failing for existing directories, so concurrent
// callers never share a directory.
type Allocator struct{}

// NewAllocator creates a new Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate creates parentDir/baseName.N for the lowest N that does not exist yet.
func (a *Allocator) Allocate(parentDir, baseName string) (string, error) {
	parent, err := filepath.Abs(parentDir)
	if err != nil {
		return "", domain.Tag(domain.ErrWorkspaceAllocation, zerr.With(zerr.Wrap(err, "failed to resolve parent directory"), "path", parentDir))
	}

	for i := 0; ; i++ {
		dir := filepath.Join(parent, baseName+"."+strconv.Itoa(i))

		err := os.Mkdir(dir, 0o750)
		if err == nil {
			return dir, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return "", domain.Tag(domain.ErrWorkspaceAllocation, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir))
	}
}
