package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathVerifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// MissingPaths returns the paths that do not exist.
// Any stat failure other than non-existence is returned as an error.
func (v *Verifier) MissingPaths(paths ...string) ([]string, error) {
	var missing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, path)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
		}
	}
	return missing, nil
}
