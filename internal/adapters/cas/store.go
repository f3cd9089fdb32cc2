// Package cas implements the package history store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// StateDir is the workspace directory holding cxpack state.
	StateDir = ".cxpack"
	// HistoryFileName is the package history file inside StateDir.
	HistoryFileName = "packages.json"
)

var (
	_ ports.PackageStore       = (*Store)(nil)
	_ ports.PackageStoreOpener = Opener{}
)

// Store implements ports.PackageStore using a flat JSON file keyed by package file name.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.PackageRecord
}

// NewStore creates a new PackageStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.PackageRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return domain.Tag(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "failed to read package history"), "path", s.path))
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return domain.Tag(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "failed to unmarshal package history"), "path", s.path))
	}

	return nil
}

// save writes the cache to disk. Callers must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return domain.Tag(domain.ErrStoreWriteFailed, zerr.Wrap(err, "failed to marshal package history"))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return domain.Tag(domain.ErrStoreWriteFailed, zerr.Wrap(err, "failed to create directory for package history"))
	}

	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return domain.Tag(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to write package history"), "path", tmp))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return domain.Tag(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to replace package history"), "path", s.path))
	}

	return nil
}

// Get retrieves the record of a package file name.
func (s *Store) Get(packageName string) (*domain.PackageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[packageName]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record, replacing any previous record of the same package.
func (s *Store) Put(record domain.PackageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[record.Package] = record
	return s.save()
}

// Opener opens the history file of a workspace.
type Opener struct{}

// Open returns the store at <workspaceRoot>/.cxpack/packages.json.
func (Opener) Open(workspaceRoot string) (ports.PackageStore, error) {
	return NewStore(filepath.Join(workspaceRoot, StateDir, HistoryFileName))
}
