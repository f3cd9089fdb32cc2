package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/adapters/cas"
	"go.trai.ch/cxpack/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "packages.json"))
	require.NoError(t, err)

	record := domain.PackageRecord{
		Package:   "catalog.zip",
		Path:      "/ws/dist/catalog.zip",
		Digest:    "00000000000000ff",
		Items:     []string{"Home", "Reports"},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, store.Put(record))

	got, err := store.Get("catalog.zip")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)

	missing, err := store.Get("other.zip")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "packages.json")

	store, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.PackageRecord{Package: "a.zip", Digest: "1"}))
	require.NoError(t, store.Put(domain.PackageRecord{Package: "a.zip", Digest: "2"}))

	reopened, err := cas.NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Get("a.zip")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2", got.Digest)
	assert.NoFileExists(t, path+".tmp")
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cas.NewStore(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreReadFailed)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := cas.NewStore(path)
	require.NoError(t, err)
	got, err := store.Get("a.zip")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOpener_Open(t *testing.T) {
	root := t.TempDir()

	store, err := cas.Opener{}.Open(root)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.PackageRecord{Package: "a.zip"}))

	assert.FileExists(t, filepath.Join(root, cas.StateDir, cas.HistoryFileName))
}
