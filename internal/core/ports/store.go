package ports

import "go.trai.ch/cxpack/internal/core/domain"

// PackageStore defines the interface for storing and retrieving package history.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PackageStore interface {
	// Get retrieves the record of a package file name.
	// Returns nil, nil if not found.
	Get(packageName string) (*domain.PackageRecord, error)

	// Put stores the record.
	Put(record domain.PackageRecord) error
}

// PackageStoreOpener opens the package history of a workspace.
type PackageStoreOpener interface {
	Open(workspaceRoot string) (PackageStore, error)
}
