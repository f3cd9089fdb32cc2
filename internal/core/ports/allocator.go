package ports

// WorkspaceAllocator creates fresh staging directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=allocator.go -destination=mocks/mock_allocator.go -package=mocks
type WorkspaceAllocator interface {
	// Allocate creates a directory under parentDir that did not exist before,
	// named baseName.N for the lowest free N, and returns its absolute path.
	// It is safe to call concurrently for the same parentDir and baseName.
	Allocate(parentDir, baseName string) (string, error)
}
