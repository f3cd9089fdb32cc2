package ports

// TreeCopier copies files between directories.
type TreeCopier interface {
	// CopyTree copies every file below src into dst, keeping relative paths.
	// Files for which skip returns true are left out.
	CopyTree(src, dst string, skip func(path string) bool) error
	// CopyFile copies a single file, creating or truncating dst.
	CopyFile(src, dst string) error
}

// PathVerifier checks that declared inputs exist.
//
//go:generate go run go.uber.org/mock/mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type PathVerifier interface {
	// MissingPaths returns the subset of paths that do not exist, in input order.
	MissingPaths(paths ...string) ([]string, error)
}

// LocaleLayout locates a locale's built index file.
type LocaleLayout interface {
	// IndexFile returns the index file of locale below builtSources.
	IndexFile(builtSources, locale, indexFileName string) string
}
