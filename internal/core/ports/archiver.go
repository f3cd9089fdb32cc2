package ports

// Archiver compresses directories into archive files.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Archive writes the recursive contents of sourceDir to destFile.
	// Entry names are relative to sourceDir. An existing destFile is replaced.
	Archive(sourceDir, destFile string) error
}

// ArchiveReader reads entries from archive files.
type ArchiveReader interface {
	// List returns the names of the file entries in the archive.
	List(archive string) ([]string, error)
	// ReadFile returns the content of a single entry.
	ReadFile(archive, name string) ([]byte, error)
}
