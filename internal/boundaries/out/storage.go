package out

// FileStore defines the contract for the host config file store.
// Paths are slash separated and relative to the store root.
type FileStore interface {
	// List returns the names of entries in dir matching a glob pattern.
	List(dir, pattern string) ([]string, error)

	// Read returns the full content of a file.
	Read(path string) ([]byte, error)

	// Write replaces the content of a file, creating it if needed.
	Write(path string, data []byte) error

	// Rename moves a file, replacing any existing destination.
	Rename(from, to string) error

	// Delete removes a file.
	Delete(path string) error

	// Exists reports whether a file is present.
	Exists(path string) (bool, error)
}
