// Package filesystem implements the file store port on top of go-billy.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const filePerm = 0o644

// Store implements out.FileStore over a billy filesystem.
type Store struct {
	fs billy.Filesystem
}

// NewStore wraps an existing billy filesystem.
func NewStore(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// NewOSStore roots the store at a directory on the host.
func NewOSStore(rootDir string) (*Store, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store root %s: %w", rootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store root %s is not a directory", rootDir)
	}

	log.Debug("File store initialized", "root", rootDir)
	return NewStore(osfs.New(rootDir)), nil
}

// NewMemoryStore returns a store backed by an in-memory filesystem.
func NewMemoryStore() *Store {
	return NewStore(memfs.New())
}

// Filesystem exposes the underlying billy filesystem.
func (s *Store) Filesystem() billy.Filesystem {
	return s.fs
}

// List returns the base names of entries in dir that match pattern.
func (s *Store) List(dir, pattern string) ([]string, error) {
	info, err := s.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to list %s: not a directory", dir)
	}

	matches, err := util.Glob(s.fs, s.fs.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s with %q: %w", dir, pattern, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, path.Base(m))
	}
	return names, nil
}

// Read returns the content of a file.
func (s *Store) Read(name string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Write replaces the content of a file.
func (s *Store) Write(name string, data []byte) error {
	if err := util.WriteFile(s.fs, name, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Rename moves a file.
func (s *Store) Rename(from, to string) error {
	if err := s.fs.Rename(from, to); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", from, to, err)
	}
	return nil
}

// Delete removes a file.
func (s *Store) Delete(name string) error {
	if err := s.fs.Remove(name); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// Exists reports whether name is present.
func (s *Store) Exists(name string) (bool, error) {
	_, err := s.fs.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", name, err)
}

// MkdirAll creates dir and any missing parents.
func (s *Store) MkdirAll(dir string) error {
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
