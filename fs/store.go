// Package fs provides file-based storage for docsets.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docset"
)

// Ensure FileStore implements docset.Store at compile time.
var _ docset.Store = (*FileStore)(nil)

// FileStore implements docset.Store rooted at a directory. Paths are
// interpreted relative to the root.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the store's root directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// ReadFile returns the contents of the file at path.
func (s *FileStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, docset.Errorf(docset.ENOTFOUND, "file not found: %s", path)
		}
		return nil, err
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func (s *FileStore) WriteFile(ctx context.Context, path string, data []byte) error {
	fullPath := filepath.Join(s.dir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// Exists reports whether a file exists at path.
func (s *FileStore) Exists(ctx context.Context, path string) bool {
	_, err := os.Stat(filepath.Join(s.dir, path))
	return err == nil
}

// Size returns the size in bytes of the file at path.
func (s *FileStore) Size(ctx context.Context, path string) (int64, error) {
	info, err := os.Stat(filepath.Join(s.dir, path))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, docset.Errorf(docset.ENOTFOUND, "file not found: %s", path)
		}
		return 0, err
	}
	return info.Size(), nil
}
