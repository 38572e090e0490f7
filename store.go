package docset

import "context"

// Store is the byte storage used to persist serialized docset documents.
type Store interface {
	// ReadFile returns the contents of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) bool

	// Size returns the size in bytes of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	Size(ctx context.Context, path string) (int64, error)
}
