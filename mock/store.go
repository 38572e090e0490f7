package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.Store = (*Store)(nil)

// Store is a mock implementation of docset.Store.
type Store struct {
	ReadFileFn  func(ctx context.Context, path string) ([]byte, error)
	WriteFileFn func(ctx context.Context, path string, data []byte) error
	ExistsFn    func(ctx context.Context, path string) bool
	SizeFn      func(ctx context.Context, path string) (int64, error)
}

func (s *Store) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return s.ReadFileFn(ctx, path)
}

func (s *Store) WriteFile(ctx context.Context, path string, data []byte) error {
	return s.WriteFileFn(ctx, path, data)
}

func (s *Store) Exists(ctx context.Context, path string) bool {
	return s.ExistsFn(ctx, path)
}

func (s *Store) Size(ctx context.Context, path string) (int64, error) {
	return s.SizeFn(ctx, path)
}
