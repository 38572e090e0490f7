package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.DocService = (*DocService)(nil)

// DocService is a mock implementation of docset.DocService.
type DocService struct {
	SaveDocFn       func(ctx context.Context, doc *docset.Doc) error
	FindDocBySlugFn func(ctx context.Context, slug string) (*docset.Doc, error)
	FindDocsFn      func(ctx context.Context) ([]*docset.Doc, error)
	DeleteDocFn     func(ctx context.Context, slug string) error
}

func (s *DocService) SaveDoc(ctx context.Context, doc *docset.Doc) error {
	return s.SaveDocFn(ctx, doc)
}

func (s *DocService) FindDocBySlug(ctx context.Context, slug string) (*docset.Doc, error) {
	return s.FindDocBySlugFn(ctx, slug)
}

func (s *DocService) FindDocs(ctx context.Context) ([]*docset.Doc, error) {
	return s.FindDocsFn(ctx)
}

func (s *DocService) DeleteDoc(ctx context.Context, slug string) error {
	return s.DeleteDocFn(ctx, slug)
}
