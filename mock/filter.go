package mock

import (
	"github.com/fwojciec/docset"
)

var _ docset.Filter = (*Filter)(nil)

// Filter is a mock implementation of docset.Filter.
type Filter struct {
	ApplyFn   func(html string, ctx *docset.FilterContext) (string, error)
	EntriesFn func(html string, ctx *docset.FilterContext) []docset.IndexEntry
}

func (f *Filter) Apply(html string, ctx *docset.FilterContext) (string, error) {
	if f.ApplyFn == nil {
		return html, nil
	}
	return f.ApplyFn(html, ctx)
}

func (f *Filter) Entries(html string, ctx *docset.FilterContext) []docset.IndexEntry {
	if f.EntriesFn == nil {
		return nil
	}
	return f.EntriesFn(html, ctx)
}

var _ docset.FilterRegistry = (*FilterRegistry)(nil)

// FilterRegistry is a mock implementation of docset.FilterRegistry.
type FilterRegistry struct {
	RegisterFn func(name string, factory docset.FilterFactory)
	CreateFn   func(name string) (docset.Filter, error)
	NamesFn    func() []string
}

func (r *FilterRegistry) Register(name string, factory docset.FilterFactory) {
	r.RegisterFn(name, factory)
}

func (r *FilterRegistry) Create(name string) (docset.Filter, error) {
	return r.CreateFn(name)
}

func (r *FilterRegistry) Names() []string {
	return r.NamesFn()
}
