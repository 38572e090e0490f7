// Package goquery implements the HTML-touching parts of the crawl engine:
// the built-in content filters, link harvesting, and the filter registry.
package goquery

import (
	"sort"
	"sync"

	"github.com/fwojciec/docset"
)

var _ docset.FilterRegistry = (*Registry)(nil)

// Registry is a lock-guarded mapping from filter names to constructors. It
// is passed explicitly to whoever assembles pipelines rather than living as
// package-global state.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]docset.FilterFactory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]docset.FilterFactory)}
}

// Register adds a factory under a name, replacing any existing one.
func (r *Registry) Register(name string, factory docset.FilterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create instantiates the named filter.
// Returns ENOTFOUND if no factory is registered under the name.
func (r *Registry) Create(name string) (docset.Filter, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, docset.Errorf(docset.ENOTFOUND, "filter %q not registered", name)
	}
	return factory(), nil
}

// Names returns all registered filter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterBuiltins registers the built-in filters under their canonical
// names.
func RegisterBuiltins(r docset.FilterRegistry) {
	r.Register("clean_html", func() docset.Filter { return NewCleanHTML() })
	r.Register("normalize_urls", func() docset.Filter { return NewURLNormalizer() })
	r.Register("entries", func() docset.Filter { return NewEntries() })
	r.Register("content", func() docset.Filter { return NewContent() })
}
