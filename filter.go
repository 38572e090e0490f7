package docset

// FilterContext is the per-page mutable state threaded through a filter
// pipeline. It is created fresh for each fetched page and discarded after
// the page is stored.
type FilterContext struct {
	// URL is the page's absolute URL; Path is its storage path relative to
	// the base URL.
	URL  string
	Path string

	BaseURL  string
	RootPath string

	Version string
	Release string
	Slug    string

	InitialPaths []string
	Attribution  string

	// HTML accumulates the transformed markup as filters run. Title and
	// Content are set by filters; a page with empty Content is not stored.
	HTML    string
	Title   string
	Content string

	// Entries collects additional index entries discovered by filters.
	Entries []IndexEntry
}

// RootPage reports whether the context's path refers to the site root.
func (c *FilterContext) RootPage() bool {
	return c.Path == "" || c.Path == "/" || c.Path == "index" || c.Path == c.RootPath
}

// InitialPage reports whether the context's path is one of the crawl seeds.
func (c *FilterContext) InitialPage() bool {
	if c.RootPage() {
		return true
	}
	for _, p := range c.InitialPaths {
		if c.Path == p {
			return true
		}
	}
	return false
}

// Filter is one stage of a content transformation pipeline.
//
// Apply consumes HTML and returns the transformed HTML, mutating the
// context as needed. Entries is called once per page after all Apply calls
// have run, with the final transformed HTML. Filters must tolerate being
// re-run on the same context fields.
type Filter interface {
	Apply(html string, ctx *FilterContext) (string, error)
	Entries(html string, ctx *FilterContext) []IndexEntry
}

// FilterFactory constructs a fresh filter instance.
type FilterFactory func() Filter

// FilterRegistry looks up filter constructors by name. Implementations must
// be safe for concurrent use. The registry is passed explicitly to whoever
// builds pipelines; it is never ambient package state.
type FilterRegistry interface {
	// Register adds a factory under a name, replacing any existing one.
	Register(name string, factory FilterFactory)

	// Create instantiates the named filter.
	// Returns ENOTFOUND if no factory is registered under the name.
	Create(name string) (Filter, error)

	// Names returns all registered filter names.
	Names() []string
}
