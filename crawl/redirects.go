package crawl

import (
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/docset"
)

// Redirects records observed URL redirections during a crawl and remaps
// already-collected page paths onto their canonical (post-redirect) paths.
// It is safe for concurrent use.
type Redirects struct {
	// PathFunc derives the page-map key for a URL. It defaults to the URL's
	// path component; the scraper overrides it with the policy's storage
	// path derivation so remapping matches how pages were keyed.
	PathFunc func(url string) string

	mu sync.Mutex
	m  map[string]string
}

// NewRedirects returns an empty redirect recorder.
func NewRedirects() *Redirects {
	return &Redirects{m: make(map[string]string)}
}

// Record remembers that from was redirected to to. Identical URLs are
// ignored.
func (r *Redirects) Record(from, to string) {
	if from == to {
		return
	}
	r.mu.Lock()
	r.m[from] = to
	r.mu.Unlock()
}

// Len returns the number of recorded redirections.
func (r *Redirects) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.m)
}

// Apply rewrites the page database so that content collected under a
// pre-redirect path is re-keyed to the canonical path. Path comparison on
// the source side is case-insensitive; on collision the redirected content
// wins. Apply must run once, after the crawl completes, because a redirect
// discovered late can affect an already-stored page.
func (r *Redirects) Apply(pages docset.PageDB) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pathFn := r.PathFunc
	if pathFn == nil {
		pathFn = urlPath
	}

	byLower := make(map[string]string, len(r.m))
	for from, to := range r.m {
		fromPath := pathFn(from)
		toPath := pathFn(to)
		if !strings.EqualFold(fromPath, toPath) {
			byLower[strings.ToLower(fromPath)] = toPath
		}
	}
	if len(byLower) == 0 {
		return
	}

	// Collect the moves from a snapshot of the page keys before mutating
	// the map, so a key inserted for one hop of a redirect chain is never
	// picked up again as a source.
	type move struct {
		to      string
		content string
	}
	var moves []move
	var sources []string
	for _, path := range pages.Paths() {
		if toPath, ok := byLower[strings.ToLower(path)]; ok {
			moves = append(moves, move{to: toPath, content: pages[path]})
			sources = append(sources, path)
		}
	}

	for _, path := range sources {
		delete(pages, path)
	}
	for _, m := range moves {
		pages[m.to] = m.content
	}
}

// urlPath extracts the path component of a URL, falling back to the raw
// string when it does not parse.
func urlPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Path
}
