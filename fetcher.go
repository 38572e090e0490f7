package docset

import (
	"context"
	"strings"
)

// FetchResult is the outcome of retrieving one URL. EffectiveURL is the
// final URL after the transport followed any redirects; it equals the
// requested URL when no redirect occurred.
type FetchResult struct {
	StatusCode   int
	ContentType  string
	Body         string
	EffectiveURL string
}

// OK reports whether the response status is in the 2xx range.
func (r *FetchResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// HTML reports whether the response carries an HTML content type. A missing
// content type is treated as HTML.
func (r *FetchResult) HTML() bool {
	return r.ContentType == "" || strings.Contains(r.ContentType, "text/html")
}

// Fetcher retrieves documents over the network. Implementations follow
// redirects transparently and report the effective URL in the result.
type Fetcher interface {
	// Fetch retrieves the URL. The context controls timeout and
	// cancellation. Transport failures return an error; non-2xx statuses
	// return a result, not an error.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases transport resources.
	Close() error
}
