package goquery

import (
	stdhtml "html"

	"github.com/fwojciec/docset"
)

var _ docset.Filter = (*Content)(nil)

// Content is the terminal pipeline stage: it promotes the transformed HTML
// to the page's final content, appending the site's attribution notice when
// one is configured. Pages never reaching this stage store nothing.
type Content struct{}

// NewContent creates a Content filter.
func NewContent() *Content {
	return &Content{}
}

// Apply sets the context's final content and passes the HTML through
// unchanged. Re-running on the same context produces the same content.
func (f *Content) Apply(html string, ctx *docset.FilterContext) (string, error) {
	content := html
	if ctx.Attribution != "" {
		content += "\n<div class=\"_attribution\"><p>" +
			stdhtml.EscapeString(ctx.Attribution) + "</p></div>"
	}
	ctx.Content = content
	return html, nil
}

// Entries is implemented to satisfy docset.Filter.
func (f *Content) Entries(html string, ctx *docset.FilterContext) []docset.IndexEntry {
	return nil
}
