package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
)

var _ docset.Filter = (*URLNormalizer)(nil)

// URLNormalizer rewrites internal hyperlinks onto the docset's canonical
// path prefix so stored pages link to each other instead of back to the
// live site. External links are left untouched.
type URLNormalizer struct{}

// NewURLNormalizer creates a URLNormalizer.
func NewURLNormalizer() *URLNormalizer {
	return &URLNormalizer{}
}

// Apply rewrites a[href] targets within the site's base URL to
// /<slug>/<path> form, preserving fragments.
func (f *URLNormalizer) Apply(html string, ctx *docset.FilterContext) (string, error) {
	base, err := url.Parse(ctx.URL)
	if err != nil {
		return html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docset.Errorf(docset.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)

		abs := *resolved
		abs.Fragment = ""
		if !strings.HasPrefix(abs.String(), ctx.BaseURL) {
			return
		}

		path := canonicalPath(abs.String(), ctx.BaseURL)
		target := "/" + ctx.Slug + "/" + path
		if resolved.Fragment != "" {
			target += "#" + resolved.Fragment
		}
		sel.SetAttr("href", target)
	})

	out, err := doc.Find("body").Html()
	if err != nil || out == "" {
		return html, nil
	}
	return out, nil
}

// Entries is implemented to satisfy docset.Filter.
func (f *URLNormalizer) Entries(html string, ctx *docset.FilterContext) []docset.IndexEntry {
	return nil
}

// canonicalPath mirrors the policy's storage path derivation for a URL
// known to be inside the base.
func canonicalPath(rawURL, baseURL string) string {
	path := strings.TrimPrefix(strings.TrimPrefix(rawURL, baseURL), "/")
	if i := strings.IndexAny(path, "#?"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "index"
	}
	return path
}
