package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
)

var _ docset.Filter = (*Entries)(nil)

// DefaultEntryType is the category assigned when no rule matches.
const DefaultEntryType = "Other"

// EntryRule maps a storage-path pattern to an entry type. Prefix matches
// the start of the path; Contains matches anywhere. A rule with both set
// requires both to match.
type EntryRule struct {
	Prefix   string
	Contains string
	Type     string
}

// Match reports whether the rule selects the path. An empty rule matches
// nothing.
func (r EntryRule) Match(path string) bool {
	if r.Prefix != "" && !strings.HasPrefix(path, r.Prefix) {
		return false
	}
	if r.Contains != "" && !strings.Contains(path, r.Contains) {
		return false
	}
	return r.Prefix != "" || r.Contains != ""
}

// Entries derives the page's primary index entry: a human-readable name
// from the first heading and a type category from the per-site rule table.
// When HeadingSelector is set it also emits one additional entry per
// matching anchored heading.
type Entries struct {
	// NameSelector locates the element whose text names the page.
	NameSelector string

	// Rules map paths to type categories, first match wins.
	Rules []EntryRule

	// FallbackType is used when no rule matches; DefaultEntryType when
	// empty.
	FallbackType string

	// HeadingSelector, when set, emits an additional entry for every
	// matching element that carries an id attribute.
	HeadingSelector string

	// SkipRoot suppresses the primary entry for the site's root page.
	SkipRoot bool
}

// NewEntries creates an Entries filter with the default configuration.
func NewEntries() *Entries {
	return &Entries{NameSelector: "h1"}
}

// Apply records the page title from the name selector and passes the HTML
// through unchanged.
func (f *Entries) Apply(html string, ctx *docset.FilterContext) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docset.Errorf(docset.EINVALID, "failed to parse HTML: %v", err)
	}

	selector := f.NameSelector
	if selector == "" {
		selector = "h1"
	}
	if title := strings.TrimSpace(doc.Find(selector).First().Text()); title != "" {
		ctx.Title = title
	}
	return html, nil
}

// Entries returns the page's primary entry plus any per-heading entries.
func (f *Entries) Entries(html string, ctx *docset.FilterContext) []docset.IndexEntry {
	var entries []docset.IndexEntry

	if !(f.SkipRoot && ctx.RootPage()) {
		entries = append(entries, docset.IndexEntry{
			Name: f.name(ctx),
			Path: ctx.Path,
			Type: f.entryType(ctx.Path),
		})
	}

	if f.HeadingSelector != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return entries
		}
		doc.Find(f.HeadingSelector).Each(func(_ int, sel *goquery.Selection) {
			id, ok := sel.Attr("id")
			if !ok || id == "" {
				return
			}
			name := strings.TrimSpace(sel.Text())
			if name == "" {
				return
			}
			entries = append(entries, docset.IndexEntry{
				Name: name,
				Path: ctx.Path + "#" + id,
				Type: f.entryType(ctx.Path),
			})
		})
	}

	return entries
}

// name prefers the extracted title and falls back to a readable form of
// the storage path.
func (f *Entries) name(ctx *docset.FilterContext) string {
	if ctx.Title != "" {
		return ctx.Title
	}
	name := strings.ReplaceAll(ctx.Path, "_", " ")
	name = strings.ReplaceAll(name, "/", ".")
	return strings.TrimSpace(name)
}

func (f *Entries) entryType(path string) string {
	for _, rule := range f.Rules {
		if rule.Match(path) {
			return rule.Type
		}
	}
	if f.FallbackType != "" {
		return f.FallbackType
	}
	return DefaultEntryType
}
