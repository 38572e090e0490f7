package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/goquery"
)

// builtinSites returns the built-in site definitions keyed by slug. The
// divergent entry-type tables live here as configuration; the crawl engine
// treats every site identically.
func builtinSites() map[string]*docset.Site {
	return map[string]*docset.Site{
		"html": {
			Name:        "HTML",
			Slug:        "html",
			Type:        "mdn",
			Release:     "2026.8",
			Attribution: "© 2005–2026 MDN contributors. Licensed under CC BY-SA 2.5.",
			Links: map[string]string{
				"home": "https://developer.mozilla.org/en-US/docs/Web/HTML",
			},
			Policy: docset.Policy{
				BaseURL: "https://developer.mozilla.org/en-US/docs/Web/HTML",
				SkipPaths: []string{
					"contributors.txt",
				},
				SkipPatterns: []string{
					`/contributors\.txt$`,
				},
			},
			Filters: []string{"clean_html", "normalize_urls", "entries:html", "content"},
		},
		"javascript": {
			Name:        "JavaScript",
			Slug:        "javascript",
			Type:        "mdn",
			Release:     "2026.8",
			Attribution: "© 2005–2026 MDN contributors. Licensed under CC BY-SA 2.5.",
			Links: map[string]string{
				"home": "https://developer.mozilla.org/en-US/docs/Web/JavaScript",
			},
			Policy: docset.Policy{
				BaseURL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript",
				SkipPaths: []string{
					"contributors.txt",
				},
				SkipPatterns: []string{
					`/contributors\.txt$`,
				},
			},
			Filters: []string{"clean_html", "normalize_urls", "entries:javascript", "content"},
		},
		"babel": {
			Name:        "Babel",
			Slug:        "babel",
			Type:        "simple",
			Version:     "7",
			Release:     "7.28",
			Attribution: "© 2014–present Sebastian McKenzie. Licensed under the MIT License.",
			Links: map[string]string{
				"home": "https://babeljs.io/",
				"code": "https://github.com/babel/babel",
			},
			Policy: docset.Policy{
				BaseURL:      "https://babeljs.io/docs",
				InitialPaths: []string{"/"},
				SkipPatterns: []string{
					`^v\d`, // versioned snapshots of the handbook
				},
			},
			Filters: []string{"clean_html", "normalize_urls", "entries:babel", "content"},
		},
	}
}

// builtinSite looks up one built-in site definition.
func builtinSite(slug string) (*docset.Site, bool) {
	site, ok := builtinSites()[slug]
	return site, ok
}

// siteNames returns the built-in slugs in sorted order.
func siteNames() []string {
	sites := builtinSites()
	names := make([]string, 0, len(sites))
	for name := range sites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// registerSiteFilters registers the per-site entry filters. Each closes over
// its site's type rule table.
func registerSiteFilters(r docset.FilterRegistry) {
	r.Register("entries:html", func() docset.Filter {
		return &goquery.Entries{
			NameSelector: "h1",
			Rules: []goquery.EntryRule{
				{Prefix: "element", Type: "Elements"},
				{Prefix: "global_attributes", Type: "Attributes"},
				{Prefix: "attributes", Type: "Attributes"},
				{Prefix: "guides", Type: "Guides"},
				{Prefix: "reference", Type: "Reference"},
			},
			FallbackType: "Guides",
		}
	})
	r.Register("entries:javascript", func() docset.Filter {
		return &goquery.Entries{
			NameSelector: "h1",
			Rules: []goquery.EntryRule{
				{Prefix: "reference/global_objects", Type: "Objects"},
				{Prefix: "reference/operators", Type: "Operators"},
				{Prefix: "reference/statements", Type: "Statements"},
				{Prefix: "reference/functions", Type: "Functions"},
				{Prefix: "reference/classes", Type: "Classes"},
				{Prefix: "reference/errors", Type: "Errors"},
				{Prefix: "guide", Type: "Guides"},
			},
			FallbackType: "Guides",
		}
	})
	r.Register("entries:babel", func() docset.Filter {
		return &goquery.Entries{
			NameSelector: "h1",
			Rules: []goquery.EntryRule{
				{Prefix: "babel-plugin", Type: "Plugins"},
				{Prefix: "babel-preset", Type: "Presets"},
				{Contains: "plugin", Type: "Plugins"},
				{Contains: "preset", Type: "Presets"},
			},
			FallbackType: "Guides",
		}
	})
}

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	sites := builtinSites()
	for _, slug := range siteNames() {
		site := sites[slug]
		fmt.Fprintf(deps.Stdout, "%-16s %-24s %s\n", slug, site.FullName(), site.Policy.BaseURL)
	}
	return nil
}

// pageSourceURL reconstructs the live URL a stored page came from, used in
// export frontmatter. Best effort only.
func pageSourceURL(site *docset.Site, path string) string {
	if site == nil {
		return ""
	}
	base := strings.TrimSuffix(site.Policy.BaseURL, "/")
	if path == "index" {
		return base
	}
	return base + "/" + path
}
