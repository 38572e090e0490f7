package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/crawl"
	"github.com/fwojciec/docset/fs"
	"github.com/fwojciec/docset/goquery"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	site, ok := builtinSite(c.Slug)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown site %q. Available: %s\n",
			c.Slug, strings.Join(siteNames(), ", "))
		return docset.Errorf(docset.ENOTFOUND, "unknown site %q", c.Slug)
	}

	// Resolve the site's filter pipeline.
	var filters []docset.Filter
	for _, name := range site.Filters {
		filter, err := deps.Registry.Create(name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
			return err
		}
		filters = append(filters, filter)
	}

	// Optionally seed the frontier from the site's sitemap.
	var seeds []string
	if c.Sitemap {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, site.Policy.BaseURL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: sitemap discovery failed: %v\n", err)
		} else {
			seeds = urls
			fmt.Fprintf(deps.Stdout, "Seeded %d URLs from sitemap\n", len(urls))
		}
	}

	scraper := &crawl.Scraper{
		Site:        site,
		Fetcher:     deps.Fetcher,
		Links:       goquery.NewLinks(),
		Filters:     filters,
		Limiter:     crawl.NewRateLimiter(c.Rate),
		Seeds:       seeds,
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
	}

	fmt.Fprintf(deps.Stdout, "Scraping %s from %s\n", site.FullName(), site.Policy.BaseURL)

	result, err := scraper.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	// Persist the docset atomically, then record it in the catalog.
	doc := site.Doc()
	writer := fs.NewDocsetWriter(deps.DataDir, doc.DirName())
	if err := writer.Write(deps.Ctx, doc, result.Pages, result.Index); err != nil {
		_ = writer.Abort()
		fmt.Fprintf(deps.Stderr, "error writing docset: %v\n", err)
		return err
	}
	if err := writer.Commit(); err != nil {
		_ = writer.Abort()
		fmt.Fprintf(deps.Stderr, "error committing docset: %v\n", err)
		return err
	}

	if err := deps.Docs.SaveDoc(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages, %d entries (%s)\n",
		len(result.Pages), result.Index.Len(), crawl.FormatBytes(doc.DBSize))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages failed\n", result.Failed)
	}

	return nil
}
