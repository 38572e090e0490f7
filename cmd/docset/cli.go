package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DataDir  string
	DB       *sqlite.DB
	Docs     docset.DocService
	Sitemaps docset.SitemapService
	Registry docset.FilterRegistry
	Fetcher  docset.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape ScrapeCmd `cmd:"" help:"Crawl a documentation site into a local docset"`
	List   ListCmd   `cmd:"" help:"List installed docsets"`
	Delete DeleteCmd `cmd:"" help:"Delete an installed docset"`
	Export ExportCmd `cmd:"" help:"Export a docset as a markdown tree"`
	Sites  SitesCmd  `cmd:"" help:"List the built-in site definitions"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Slug        string `arg:"" help:"Built-in site to scrape (see 'docset sites')"`
	Concurrency int    `short:"c" default:"5" help:"Concurrent fetch limit"`
	Rate        int    `short:"r" default:"60" help:"Requests per minute"`
	Sitemap     bool   `help:"Seed the crawl from the site's sitemap"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug  string `arg:"" help:"Docset slug"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Slug string `arg:"" help:"Docset slug"`
	Out  string `short:"o" help:"Output directory (defaults to ./<slug>-md)"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
