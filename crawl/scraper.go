package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds simultaneously in-flight fetches when the
// scraper is not configured otherwise.
const DefaultConcurrency = 5

// Scraper crawls one documentation site breadth-first and produces its page
// database and entry index. The frontier and visited set are owned by the
// coordinating goroutine for the duration of a run; fetch workers never
// touch the page map or entry list directly.
type Scraper struct {
	Site    *docset.Site
	Fetcher docset.Fetcher
	Links   docset.LinkExtractor
	Filters []docset.Filter

	// Limiter throttles outbound requests. A default 60 rpm limiter is
	// created when nil.
	Limiter *RateLimiter

	// Seeds are extra start URLs added to the frontier alongside the
	// policy's initial paths (e.g. from sitemap discovery).
	Seeds []string

	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the artifacts of a completed crawl. Pages and Index are
// immutable once Run returns.
type Result struct {
	Pages   docset.PageDB
	Index   *docset.Index
	Fetched int
	Failed  int
}

// pageResult is what a fetch worker hands back to the coordinator.
type pageResult struct {
	url     string
	path    string
	title   string
	content string
	entries []docset.IndexEntry
	links   []string
	skip    bool
	err     error
}

// Run executes the crawl. A fetch error on one URL is logged and that URL
// dropped; Run fails only on unrecoverable conditions such as an invalid
// site configuration.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	if err := s.Site.Validate(); err != nil {
		return nil, err
	}
	policy := &s.Site.Policy

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	limiter := s.Limiter
	if limiter == nil {
		limiter = NewRateLimiter(DefaultRequestsPerMinute)
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	frontier := NewFrontier()
	for _, u := range policy.InitialURLs() {
		frontier.Push(u)
	}
	for _, u := range s.Seeds {
		frontier.Push(u)
	}

	redirects := NewRedirects()
	redirects.PathFunc = policy.PathFor

	pages := docset.PageDB{}
	var entries []docset.IndexEntry
	var fetched, failed int

	results := make(chan pageResult)
	g, gctx := errgroup.WithContext(ctx)
	inflight := 0

	for {
		// Claim admissible URLs up to the concurrency bound. Claim marks a
		// URL visited, so no URL is ever dispatched twice.
		for inflight < concurrency && gctx.Err() == nil {
			url, ok := frontier.Claim()
			if !ok {
				break
			}
			if !policy.ShouldProcess(url) {
				continue
			}
			inflight++
			g.Go(func() error {
				results <- s.fetchPage(gctx, url, limiter, redirects)
				return nil
			})
		}

		// Frontier drained and nothing in flight: the crawl is done.
		if inflight == 0 {
			break
		}

		res := <-results
		inflight--

		if res.err != nil {
			failed++
			logger.Warn("fetch failed", "url", res.url, "err", res.err)
			continue
		}
		if res.skip {
			logger.Debug("skipped", "url", res.url)
			continue
		}

		fetched++
		logger.Info("crawled", "url", res.url, "path", res.path, "title", res.title)

		// Harvested links go back into the frontier; duplicates are
		// rejected there, policy checks happen at claim time.
		for _, link := range res.links {
			frontier.Push(link)
		}

		// The coordinator is the sole mutator of the page map and entry
		// list.
		if res.content != "" {
			pages.Add(res.path, res.content)
			entries = append(entries, res.entries...)
		}
	}

	_ = g.Wait()

	// A redirect discovered late in the crawl can affect an already-stored
	// page, so remapping runs once over the finished page map.
	redirects.Apply(pages)

	index := docset.NewIndex()
	for _, e := range entries {
		index.Add(e)
	}
	index.Sort()

	return &Result{
		Pages:   pages,
		Index:   index,
		Fetched: fetched,
		Failed:  failed,
	}, nil
}

// fetchPage fetches and processes one URL. It runs on a worker goroutine
// and communicates with the coordinator only through its return value and
// the (internally synchronized) rate limiter and redirect recorder.
func (s *Scraper) fetchPage(ctx context.Context, url string, limiter *RateLimiter, redirects *Redirects) pageResult {
	policy := &s.Site.Policy
	result := pageResult{url: url, path: policy.PathFor(url)}

	if err := limiter.Wait(ctx); err != nil {
		result.err = err
		return result
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fr, err := FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	if fr.EffectiveURL != "" && fr.EffectiveURL != url {
		redirects.Record(url, fr.EffectiveURL)
	}

	if !fr.OK() || !fr.HTML() {
		result.skip = true
		return result
	}

	fc := &docset.FilterContext{
		URL:          url,
		Path:         result.path,
		BaseURL:      policy.BaseURL,
		RootPath:     policy.RootPath,
		Version:      s.Site.Version,
		Release:      s.Site.Release,
		Slug:         s.Site.Slug,
		InitialPaths: policy.InitialPaths,
		Attribution:  s.Site.Attribution,
		HTML:         fr.Body,
	}

	html := fr.Body
	for _, filter := range s.Filters {
		out, err := filter.Apply(html, fc)
		if err != nil {
			// Content errors degrade to the unmodified input for this
			// stage rather than dropping the page.
			s.logWarn("filter failed", "url", url, "err", err)
			continue
		}
		html = out
		fc.HTML = html
	}

	// Entry extraction runs after all HTML transformation.
	for _, filter := range s.Filters {
		result.entries = append(result.entries, filter.Entries(html, fc)...)
	}
	result.entries = append(result.entries, fc.Entries...)

	result.title = fc.Title
	result.content = fc.Content

	// Pages that produced content but no entry still get a primary entry
	// so every stored page is reachable from the index.
	if result.content != "" && len(result.entries) == 0 {
		name := fc.Title
		if name == "" {
			name = result.path
		}
		result.entries = append(result.entries, docset.IndexEntry{
			Name: name,
			Path: result.path,
			Type: "Other",
		})
	}

	if s.Links != nil {
		links, err := s.Links.ExtractLinks(html, url)
		if err != nil {
			s.logWarn("link extraction failed", "url", url, "err", err)
		} else {
			result.links = links
		}
	}

	return result
}

func (s *Scraper) logWarn(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Warn(msg, args...)
	} else {
		slog.Default().Warn(msg, args...)
	}
}
