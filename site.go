package docset

import "context"

// Site is the per-source configuration value: a crawl policy plus display
// metadata and the ordered names of the filters that make up the source's
// pipeline. The crawl engine treats sites as opaque configuration.
type Site struct {
	Name        string
	Slug        string
	Type        string
	Version     string
	Release     string
	Attribution string
	Links       map[string]string

	Policy Policy

	// Filters names pipeline stages in application order; they are resolved
	// against a FilterRegistry when the crawl is assembled.
	Filters []string
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.Slug == "" {
		return Errorf(EINVALID, "site slug required")
	}
	return s.Policy.Validate()
}

// FullName returns the display name including the version, if any.
func (s *Site) FullName() string {
	if s.Version == "" {
		return s.Name
	}
	return s.Name + " " + s.Version
}

// Doc returns the catalog metadata record for the site.
func (s *Site) Doc() *Doc {
	return &Doc{
		Name:        s.Name,
		Slug:        s.Slug,
		Type:        s.Type,
		Version:     s.Version,
		Release:     s.Release,
		Links:       s.Links,
		Attribution: s.Attribution,
	}
}

// SitemapService discovers URLs from website sitemaps, used to seed the
// crawl frontier in addition to the policy's initial paths.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap. It checks
	// robots.txt for sitemap directives, then falls back to /sitemap.xml.
	// Sitemap indexes are resolved recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
