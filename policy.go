package docset

import (
	"net/url"
	"regexp"
	"strings"
)

// Policy controls which URLs a crawl visits and how URLs map onto storage
// paths. BaseURL is the primary site root; Mirrors are additional base URLs
// treated as equivalent roots.
type Policy struct {
	BaseURL      string
	Mirrors      []string
	RootPath     string
	InitialPaths []string

	SkipPaths    []string
	SkipPatterns []string
	OnlyPaths    []string
	OnlyPatterns []string

	// SkipLink, when set, rejects individual URLs before any path checks.
	SkipLink func(url string) bool

	// TrailingSlash keeps a trailing slash on derived paths instead of
	// stripping it.
	TrailingSlash bool
}

// Validate returns an error if the policy contains invalid fields.
func (p *Policy) Validate() error {
	if p.BaseURL == "" {
		return Errorf(EINVALID, "policy base URL required")
	}
	if _, err := url.Parse(p.BaseURL); err != nil {
		return Errorf(EINVALID, "invalid base URL %q: %v", p.BaseURL, err)
	}
	return nil
}

// BaseURLs returns the primary base URL followed by any mirrors.
func (p *Policy) BaseURLs() []string {
	return append([]string{p.BaseURL}, p.Mirrors...)
}

// InitialURLs resolves the policy's seed paths against the primary base URL
// and appends each mirror root, forming the starting frontier.
func (p *Policy) InitialURLs() []string {
	paths := p.InitialPaths
	if len(paths) == 0 {
		paths = []string{"/"}
	}

	var urls []string
	for _, path := range paths {
		urls = append(urls, NormalizeURL(p.BaseURL, path))
	}
	urls = append(urls, p.Mirrors...)
	return urls
}

// ShouldProcess reports whether a URL is admissible for fetching. Checks run
// in order: base-URL membership, skip predicate, skip paths, skip patterns,
// only paths, only patterns. Malformed patterns match nothing.
func (p *Policy) ShouldProcess(rawURL string) bool {
	if !p.withinBase(rawURL) {
		return false
	}

	if p.SkipLink != nil && p.SkipLink(rawURL) {
		return false
	}

	path := p.PathFor(rawURL)

	for _, skip := range p.SkipPaths {
		if pathMatches(path, skip) {
			return false
		}
	}
	for _, pattern := range p.SkipPatterns {
		if re, err := regexp.Compile(pattern); err == nil && re.MatchString(path) {
			return false
		}
	}

	if len(p.OnlyPaths) > 0 {
		matched := false
		for _, only := range p.OnlyPaths {
			if pathMatches(path, only) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(p.OnlyPatterns) > 0 {
		matched := false
		for _, pattern := range p.OnlyPatterns {
			if re, err := regexp.Compile(pattern); err == nil && re.MatchString(path) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func (p *Policy) withinBase(rawURL string) bool {
	for _, base := range p.BaseURLs() {
		if strings.HasPrefix(rawURL, base) {
			return true
		}
	}
	return false
}

// PathFor derives the storage path for a URL: the part after the matching
// base URL with leading slash removed, or "index" for the base itself.
func (p *Policy) PathFor(rawURL string) string {
	for _, base := range p.BaseURLs() {
		if strings.HasPrefix(rawURL, base) {
			return p.normalizePath(strings.TrimPrefix(strings.TrimPrefix(rawURL, base), "/"))
		}
	}

	// Outside every base URL: fall back to the URL's own path component.
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	return p.normalizePath(strings.TrimPrefix(u.Path, "/"))
}

func (p *Policy) normalizePath(path string) string {
	if i := strings.IndexAny(path, "#?"); i >= 0 {
		path = path[:i]
	}
	if !p.TrailingSlash {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		return "index"
	}
	return path
}

// pathMatches reports whether path equals prefix or lives under it.
func pathMatches(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// NormalizeURL resolves a path against a base URL. Absolute URLs pass
// through unchanged.
func NormalizeURL(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
