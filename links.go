package docset

// LinkExtractor harvests hyperlink targets from HTML.
type LinkExtractor interface {
	// ExtractLinks returns the absolute URLs of all hyperlinks in the
	// document, resolved against baseURL. Fragment-only, mailto and other
	// non-HTTP links are omitted.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
