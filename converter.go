package docset

// Converter converts HTML to Markdown, used by the export command to turn
// a stored page database into a markdown tree.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// ExportPage is one page of a docset prepared for markdown export.
type ExportPage struct {
	// Path is the page's storage path within the docset.
	Path string

	// SourceURL is the original URL the page was crawled from, when known.
	SourceURL string

	// Title is the page's display name, usually the index entry name.
	Title string

	// Markdown is the converted page content.
	Markdown string
}
