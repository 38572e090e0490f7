package fs

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/docset"
)

// ExportWriter writes docset pages as markdown files under a directory.
type ExportWriter struct {
	store docset.Store
	now   func() time.Time
}

// NewExportWriter creates an ExportWriter rooted at dir.
func NewExportWriter(dir string) *ExportWriter {
	return &ExportWriter{
		store: NewFileStore(dir),
		now:   time.Now,
	}
}

// WritePage writes one converted page. The storage path becomes the file
// path with a .md extension: "web/html" → "web/html.md".
func (w *ExportWriter) WritePage(ctx context.Context, page *docset.ExportPage) error {
	if page.Path == "" {
		return docset.Errorf(docset.EINVALID, "page path required")
	}
	content := FormatPage(page, w.now())
	return w.store.WriteFile(ctx, page.Path+".md", []byte(content))
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *docset.ExportPage, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\nexported: ")
	b.WriteString(now.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Markdown)
	return b.String()
}
