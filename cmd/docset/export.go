package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/fs"
	"github.com/fwojciec/docset/htmltomarkdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	doc, err := deps.Docs.FindDocBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if docset.ErrorCode(err) == docset.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: docset %q not found. Use 'docset list' to see installed docsets.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		}
		return err
	}

	store := fs.NewFileStore(filepath.Join(deps.DataDir, doc.DirName()))
	pages, err := fs.ReadPages(deps.Ctx, store)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	// The index gives each exported page a human-readable title.
	titles := make(map[string]string)
	if index, err := fs.ReadIndex(deps.Ctx, store); err == nil {
		for _, e := range index.Entries {
			if strings.Contains(e.Path, "#") {
				continue
			}
			if _, ok := titles[e.Path]; !ok {
				titles[e.Path] = e.Name
			}
		}
	}

	out := c.Out
	if out == "" {
		out = "./" + c.Slug + "-md"
	}

	site, _ := builtinSite(c.Slug)
	conv := htmltomarkdown.NewConverter()
	writer := fs.NewExportWriter(out)

	var exported, failed int
	for _, path := range pages.Paths() {
		md, err := conv.Convert(pages[path])
		if err != nil {
			failed++
			deps.Logger.Warn("conversion failed", "path", path, "err", err)
			continue
		}

		page := &docset.ExportPage{
			Path:      path,
			SourceURL: pageSourceURL(site, path),
			Title:     titles[path],
			Markdown:  md,
		}
		if err := writer.WritePage(deps.Ctx, page); err != nil {
			failed++
			deps.Logger.Warn("write failed", "path", path, "err", err)
			continue
		}
		exported++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", exported, out)
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages failed\n", failed)
	}

	return nil
}
