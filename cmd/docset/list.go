package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/crawl"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Docs.FindDocs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No docsets installed. Use 'docset scrape' to create one.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%-16s %-24s %10s  %s\n",
			d.Slug, d.FullName(), crawl.FormatBytes(d.DBSize),
			time.Unix(d.Mtime, 0).UTC().Format("2006-01-02"))
	}

	return nil
}
