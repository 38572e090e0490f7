package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docset"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docset.Errorf(docset.EINVALID, "use --force to confirm deletion")
	}

	doc, err := deps.Docs.FindDocBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if docset.ErrorCode(err) == docset.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: docset %q not found. Use 'docset list' to see installed docsets.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Docs.DeleteDoc(deps.Ctx, c.Slug); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		return err
	}

	// Remove the on-disk docset directory along with the catalog record.
	if err := os.RemoveAll(filepath.Join(deps.DataDir, doc.DirName())); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to remove docset files: %v\n", err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted docset %q\n", doc.FullName())
	return nil
}
