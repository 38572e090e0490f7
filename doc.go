package docset

import (
	"context"
	"time"
)

// Doc is the metadata record for one completed docset, written alongside
// the page database and index.
type Doc struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Type        string            `json:"type"`
	Version     string            `json:"version,omitempty"`
	Release     string            `json:"release,omitempty"`
	Links       map[string]string `json:"links,omitempty"`
	Mtime       int64             `json:"mtime"`
	DBSize      int64             `json:"db_size"`
	Attribution string            `json:"attribution,omitempty"`
	CreatedAt   time.Time         `json:"-"`
}

// Validate returns an error if the doc contains invalid fields.
func (d *Doc) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "doc name required")
	}
	if d.Slug == "" {
		return Errorf(EINVALID, "doc slug required")
	}
	return nil
}

// FullName returns the display name including the version, if any.
func (d *Doc) FullName() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + " " + d.Version
}

// DirName returns the on-disk directory name for the docset.
func (d *Doc) DirName() string {
	if d.Version == "" {
		return d.Slug
	}
	return d.Slug + "~" + d.Version
}

// DocService manages the local catalog of completed docsets.
type DocService interface {
	// SaveDoc inserts or replaces the catalog record for a slug.
	SaveDoc(ctx context.Context, doc *Doc) error

	// FindDocBySlug retrieves a catalog record.
	// Returns ENOTFOUND if no docset with the slug exists.
	FindDocBySlug(ctx context.Context, slug string) (*Doc, error)

	// FindDocs retrieves all catalog records ordered by name.
	FindDocs(ctx context.Context) ([]*Doc, error)

	// DeleteDoc removes a catalog record.
	// Returns ENOTFOUND if no docset with the slug exists.
	DeleteDoc(ctx context.Context, slug string) error
}
