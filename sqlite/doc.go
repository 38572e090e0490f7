package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/fwojciec/docset"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docset.DocService = (*DocService)(nil)

// DocService implements docset.DocService using SQLite.
type DocService struct {
	db *DB
}

// NewDocService creates a new DocService.
func NewDocService(db *DB) *DocService {
	return &DocService{db: db}
}

// SaveDoc inserts or replaces the catalog record for the doc's slug.
// Re-scraping a site overwrites its previous record.
func (s *DocService) SaveDoc(ctx context.Context, doc *docset.Doc) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	links, err := json.Marshal(doc.Links)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO docs (id, slug, name, type, version, release, links, mtime, db_size, attribution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			version = excluded.version,
			release = excluded.release,
			links = excluded.links,
			mtime = excluded.mtime,
			db_size = excluded.db_size,
			attribution = excluded.attribution
	`, doc.ID, doc.Slug, doc.Name, doc.Type, doc.Version, doc.Release, string(links),
		doc.Mtime, doc.DBSize, doc.Attribution, doc.CreatedAt.Format(time.RFC3339))

	return err
}

// FindDocBySlug retrieves a catalog record by slug.
func (s *DocService) FindDocBySlug(ctx context.Context, slug string) (*docset.Doc, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, name, type, version, release, links, mtime, db_size, attribution, created_at
		FROM docs
		WHERE slug = ?
	`, slug)

	doc, err := scanDoc(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docset.Errorf(docset.ENOTFOUND, "docset not found: %s", slug)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocs retrieves all catalog records ordered by name.
func (s *DocService) FindDocs(ctx context.Context) ([]*docset.Doc, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, type, version, release, links, mtime, db_size, attribution, created_at
		FROM docs
		ORDER BY name, version
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docset.Doc
	for rows.Next() {
		doc, err := scanDoc(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDoc permanently removes a catalog record.
func (s *DocService) DeleteDoc(ctx context.Context, slug string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM docs WHERE slug = ?", slug)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return docset.Errorf(docset.ENOTFOUND, "docset not found: %s", slug)
	}

	return nil
}

// scanDoc reads one catalog row via the given scan function.
func scanDoc(scan func(dest ...any) error) (*docset.Doc, error) {
	var doc docset.Doc
	var links, createdAt string

	if err := scan(&doc.ID, &doc.Slug, &doc.Name, &doc.Type, &doc.Version, &doc.Release,
		&links, &doc.Mtime, &doc.DBSize, &doc.Attribution, &createdAt); err != nil {
		return nil, err
	}

	if links != "" && links != "{}" {
		if err := json.Unmarshal([]byte(links), &doc.Links); err != nil {
			return nil, docset.Errorf(docset.EINTERNAL, "corrupt links for %s: %v", doc.Slug, err)
		}
	}

	t, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	doc.CreatedAt = t

	return &doc, nil
}
