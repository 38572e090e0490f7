package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docset"
)

// File names written inside each docset directory.
const (
	DBFile      = "db.json"
	IndexFile   = "index.json"
	EntriesFile = "entries.json"
	MetaFile    = "meta.json"
)

// DocsetWriter persists a completed crawl as a docset directory with
// atomic update semantics. Files are written to <baseDir>/<dirName>.tmp
// and moved into place on Commit, so a partially written docset never
// replaces a complete one.
type DocsetWriter struct {
	baseDir string
	dirName string
	store   docset.Store
}

// NewDocsetWriter creates a DocsetWriter for baseDir/dirName.
func NewDocsetWriter(baseDir, dirName string) *DocsetWriter {
	w := &DocsetWriter{
		baseDir: baseDir,
		dirName: dirName,
	}
	w.store = NewFileStore(w.tempDir())
	return w
}

func (w *DocsetWriter) tempDir() string {
	return filepath.Join(w.baseDir, w.dirName+".tmp")
}

func (w *DocsetWriter) finalDir() string {
	return filepath.Join(w.baseDir, w.dirName)
}

// Write serializes the page database, the index, the flat entry list and
// the docset metadata into the staging directory. The doc's Mtime and
// DBSize are filled in from the written database.
func (w *DocsetWriter) Write(ctx context.Context, doc *docset.Doc, pages docset.PageDB, index *docset.Index) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	db, err := json.Marshal(pages)
	if err != nil {
		return err
	}
	if err := w.store.WriteFile(ctx, DBFile, db); err != nil {
		return err
	}

	idx, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	if err := w.store.WriteFile(ctx, IndexFile, idx); err != nil {
		return err
	}

	entries, err := json.MarshalIndent(index.Entries, "", "  ")
	if err != nil {
		return err
	}
	if err := w.store.WriteFile(ctx, EntriesFile, entries); err != nil {
		return err
	}

	doc.Mtime = time.Now().Unix()
	doc.DBSize = int64(len(db))

	meta, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return w.store.WriteFile(ctx, MetaFile, meta)
}

// Commit atomically replaces the final docset directory with the staged
// one.
func (w *DocsetWriter) Commit() error {
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort removes the staging directory.
func (w *DocsetWriter) Abort() error {
	return os.RemoveAll(w.tempDir())
}

// ReadPages loads a docset's page database from dir.
func ReadPages(ctx context.Context, store docset.Store) (docset.PageDB, error) {
	data, err := store.ReadFile(ctx, DBFile)
	if err != nil {
		return nil, err
	}
	var pages docset.PageDB
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, docset.Errorf(docset.EINTERNAL, "corrupt page database: %v", err)
	}
	return pages, nil
}

// ReadIndex loads a docset's entry index from dir.
func ReadIndex(ctx context.Context, store docset.Store) (*docset.Index, error) {
	data, err := store.ReadFile(ctx, IndexFile)
	if err != nil {
		return nil, err
	}
	var index docset.Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, docset.Errorf(docset.EINTERNAL, "corrupt index: %v", err)
	}
	return &index, nil
}
