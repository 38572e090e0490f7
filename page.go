package docset

import "sort"

// PageDB maps canonical storage paths to rendered page content, one entry
// per successfully crawled, non-empty page.
type PageDB map[string]string

// Add stores content under a path, replacing any previous content.
func (db PageDB) Add(path, content string) {
	db[path] = content
}

// Has reports whether a page exists under the path.
func (db PageDB) Has(path string) bool {
	_, ok := db[path]
	return ok
}

// Paths returns all stored paths in sorted order.
func (db PageDB) Paths() []string {
	paths := make([]string, 0, len(db))
	for path := range db {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
