package docset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// IndexEntry is one searchable item surfaced to the end-user search index.
// Equality is structural: the same name and path with a different type is a
// distinct entry.
type IndexEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *IndexEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry path required")
	}
	return nil
}

// EntryType summarizes how many entries share a type category.
type EntryType struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

// Index accumulates unique entries and per-type counts during a crawl and
// produces the serializable search index. The zero value is not usable; use
// NewIndex.
type Index struct {
	Entries []IndexEntry `json:"entries"`
	Types   []*EntryType `json:"types"`

	seen  map[uint64]struct{}
	byTyp map[string]*EntryType
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		seen:  make(map[uint64]struct{}),
		byTyp: make(map[string]*EntryType),
	}
}

// Add admits an entry unless the exact (name, path, type) triple has been
// seen before. The first entry of a given type creates its type summary;
// later entries increment the count.
func (x *Index) Add(e IndexEntry) {
	key := entryKey(e)
	if _, ok := x.seen[key]; ok {
		return
	}
	x.seen[key] = struct{}{}
	x.Entries = append(x.Entries, e)

	typ, ok := x.byTyp[e.Type]
	if !ok {
		typ = &EntryType{Name: e.Type, Slug: Slugify(e.Type)}
		x.byTyp[e.Type] = typ
		x.Types = append(x.Types, typ)
	}
	typ.Count++
}

// Len returns the number of unique entries admitted so far.
func (x *Index) Len() int {
	return len(x.Entries)
}

// Sort orders entries and type summaries naturally by name. Call once
// before serialization.
func (x *Index) Sort() {
	sort.SliceStable(x.Entries, func(i, j int) bool {
		return NaturalCompare(x.Entries[i].Name, x.Entries[j].Name) < 0
	})
	sort.SliceStable(x.Types, func(i, j int) bool {
		return NaturalCompare(x.Types[i].Name, x.Types[j].Name) < 0
	})
}

// entryKey is the canonical serialization of the triple used for set
// membership. NUL separators prevent ("a", "bc") colliding with ("ab", "c").
func entryKey(e IndexEntry) uint64 {
	return xxhash.Sum64String(e.Name + "\x00" + e.Path + "\x00" + e.Type)
}

// Slugify converts a display name to a URL-friendly identifier.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// NaturalCompare orders names so that embedded version-like numbers compare
// by value: "1.2" < "1.10" < "2.1". Names that contain no digit runs at all
// sort after those that do when either side starts with a digit, so "item"
// comes after "1.item". Returns -1, 0 or 1.
func NaturalCompare(a, b string) int {
	if !startsWithDigit(a) && !startsWithDigit(b) {
		return compareFold(a, b)
	}

	ra, rb := splitRuns(a), splitRuns(b)

	// A name that does not split into multiple runs sorts after one that
	// does.
	if len(ra) < 2 || len(rb) < 2 {
		switch {
		case len(ra) >= 2:
			return -1
		case len(rb) >= 2:
			return 1
		default:
			return compareFold(a, b)
		}
	}

	// Pad the shorter run sequence with zero runs before its final segment
	// so both sides compare position by position.
	for len(ra) < len(rb) {
		ra = padBeforeLast(ra)
	}
	for len(rb) < len(ra) {
		rb = padBeforeLast(rb)
	}

	for i := range ra {
		if c := compareRuns(ra[i], rb[i]); c != 0 {
			return c
		}
	}
	return 0
}

// splitRuns splits a name into alternating non-digit/digit runs.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[i-1]) {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	return runs
}

// compareRuns compares numeric runs by integer value and anything else as a
// literal string.
func compareRuns(a, b string) int {
	an, aok := runInt(a)
	bn, bok := runInt(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

func padBeforeLast(runs []string) []string {
	out := make([]string, 0, len(runs)+1)
	out = append(out, runs[:len(runs)-1]...)
	out = append(out, "0", runs[len(runs)-1])
	return out
}

func runInt(s string) (int64, bool) {
	if s == "" || !isDigit(s[0]) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func startsWithDigit(s string) bool {
	return s != "" && isDigit(s[0])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
