package docset_test

import (
	"testing"

	"github.com/fwojciec/docset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Add(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates exact triples", func(t *testing.T) {
		t.Parallel()

		idx := docset.NewIndex()
		idx.Add(docset.IndexEntry{Name: "map", Path: "global_objects/map", Type: "Objects"})
		idx.Add(docset.IndexEntry{Name: "map", Path: "global_objects/map", Type: "Objects"})

		assert.Equal(t, 1, idx.Len())
	})

	t.Run("same name and path with different type is distinct", func(t *testing.T) {
		t.Parallel()

		idx := docset.NewIndex()
		idx.Add(docset.IndexEntry{Name: "map", Path: "p", Type: "Objects"})
		idx.Add(docset.IndexEntry{Name: "map", Path: "p", Type: "Methods"})

		assert.Equal(t, 2, idx.Len())
	})

	t.Run("counts entries per type", func(t *testing.T) {
		t.Parallel()

		idx := docset.NewIndex()
		idx.Add(docset.IndexEntry{Name: "a", Path: "a", Type: "Elements"})
		idx.Add(docset.IndexEntry{Name: "b", Path: "b", Type: "Elements"})
		idx.Add(docset.IndexEntry{Name: "c", Path: "c", Type: "Attributes"})

		require.Len(t, idx.Types, 2)
		byName := map[string]int{}
		for _, typ := range idx.Types {
			byName[typ.Name] = typ.Count
		}
		assert.Equal(t, 2, byName["Elements"])
		assert.Equal(t, 1, byName["Attributes"])
	})

	t.Run("type summaries carry slugs", func(t *testing.T) {
		t.Parallel()

		idx := docset.NewIndex()
		idx.Add(docset.IndexEntry{Name: "a", Path: "a", Type: "Global Attributes"})

		require.Len(t, idx.Types, 1)
		assert.Equal(t, "global-attributes", idx.Types[0].Slug)
	})
}

func TestIndex_Sort(t *testing.T) {
	t.Parallel()

	idx := docset.NewIndex()
	for _, name := range []string{"item", "2.1", "1.10", "1.2", "zeta", "Alpha"} {
		idx.Add(docset.IndexEntry{Name: name, Path: name, Type: "Other"})
	}
	idx.Sort()

	var names []string
	for _, e := range idx.Entries {
		names = append(names, e.Name)
	}
	// Numeric names order by value and come before purely textual names.
	assert.Equal(t, []string{"1.2", "1.10", "2.1", "Alpha", "item", "zeta"}, names)
}

func TestNaturalCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"1.2", "1.10", -1},
		{"1.10", "2.1", -1},
		{"2.1", "1.10", 1},
		{"1.2", "1.2", 0},
		{"item", "1.item", 1},
		{"1.item", "item", -1},
		{"alpha", "Beta", -1},
		{"Beta", "alpha", 1},
		{"Index", "index", 0},
		{"1.2", "1.2.1", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, docset.NaturalCompare(tt.a, tt.b),
			"NaturalCompare(%q, %q)", tt.a, tt.b)
	}
}

func TestIndexEntry_Validate(t *testing.T) {
	t.Parallel()

	valid := docset.IndexEntry{Name: "Array", Path: "global_objects/array", Type: "Objects"}
	assert.NoError(t, valid.Validate())

	noName := docset.IndexEntry{Path: "p"}
	assert.Equal(t, docset.EINVALID, docset.ErrorCode(noName.Validate()))

	noPath := docset.IndexEntry{Name: "n"}
	assert.Equal(t, docset.EINVALID, docset.ErrorCode(noPath.Validate()))
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "global-attributes", docset.Slugify(" Global Attributes "))
	assert.Equal(t, "other", docset.Slugify("Other"))
}
