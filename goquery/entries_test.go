package goquery_test

import (
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_Apply(t *testing.T) {
	t.Parallel()

	t.Run("records the page title from the name selector", func(t *testing.T) {
		t.Parallel()

		filter := goquery.NewEntries()
		ctx := &docset.FilterContext{Path: "element/div"}

		out, err := filter.Apply("<h1> The div element </h1><p>body</p>", ctx)
		require.NoError(t, err)
		assert.Equal(t, "The div element", ctx.Title)
		assert.Contains(t, out, "The div element")
	})

	t.Run("leaves title empty without a match", func(t *testing.T) {
		t.Parallel()

		filter := goquery.NewEntries()
		ctx := &docset.FilterContext{Path: "p"}

		_, err := filter.Apply("<p>no heading</p>", ctx)
		require.NoError(t, err)
		assert.Empty(t, ctx.Title)
	})
}

func TestEntries_Entries(t *testing.T) {
	t.Parallel()

	t.Run("primary entry uses the title and rule table", func(t *testing.T) {
		t.Parallel()

		filter := &goquery.Entries{
			NameSelector: "h1",
			Rules: []goquery.EntryRule{
				{Prefix: "element", Type: "Elements"},
			},
			FallbackType: "Guides",
		}
		ctx := &docset.FilterContext{Path: "element/div", Title: "div"}

		entries := filter.Entries("<h1>div</h1>", ctx)
		require.Len(t, entries, 1)
		assert.Equal(t, docset.IndexEntry{Name: "div", Path: "element/div", Type: "Elements"}, entries[0])
	})

	t.Run("falls back to the configured type", func(t *testing.T) {
		t.Parallel()

		filter := &goquery.Entries{
			Rules:        []goquery.EntryRule{{Prefix: "element", Type: "Elements"}},
			FallbackType: "Guides",
		}
		ctx := &docset.FilterContext{Path: "tutorial/start", Title: "Start"}

		entries := filter.Entries("", ctx)
		require.Len(t, entries, 1)
		assert.Equal(t, "Guides", entries[0].Type)
	})

	t.Run("name falls back to a readable form of the path", func(t *testing.T) {
		t.Parallel()

		filter := goquery.NewEntries()
		ctx := &docset.FilterContext{Path: "global_objects/array"}

		entries := filter.Entries("", ctx)
		require.Len(t, entries, 1)
		assert.Equal(t, "global objects.array", entries[0].Name)
	})

	t.Run("contains rule matches anywhere in the path", func(t *testing.T) {
		t.Parallel()

		filter := &goquery.Entries{
			Rules: []goquery.EntryRule{{Contains: "plugin", Type: "Plugins"}},
		}
		ctx := &docset.FilterContext{Path: "babel-plugin-transform", Title: "transform"}

		entries := filter.Entries("", ctx)
		require.Len(t, entries, 1)
		assert.Equal(t, "Plugins", entries[0].Type)
	})

	t.Run("skip root suppresses the primary entry", func(t *testing.T) {
		t.Parallel()

		filter := &goquery.Entries{SkipRoot: true}
		ctx := &docset.FilterContext{Path: "index", Title: "Home"}

		entries := filter.Entries("", ctx)
		assert.Empty(t, entries)
	})

	t.Run("heading selector emits anchored entries", func(t *testing.T) {
		t.Parallel()

		filter := &goquery.Entries{
			HeadingSelector: "h2",
			FallbackType:    "Guides",
		}
		ctx := &docset.FilterContext{Path: "guide/intro", Title: "Intro"}

		html := `<h1>Intro</h1>
			<h2 id="setup">Setup</h2>
			<h2>No Anchor</h2>
			<h2 id="usage">Usage</h2>`

		entries := filter.Entries(html, ctx)
		require.Len(t, entries, 3)
		assert.Equal(t, "Intro", entries[0].Name)
		assert.Equal(t, docset.IndexEntry{Name: "Setup", Path: "guide/intro#setup", Type: "Guides"}, entries[1])
		assert.Equal(t, docset.IndexEntry{Name: "Usage", Path: "guide/intro#usage", Type: "Guides"}, entries[2])
	})
}

func TestEntryRule_Match(t *testing.T) {
	t.Parallel()

	assert.True(t, goquery.EntryRule{Prefix: "element"}.Match("element/div"))
	assert.False(t, goquery.EntryRule{Prefix: "element"}.Match("guide/element"))
	assert.True(t, goquery.EntryRule{Contains: "element"}.Match("guide/element"))
	assert.True(t, goquery.EntryRule{Prefix: "a", Contains: "b"}.Match("a/b"))
	assert.False(t, goquery.EntryRule{Prefix: "a", Contains: "z"}.Match("a/b"))
	// An empty rule matches nothing.
	assert.False(t, goquery.EntryRule{}.Match("anything"))
}
