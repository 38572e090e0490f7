package docset_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	valid := docset.Policy{BaseURL: "https://example.com/docs"}
	assert.NoError(t, valid.Validate())

	missing := docset.Policy{}
	assert.Equal(t, docset.EINVALID, docset.ErrorCode(missing.Validate()))
}

func TestPolicy_InitialURLs(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the base root", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{BaseURL: "https://example.com/docs"}
		assert.Equal(t, []string{"https://example.com/docs/"}, p.InitialURLs())
	})

	t.Run("resolves seed paths and appends mirrors", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:      "https://example.com/docs",
			InitialPaths: []string{"guide", "/reference"},
			Mirrors:      []string{"https://mirror.example.com/docs"},
		}
		assert.Equal(t, []string{
			"https://example.com/docs/guide",
			"https://example.com/docs/reference",
			"https://mirror.example.com/docs",
		}, p.InitialURLs())
	})

	t.Run("absolute seed URLs pass through", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:      "https://example.com/docs",
			InitialPaths: []string{"https://other.example.com/start"},
		}
		assert.Equal(t, []string{"https://other.example.com/start"}, p.InitialURLs())
	})
}

func TestPolicy_ShouldProcess(t *testing.T) {
	t.Parallel()

	t.Run("rejects URLs outside every base", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{BaseURL: "https://example.com/docs"}
		assert.True(t, p.ShouldProcess("https://example.com/docs/intro"))
		assert.False(t, p.ShouldProcess("https://elsewhere.com/docs/intro"))
	})

	t.Run("accepts mirror URLs", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL: "https://example.com/docs",
			Mirrors: []string{"https://mirror.example.com/docs"},
		}
		assert.True(t, p.ShouldProcess("https://mirror.example.com/docs/intro"))
	})

	t.Run("skip predicate runs before path rules", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:  "https://example.com/docs",
			SkipLink: func(url string) bool { return strings.Contains(url, "draft") },
		}
		assert.False(t, p.ShouldProcess("https://example.com/docs/draft/page"))
		assert.True(t, p.ShouldProcess("https://example.com/docs/final/page"))
	})

	t.Run("skip paths match whole segments", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:   "https://example.com/docs",
			SkipPaths: []string{"internal"},
		}
		assert.False(t, p.ShouldProcess("https://example.com/docs/internal"))
		assert.False(t, p.ShouldProcess("https://example.com/docs/internal/page"))
		assert.True(t, p.ShouldProcess("https://example.com/docs/internals"))
	})

	t.Run("skip patterns match derived paths", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:      "https://example.com/docs",
			SkipPatterns: []string{`^usage/.*`},
		}
		assert.False(t, p.ShouldProcess("https://example.com/docs/usage/advanced"))
		assert.True(t, p.ShouldProcess("https://example.com/docs/reference/usage-notes"))
	})

	t.Run("only paths restrict the crawl", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:   "https://example.com/docs",
			OnlyPaths: []string{"reference"},
		}
		assert.True(t, p.ShouldProcess("https://example.com/docs/reference/array"))
		assert.False(t, p.ShouldProcess("https://example.com/docs/guide/intro"))
	})

	t.Run("only patterns restrict the crawl", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:      "https://example.com/docs",
			OnlyPatterns: []string{`^element/`},
		}
		assert.True(t, p.ShouldProcess("https://example.com/docs/element/div"))
		assert.False(t, p.ShouldProcess("https://example.com/docs/guide/intro"))
	})

	t.Run("malformed patterns match nothing", func(t *testing.T) {
		t.Parallel()

		p := docset.Policy{
			BaseURL:      "https://example.com/docs",
			SkipPatterns: []string{`[`},
		}
		assert.True(t, p.ShouldProcess("https://example.com/docs/page"))
	})
}

func TestPolicy_PathFor(t *testing.T) {
	t.Parallel()

	p := docset.Policy{BaseURL: "https://example.com/docs"}

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/docs", "index"},
		{"https://example.com/docs/", "index"},
		{"https://example.com/docs/guide", "guide"},
		{"https://example.com/docs/guide/", "guide"},
		{"https://example.com/docs/guide#section", "guide"},
		{"https://example.com/docs/guide?q=1", "guide"},
		{"https://example.com/docs/a/b/c", "a/b/c"},
		{"https://other.com/some/path", "some/path"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.PathFor(tt.url), "PathFor(%q)", tt.url)
	}
}

func TestPolicy_PathFor_TrailingSlash(t *testing.T) {
	t.Parallel()

	p := docset.Policy{BaseURL: "https://example.com/docs", TrailingSlash: true}
	assert.Equal(t, "guide/", p.PathFor("https://example.com/docs/guide/"))
}

func TestPolicy_PathFor_Mirror(t *testing.T) {
	t.Parallel()

	p := docset.Policy{
		BaseURL: "https://example.com/docs",
		Mirrors: []string{"https://mirror.example.com/docs"},
	}
	// Mirror pages map onto the same storage paths as the primary base.
	assert.Equal(t, "guide", p.PathFor("https://mirror.example.com/docs/guide"))
}

func TestPolicy_PathFor_Unparseable(t *testing.T) {
	t.Parallel()

	p := docset.Policy{BaseURL: "https://example.com/docs"}
	require.Equal(t, "unknown", p.PathFor("://not-a-url"))
}
