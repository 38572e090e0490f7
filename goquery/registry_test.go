package goquery_test

import (
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/goquery"
	"github.com/fwojciec/docset/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("creates registered filters", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		r.Register("noop", func() docset.Filter { return &mock.Filter{} })

		filter, err := r.Create("noop")
		require.NoError(t, err)
		assert.NotNil(t, filter)
	})

	t.Run("returns ENOTFOUND for unknown names", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		_, err := r.Create("missing")
		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})

	t.Run("each Create returns a fresh instance", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		r.Register("noop", func() docset.Filter { return &mock.Filter{} })

		a, err := r.Create("noop")
		require.NoError(t, err)
		b, err := r.Create("noop")
		require.NoError(t, err)
		assert.NotSame(t, a, b)
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		r.Register("b", func() docset.Filter { return &mock.Filter{} })
		r.Register("a", func() docset.Filter { return &mock.Filter{} })

		assert.Equal(t, []string{"a", "b"}, r.Names())
	})

	t.Run("registers builtins under canonical names", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		goquery.RegisterBuiltins(r)

		for _, name := range []string{"clean_html", "normalize_urls", "entries", "content"} {
			filter, err := r.Create(name)
			require.NoError(t, err, name)
			assert.NotNil(t, filter)
		}
	})
}
