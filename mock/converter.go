package mock

import (
	"github.com/fwojciec/docset"
)

var _ docset.Converter = (*Converter)(nil)

// Converter is a mock implementation of docset.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
