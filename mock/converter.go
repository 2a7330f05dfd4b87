package mock

import "github.com/fwojciec/postcheck"

var _ postcheck.Converter = (*Converter)(nil)

// Converter is a mock implementation of postcheck.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
