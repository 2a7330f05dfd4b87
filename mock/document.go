package mock

import "github.com/fwojciec/postcheck"

var _ postcheck.Document = (*Document)(nil)

// Document is a mock implementation of postcheck.Document.
type Document struct {
	FirstFn func(selector string) (string, bool)
	AllFn   func(selector string) []string
}

func (d *Document) First(selector string) (string, bool) {
	return d.FirstFn(selector)
}

func (d *Document) All(selector string) []string {
	return d.AllFn(selector)
}
