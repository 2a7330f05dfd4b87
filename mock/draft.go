package mock

import (
	"io"

	"github.com/fwojciec/postcheck"
)

var _ postcheck.DraftParser = (*DraftParser)(nil)

// DraftParser is a mock implementation of postcheck.DraftParser.
type DraftParser struct {
	ParseDraftFn func(r io.Reader) (*postcheck.Post, error)
}

func (p *DraftParser) ParseDraft(r io.Reader) (*postcheck.Post, error) {
	return p.ParseDraftFn(r)
}
