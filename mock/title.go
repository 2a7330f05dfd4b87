package mock

import "github.com/fwojciec/postcheck"

var _ postcheck.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of postcheck.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) *postcheck.TitleResult
}

func (e *TitleExtractor) ExtractTitle(html string) *postcheck.TitleResult {
	return e.ExtractTitleFn(html)
}
