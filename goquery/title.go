package goquery

import "github.com/fwojciec/postcheck"

// Ensure TitleExtractor implements postcheck.TitleExtractor at compile time.
var _ postcheck.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor finds a post title in an HTML page by running a fallback
// chain of selector strategies.
type TitleExtractor struct {
	strategies []postcheck.TitleStrategy
}

// Option configures a TitleExtractor.
type Option func(*TitleExtractor)

// WithStrategies replaces the default fallback chain.
func WithStrategies(strategies ...postcheck.TitleStrategy) Option {
	return func(e *TitleExtractor) {
		e.strategies = strategies
	}
}

// NewTitleExtractor creates a TitleExtractor using postcheck.DefaultTitleStrategies
// unless overridden.
func NewTitleExtractor(opts ...Option) *TitleExtractor {
	e := &TitleExtractor{
		strategies: postcheck.DefaultTitleStrategies(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractTitle parses html and returns the best title candidate.
// HTML that cannot be parsed yields an unsuccessful result.
func (e *TitleExtractor) ExtractTitle(html string) *postcheck.TitleResult {
	doc, err := NewDocument(html)
	if err != nil {
		return &postcheck.TitleResult{}
	}
	return postcheck.ExtractTitle(doc, e.strategies)
}
