package postcheck

import "unicode/utf8"

// Document is a parsed page that can be queried with CSS selectors.
type Document interface {
	// First returns the trimmed text of the first element matching selector.
	// ok is false when nothing matches or the selector is invalid.
	First(selector string) (text string, ok bool)

	// All returns the trimmed text of every element matching selector,
	// in document order.
	All(selector string) []string
}

// TitleResult is the outcome of title extraction.
// Content is always empty.
type TitleResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Success bool   `json:"success"`
}

// TitleCandidate is a title together with the strategy that found it.
type TitleCandidate struct {
	Title  string
	Source string
}

// TitleExtractor extracts a post title from a raw HTML page.
type TitleExtractor interface {
	// ExtractTitle never fails; unusable input yields a result with
	// Success set to false.
	ExtractTitle(html string) *TitleResult
}

// TitleStrategy is one step of a title fallback chain.
type TitleStrategy struct {
	Source string
	Find   func(doc Document) (string, bool)
}

// Title strategy sources, in the order DefaultTitleStrategies tries them.
const (
	SourceHeading     = "heading"
	SourcePostTitle   = "post-title"
	SourcePostHeading = "post-heading"
	SourceAnyHeading  = "any-heading"
)

// Length bounds, exclusive, for headings accepted by the heading scan.
const (
	HeadingMinLength = 5
	HeadingMaxLength = 500
)

// DefaultTitleStrategies returns the fallback chain used for forum pages:
// the first h1, the platform post-title attribute, an h1 inside a post
// container, then the first h1-h3 of plausible length.
func DefaultTitleStrategies() []TitleStrategy {
	return []TitleStrategy{
		FirstMatch(SourceHeading, "h1"),
		FirstMatch(SourcePostTitle, `[data-test-id="post-title"]`),
		FirstMatch(SourcePostHeading, ".Post h1"),
		FirstWithLength(SourceAnyHeading, "h1, h2, h3", HeadingMinLength, HeadingMaxLength),
	}
}

// FirstMatch accepts the first element matching selector, even if its text is empty.
func FirstMatch(source, selector string) TitleStrategy {
	return TitleStrategy{
		Source: source,
		Find: func(doc Document) (string, bool) {
			return doc.First(selector)
		},
	}
}

// FirstWithLength accepts the first element matching selector whose text
// is strictly longer than minLen and strictly shorter than maxLen characters.
func FirstWithLength(source, selector string, minLen, maxLen int) TitleStrategy {
	return TitleStrategy{
		Source: source,
		Find: func(doc Document) (string, bool) {
			for _, text := range doc.All(selector) {
				if n := utf8.RuneCountInString(text); n > minLen && n < maxLen {
					return text, true
				}
			}
			return "", false
		},
	}
}

// FindTitle runs strategies in order and returns the first candidate found.
// Later strategies are not evaluated once one succeeds.
func FindTitle(doc Document, strategies []TitleStrategy) (TitleCandidate, bool) {
	if doc == nil {
		return TitleCandidate{}, false
	}
	for _, s := range strategies {
		if s.Find == nil {
			continue
		}
		if title, ok := s.Find(doc); ok {
			return TitleCandidate{Title: title, Source: s.Source}, true
		}
	}
	return TitleCandidate{}, false
}

// ExtractTitle returns the title found by strategies, dropping its provenance.
func ExtractTitle(doc Document, strategies []TitleStrategy) *TitleResult {
	c, _ := FindTitle(doc, strategies)
	return &TitleResult{
		Title:   c.Title,
		Success: c.Title != "",
	}
}
