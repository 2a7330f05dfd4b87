// Package goquery implements postcheck.Document and postcheck.TitleExtractor
// on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postcheck"
	"golang.org/x/net/html"
)

// Ensure Document implements postcheck.Document at compile time.
var _ postcheck.Document = (*Document)(nil)

// Document wraps a parsed goquery document.
// Invalid selectors match nothing.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses raw HTML into a Document.
func NewDocument(rawHTML string) (*Document, error) {
	node, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, postcheck.Errorf(postcheck.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(node)}, nil
}

// First returns the trimmed text of the first element matching selector.
func (d *Document) First(selector string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

// All returns the trimmed text of every element matching selector in document order.
func (d *Document) All(selector string) []string {
	sel := d.doc.Find(selector)
	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts
}
