// Package yaml reads Markdown post drafts that carry YAML front matter.
//
// A draft looks like:
//
//	---
//	title: How do I profile memory in a Go service?
//	---
//	Body text in Markdown.
package yaml

import (
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/postcheck"
	"gopkg.in/yaml.v3"
)

// Ensure DraftParser implements postcheck.DraftParser at compile time.
var _ postcheck.DraftParser = (*DraftParser)(nil)

const delimiter = "---"

// headingRe matches a leading level-one Markdown heading.
var headingRe = regexp.MustCompile(`^#[ \t]+(.+?)[ \t#]*$`)

// frontMatter holds the recognised front matter keys. Others are ignored.
type frontMatter struct {
	Title string `yaml:"title"`
}

// DraftParser parses drafts with optional YAML front matter.
type DraftParser struct{}

// NewDraftParser creates a new DraftParser.
func NewDraftParser() *DraftParser {
	return &DraftParser{}
}

// ParseDraft reads a draft. Without front matter, a leading "# Heading" line
// becomes the title and the rest is content. Line endings are normalised to "\n".
func (p *DraftParser) ParseDraft(r io.Reader) (*postcheck.Post, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	if !strings.HasPrefix(text, delimiter+"\n") {
		return parseHeadingDraft(text), nil
	}

	lines := strings.SplitAfter(strings.TrimPrefix(text, delimiter+"\n"), "\n")
	for i, line := range lines {
		if strings.TrimRight(line, " \t\n") != delimiter {
			continue
		}

		var fm frontMatter
		if err := yaml.Unmarshal([]byte(strings.Join(lines[:i], "")), &fm); err != nil {
			return nil, postcheck.Errorf(postcheck.EINVALID, "invalid front matter: %v", err)
		}
		return postcheck.NewPost(fm.Title, strings.Join(lines[i+1:], "")), nil
	}

	return nil, postcheck.Errorf(postcheck.EINVALID, "unterminated front matter")
}

// parseHeadingDraft splits off a leading level-one heading as the title.
func parseHeadingDraft(text string) *postcheck.Post {
	body := strings.TrimLeft(text, " \t\n")
	first, rest, _ := strings.Cut(body, "\n")
	if m := headingRe.FindStringSubmatch(first); m != nil {
		return postcheck.NewPost(m[1], rest)
	}
	return postcheck.NewPost("", text)
}
