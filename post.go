package postcheck

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Post is a forum post draft: the title and body a user intends to submit.
type Post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewPost returns a post with surrounding whitespace trimmed from both fields.
func NewPost(title, content string) *Post {
	return &Post{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
}

// Validate returns an error if the post is not ready to be checked.
// Rules do not require this; callers enforce it before validating.
func (p *Post) Validate() error {
	if !utf8.ValidString(p.Title) {
		return Errorf(EINVALID, "post title must be valid UTF-8")
	}
	if !utf8.ValidString(p.Content) {
		return Errorf(EINVALID, "post content must be valid UTF-8")
	}
	if strings.TrimSpace(p.Title) == "" {
		return Errorf(EINVALID, "post title required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return Errorf(EINVALID, "post content required")
	}
	return nil
}

// DraftParser reads a post draft from a file format.
type DraftParser interface {
	// ParseDraft reads the whole draft. Fields missing from the draft are
	// left empty; it does not call Post.Validate.
	ParseDraft(r io.Reader) (*Post, error)
}
