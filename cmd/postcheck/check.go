package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/postcheck"
)

// reportView is the JSON shape of a report.
type reportView struct {
	*postcheck.Report
	Tier postcheck.Tier `json:"tier"`
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	post, err := c.loadPost(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcheck.ErrorMessage(err))
		return err
	}

	if err := post.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcheck.ErrorMessage(err))
		return err
	}

	report := deps.Validator.Validate(post.Title, post.Content)

	if err := c.writeReport(deps, report); err != nil {
		return err
	}

	if report.Score < c.MinScore {
		return postcheck.Errorf(postcheck.EINVALID, "score %d is below minimum %d", report.Score, c.MinScore)
	}
	return nil
}

// loadPost assembles the post from the draft and the flags. Flags override
// the draft; the page only fills a title that is still missing.
func (c *CheckCmd) loadPost(deps *Dependencies) (*postcheck.Post, error) {
	post := &postcheck.Post{}

	if c.Draft != "" {
		var err error
		if post, err = c.readDraft(deps); err != nil {
			return nil, err
		}
	}

	if c.Title != "" {
		post.Title = c.Title
	}
	if c.Content != "" {
		post.Content = c.Content
	}

	if strings.TrimSpace(post.Title) == "" && c.Page != "" {
		html, err := readInput(deps, c.Page)
		if err != nil {
			return nil, err
		}
		if result := deps.Titles.ExtractTitle(html); result.Success {
			post.Title = result.Title
		} else {
			fmt.Fprintf(deps.Stderr, "warning: no title found in %s\n", c.Page)
		}
	}

	return postcheck.NewPost(post.Title, post.Content), nil
}

// readDraft reads the draft argument. HTML drafts are converted to Markdown
// and take their title from the page headings.
func (c *CheckCmd) readDraft(deps *Dependencies) (*postcheck.Post, error) {
	raw, err := readInput(deps, c.Draft)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(c.Draft)) {
	case ".html", ".htm":
		content, err := deps.Converter.Convert(raw)
		if err != nil {
			return nil, err
		}
		return &postcheck.Post{
			Title:   deps.Titles.ExtractTitle(raw).Title,
			Content: content,
		}, nil
	}

	return deps.Drafts.ParseDraft(strings.NewReader(raw))
}

func (c *CheckCmd) writeReport(deps *Dependencies, report *postcheck.Report) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reportView{Report: report, Tier: report.Tier()})
	case "junit":
		name := c.Draft
		if name == "" || name == "-" {
			name = "post"
		}
		return deps.JUnit.WriteReport(deps.Stdout, name, report)
	}

	fmt.Fprintln(deps.Stdout, postcheck.FormatReport(report))
	return nil
}
