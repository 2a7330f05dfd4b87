package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/postcheck"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Validator postcheck.PostValidator
	Titles    postcheck.TitleExtractor
	Drafts    postcheck.DraftParser
	Converter postcheck.Converter
	JUnit     postcheck.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log diagnostics to stderr"`

	Title TitleCmd `cmd:"" help:"Extract the post title from an HTML page"`
	Check CheckCmd `cmd:"" help:"Score a post draft against the posting rules"`
}

// TitleCmd is the "title" subcommand.
type TitleCmd struct {
	File   string `arg:"" optional:"" help:"HTML page to read (default: stdin)"`
	Format string `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Draft    string `arg:"" optional:"" help:"Draft file: Markdown with YAML front matter, or .html (use - for stdin)"`
	Title    string `short:"t" help:"Post title (overrides the draft)"`
	Content  string `short:"c" help:"Post content (overrides the draft)"`
	Page     string `short:"p" help:"HTML page to take the title from when no title is given"`
	Format   string `short:"f" enum:"text,json,junit" default:"text" env:"POSTCHECK_FORMAT" help:"Output format (text, json, junit)"`
	MinScore int    `name:"min-score" default:"0" help:"Exit with an error when the score is below this value"`
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(deps *Dependencies, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", postcheck.Errorf(postcheck.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
