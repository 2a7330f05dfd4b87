package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/postcheck"
)

// Run executes the title command.
func (c *TitleCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcheck.ErrorMessage(err))
		return err
	}

	result := deps.Titles.ExtractTitle(html)

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if !result.Success {
		fmt.Fprintln(deps.Stderr, "error: no title found. The page has no h1 or post title element.")
		return postcheck.Errorf(postcheck.ENOTFOUND, "no title found")
	}

	fmt.Fprintln(deps.Stdout, result.Title)
	return nil
}
