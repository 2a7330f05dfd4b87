package postcheck

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML draft into Markdown text suitable for
	// validation. Paragraphs are separated by blank lines.
	Convert(html string) (string, error)
}
