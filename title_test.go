package postcheck_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/postcheck"
	"github.com/fwojciec/postcheck/mock"
	"github.com/stretchr/testify/assert"
)

// fakeDocument returns a mock document whose selectors resolve to the given texts.
func fakeDocument(matches map[string][]string) *mock.Document {
	return &mock.Document{
		FirstFn: func(selector string) (string, bool) {
			texts := matches[selector]
			if len(texts) == 0 {
				return "", false
			}
			return texts[0], true
		},
		AllFn: func(selector string) []string {
			return matches[selector]
		},
	}
}

func TestFindTitle(t *testing.T) {
	t.Parallel()

	strategies := postcheck.DefaultTitleStrategies()

	t.Run("primary heading wins over post title attribute", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{
			"h1":                          {"Primary heading"},
			`[data-test-id="post-title"]`: {"Attribute title"},
		})

		c, ok := postcheck.FindTitle(doc, strategies)

		assert.True(t, ok)
		assert.Equal(t, postcheck.TitleCandidate{Title: "Primary heading", Source: postcheck.SourceHeading}, c)
	})

	t.Run("falls back to post title attribute", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{
			`[data-test-id="post-title"]`: {"Attribute title"},
			"h1, h2, h3":                  {"Some section heading"},
		})

		c, ok := postcheck.FindTitle(doc, strategies)

		assert.True(t, ok)
		assert.Equal(t, "Attribute title", c.Title)
		assert.Equal(t, postcheck.SourcePostTitle, c.Source)
	})

	t.Run("falls back to post container heading", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{
			".Post h1": {"Container heading"},
		})

		c, ok := postcheck.FindTitle(doc, strategies)

		assert.True(t, ok)
		assert.Equal(t, postcheck.SourcePostHeading, c.Source)
	})

	t.Run("scans headings for plausible length", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{
			"h1, h2, h3": {"Menu", "12345", strings.Repeat("x", 500), "A real heading"},
		})

		c, ok := postcheck.FindTitle(doc, strategies)

		assert.True(t, ok)
		assert.Equal(t, "A real heading", c.Title)
		assert.Equal(t, postcheck.SourceAnyHeading, c.Source)
	})

	t.Run("accepts headings just inside length bounds", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{
			"h1, h2, h3": {"123456"},
		})

		c, ok := postcheck.FindTitle(doc, strategies)

		assert.True(t, ok)
		assert.Equal(t, "123456", c.Title)
	})

	t.Run("empty primary heading still wins", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{
			"h1":                          {""},
			`[data-test-id="post-title"]`: {"Attribute title"},
		})

		c, ok := postcheck.FindTitle(doc, strategies)

		assert.True(t, ok)
		assert.Empty(t, c.Title)
	})

	t.Run("stops evaluating after first success", func(t *testing.T) {
		t.Parallel()

		var called []string
		record := func(source string, ok bool) postcheck.TitleStrategy {
			return postcheck.TitleStrategy{Source: source, Find: func(postcheck.Document) (string, bool) {
				called = append(called, source)
				return source, ok
			}}
		}

		c, ok := postcheck.FindTitle(fakeDocument(nil), []postcheck.TitleStrategy{
			record("a", false), record("b", true), record("c", true),
		})

		assert.True(t, ok)
		assert.Equal(t, "b", c.Title)
		assert.Equal(t, []string{"a", "b"}, called)
	})

	t.Run("skips strategies without a finder", func(t *testing.T) {
		t.Parallel()

		c, ok := postcheck.FindTitle(fakeDocument(map[string][]string{"h1": {"Heading"}}), []postcheck.TitleStrategy{
			{Source: "broken"},
			postcheck.FirstMatch("h1", "h1"),
		})

		assert.True(t, ok)
		assert.Equal(t, "Heading", c.Title)
	})

	t.Run("nil document finds nothing", func(t *testing.T) {
		t.Parallel()

		_, ok := postcheck.FindTitle(nil, strategies)

		assert.False(t, ok)
	})
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("returns title with success", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{"h1": {"Primary heading"}})

		result := postcheck.ExtractTitle(doc, postcheck.DefaultTitleStrategies())

		assert.Equal(t, &postcheck.TitleResult{Title: "Primary heading", Success: true}, result)
	})

	t.Run("returns empty unsuccessful result when no heading exists", func(t *testing.T) {
		t.Parallel()

		result := postcheck.ExtractTitle(fakeDocument(nil), postcheck.DefaultTitleStrategies())

		assert.Equal(t, &postcheck.TitleResult{}, result)
	})

	t.Run("empty accepted title is not a success", func(t *testing.T) {
		t.Parallel()

		doc := fakeDocument(map[string][]string{"h1": {""}})

		result := postcheck.ExtractTitle(doc, postcheck.DefaultTitleStrategies())

		assert.False(t, result.Success)
		assert.Empty(t, result.Title)
	})
}
