package postcheck_test

import (
	"testing"

	"github.com/fwojciec/postcheck"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("renders checklist and score", func(t *testing.T) {
		t.Parallel()

		report := &postcheck.Report{
			Results: []postcheck.CheckResult{
				{Status: postcheck.StatusPass, Message: "Title length OK (12 characters)"},
				{Status: postcheck.StatusWarning, Message: "Excessive punctuation detected"},
				{Status: postcheck.StatusFail, Message: "Content too short (3/50 characters)"},
			},
			Score:       33,
			PassCount:   1,
			TotalChecks: 3,
		}

		result := postcheck.FormatReport(report)

		expected := "✓ Title length OK (12 characters)\n" +
			"⚠ Excessive punctuation detected\n" +
			"✗ Content too short (3/50 characters)\n" +
			"\nScore: 33 (low)\n" +
			"1/3 checks passed"
		assert.Equal(t, expected, result)
	})

	t.Run("formats a full default report", func(t *testing.T) {
		t.Parallel()

		report := postcheck.NewDefaultValidator().Validate(goodTitle, goodContent)

		result := postcheck.FormatReport(report)

		assert.Contains(t, result, "✓ No spam keywords detected\n")
		assert.Contains(t, result, "Score: 100 (high)")
		assert.Contains(t, result, "8/8 checks passed")
	})

	t.Run("returns empty string for nil report", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, postcheck.FormatReport(nil))
	})
}

func TestStatus_Symbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✓", postcheck.StatusPass.Symbol())
	assert.Equal(t, "⚠", postcheck.StatusWarning.Symbol())
	assert.Equal(t, "✗", postcheck.StatusFail.Symbol())
}
