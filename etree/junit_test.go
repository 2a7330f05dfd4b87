package etree_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/postcheck"
	pcetree "github.com/fwojciec/postcheck/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	report := &postcheck.Report{
		Results: []postcheck.CheckResult{
			{Rule: "Title minimum length", Status: postcheck.StatusFail, Message: "Title too short (5/10 characters)"},
			{Rule: "Avoid excessive punctuation", Status: postcheck.StatusWarning, Message: "Excessive punctuation detected"},
			{Rule: "Excessive links", Status: postcheck.StatusPass, Message: "Link count appropriate (0 links)"},
		},
		Score:       33,
		PassCount:   1,
		TotalChecks: 3,
	}

	t.Run("writes one testcase per check", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := pcetree.NewReportWriter().WriteReport(&buf, "drafts/post.md", report)
		require.NoError(t, err)

		doc := etree.NewDocument()
		_, err = doc.ReadFrom(&buf)
		require.NoError(t, err)

		suite := doc.FindElement("./testsuites/testsuite")
		require.NotNil(t, suite)
		assert.Equal(t, "drafts/post.md", suite.SelectAttrValue("name", ""))
		assert.Equal(t, "3", suite.SelectAttrValue("tests", ""))
		assert.Equal(t, "1", suite.SelectAttrValue("failures", ""))
		assert.Equal(t, "1", suite.SelectAttrValue("skipped", ""))

		cases := suite.SelectElements("testcase")
		require.Len(t, cases, 3)

		failure := cases[0].SelectElement("failure")
		require.NotNil(t, failure)
		assert.Equal(t, "Title too short (5/10 characters)", failure.SelectAttrValue("message", ""))

		skipped := cases[1].SelectElement("skipped")
		require.NotNil(t, skipped)
		assert.Equal(t, "Excessive punctuation detected", skipped.SelectAttrValue("message", ""))

		assert.Empty(t, cases[2].ChildElements())
		assert.Equal(t, "Excessive links", cases[2].SelectAttrValue("name", ""))
	})

	t.Run("records score and tier as properties", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, pcetree.NewReportWriter().WriteReport(&buf, "post", report))

		doc := etree.NewDocument()
		_, err := doc.ReadFrom(&buf)
		require.NoError(t, err)

		score := doc.FindElement("//property[@name='score']")
		require.NotNil(t, score)
		assert.Equal(t, "33", score.SelectAttrValue("value", ""))

		tier := doc.FindElement("//property[@name='tier']")
		require.NotNil(t, tier)
		assert.Equal(t, "low", tier.SelectAttrValue("value", ""))
	})

	t.Run("returns EINVALID for nil report", func(t *testing.T) {
		t.Parallel()

		err := pcetree.NewReportWriter().WriteReport(&bytes.Buffer{}, "post", nil)

		assert.Equal(t, postcheck.EINVALID, postcheck.ErrorCode(err))
	})

	t.Run("wraps write errors", func(t *testing.T) {
		t.Parallel()

		err := pcetree.NewReportWriter().WriteReport(failingWriter{}, "post", report)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing JUnit report")
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
