// Package etree writes validation reports as JUnit XML so draft checks can
// run in CI systems that understand test reports.
package etree

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/postcheck"
)

// Ensure ReportWriter implements postcheck.ReportWriter at compile time.
var _ postcheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter encodes reports as a JUnit <testsuites> document with one
// testcase per check. Failures become <failure> elements and warnings become
// <skipped> so they show up without failing the build.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport writes report to w as JUnit XML using name as the suite name.
func (rw *ReportWriter) WriteReport(w io.Writer, name string, report *postcheck.Report) error {
	if report == nil {
		return postcheck.Errorf(postcheck.EINVALID, "report required")
	}

	var failures, skipped int
	for _, r := range report.Results {
		switch r.Status {
		case postcheck.StatusFail:
			failures++
		case postcheck.StatusWarning:
			skipped++
		}
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	suites := doc.CreateElement("testsuites")
	suite := suites.CreateElement("testsuite")
	suite.CreateAttr("name", name)
	suite.CreateAttr("tests", strconv.Itoa(report.TotalChecks))
	suite.CreateAttr("failures", strconv.Itoa(failures))
	suite.CreateAttr("skipped", strconv.Itoa(skipped))

	props := suite.CreateElement("properties")
	addProperty(props, "score", strconv.Itoa(report.Score))
	addProperty(props, "tier", string(report.Tier()))
	addProperty(props, "passed", fmt.Sprintf("%d/%d", report.PassCount, report.TotalChecks))

	for _, r := range report.Results {
		tc := suite.CreateElement("testcase")
		tc.CreateAttr("classname", "postcheck")
		tc.CreateAttr("name", r.Rule)

		switch r.Status {
		case postcheck.StatusFail:
			f := tc.CreateElement("failure")
			f.CreateAttr("type", string(r.Status))
			f.CreateAttr("message", r.Message)
		case postcheck.StatusWarning:
			s := tc.CreateElement("skipped")
			s.CreateAttr("message", r.Message)
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing JUnit report: %w", err)
	}
	return nil
}

func addProperty(props *etree.Element, name, value string) {
	p := props.CreateElement("property")
	p.CreateAttr("name", name)
	p.CreateAttr("value", value)
}
