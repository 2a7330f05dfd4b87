package postcheck

import (
	"fmt"
	"io"
	"strings"
)

// ReportWriter encodes a report for an output format.
type ReportWriter interface {
	// WriteReport writes report to w. name identifies the checked post,
	// typically the draft file path.
	WriteReport(w io.Writer, name string, report *Report) error
}

// Symbol returns the checklist marker for a status.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarning:
		return "⚠"
	}
	return "✗"
}

// FormatReport renders a report as a checklist followed by the score.
func FormatReport(report *Report) string {
	if report == nil {
		return ""
	}

	var b strings.Builder
	for _, r := range report.Results {
		b.WriteString(r.Status.Symbol() + " " + r.Message + "\n")
	}
	fmt.Fprintf(&b, "\nScore: %d (%s)\n", report.Score, report.Tier())
	fmt.Fprintf(&b, "%d/%d checks passed", report.PassCount, report.TotalChecks)
	return b.String()
}
