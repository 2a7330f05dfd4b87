package mock

import (
	"io"

	"github.com/fwojciec/postcheck"
)

var _ postcheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of postcheck.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(w io.Writer, name string, report *postcheck.Report) error
}

func (rw *ReportWriter) WriteReport(w io.Writer, name string, report *postcheck.Report) error {
	return rw.WriteReportFn(w, name, report)
}
