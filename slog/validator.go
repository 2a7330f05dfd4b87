// Package slog provides log/slog decorators for postcheck services.
package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/postcheck"
)

// Ensure LoggingValidator implements postcheck.PostValidator.
var _ postcheck.PostValidator = (*LoggingValidator)(nil)

// LoggingValidator wraps a PostValidator with logging of each run.
type LoggingValidator struct {
	next   postcheck.PostValidator
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator.
func NewLoggingValidator(next postcheck.PostValidator, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, logger: logger}
}

// Validate delegates to the wrapped validator and logs the score and any
// check that did not pass.
func (v *LoggingValidator) Validate(title, content string) *postcheck.Report {
	begin := time.Now()
	report := v.next.Validate(title, content)

	for _, r := range report.Results {
		if r.Passed() {
			continue
		}
		v.logger.Debug("check not passed",
			"rule", r.Rule,
			"status", string(r.Status),
			"message", r.Message,
		)
	}
	v.logger.Info("validate",
		"title_chars", utf8.RuneCountInString(title),
		"content_chars", utf8.RuneCountInString(content),
		"score", report.Score,
		"passed", report.PassCount,
		"total", report.TotalChecks,
		"duration", time.Since(begin),
	)
	return report
}
