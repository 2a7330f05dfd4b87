package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/postcheck"
)

// Ensure LoggingTitleExtractor implements postcheck.TitleExtractor.
var _ postcheck.TitleExtractor = (*LoggingTitleExtractor)(nil)

// LoggingTitleExtractor wraps a TitleExtractor with logging.
type LoggingTitleExtractor struct {
	next   postcheck.TitleExtractor
	logger *slog.Logger
}

// NewLoggingTitleExtractor creates a new LoggingTitleExtractor.
func NewLoggingTitleExtractor(next postcheck.TitleExtractor, logger *slog.Logger) *LoggingTitleExtractor {
	return &LoggingTitleExtractor{next: next, logger: logger}
}

// ExtractTitle delegates to the wrapped extractor and logs the outcome.
func (e *LoggingTitleExtractor) ExtractTitle(html string) (result *postcheck.TitleResult) {
	defer func(begin time.Time) {
		e.logger.Info("title extraction",
			"bytes", len(html),
			"title", result.Title,
			"success", result.Success,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractTitle(html)
}
