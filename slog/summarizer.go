package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczak/govnotice"
)

// Ensure LoggingSummarizer implements govnotice.Summarizer.
var _ govnotice.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with per-call logging.
type LoggingSummarizer struct {
	next   govnotice.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next govnotice.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, title, content string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"title", govnotice.Truncate(title, 80),
			"bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, title, content)
}
