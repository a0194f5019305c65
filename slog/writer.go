package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vocabcsv"
)

// Ensure LoggingCategoryWriter implements vocabcsv.CategoryWriter.
var _ vocabcsv.CategoryWriter = (*LoggingCategoryWriter)(nil)

// LoggingCategoryWriter wraps a CategoryWriter with logging.
type LoggingCategoryWriter struct {
	next   vocabcsv.CategoryWriter
	logger *slog.Logger
}

// NewLoggingCategoryWriter creates a new LoggingCategoryWriter.
func NewLoggingCategoryWriter(next vocabcsv.CategoryWriter, logger *slog.Logger) *LoggingCategoryWriter {
	return &LoggingCategoryWriter{next: next, logger: logger}
}

// WriteCategory delegates to the wrapped writer and logs the category size.
func (w *LoggingCategoryWriter) WriteCategory(ctx context.Context, c *vocabcsv.Category) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write category",
			"identifier", c.Identifier,
			"entries", len(c.Entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteCategory(ctx, c)
}
