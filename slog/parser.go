package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/vocabcsv"
)

// Ensure LoggingParser implements vocabcsv.Parser.
var _ vocabcsv.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   vocabcsv.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next vocabcsv.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs how many categories were found.
func (p *LoggingParser) Parse(html string) (doc vocabcsv.Document, err error) {
	defer func(begin time.Time) {
		categories := 0
		if doc != nil {
			categories = doc.Count()
		}
		p.logger.Info("parse",
			"bytes", len(html),
			"categories", categories,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
