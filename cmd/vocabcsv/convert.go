package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/vocabcsv/crawl"
)

// ConvertCmd converts one vocabulary page into per-category files.
type ConvertCmd struct {
	URL string
	Out string
}

// Run executes the conversion and prints a summary.
func (c *ConvertCmd) Run(ctx context.Context, deps *Dependencies) error {
	progress := func(p crawl.ProgressEvent) {
		switch p.Type {
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed: %v\n", p.Completed, p.Total, p.Error)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s (%d words)\n", p.Completed, p.Total, p.Identifier, p.Entries)
		}
	}

	result, err := deps.Crawler.Crawl(ctx, c.URL, progress)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "Wrote %d categories (%d words) from %s to %s\n",
			result.Categories, result.Entries, crawl.FormatBytes(result.Bytes), c.Out)
	}
	return err
}
