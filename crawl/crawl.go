// Package crawl provides vocabulary page conversion orchestration.
// It coordinates fetching, parsing, and writing of the categories found
// on a single page.
package crawl

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/vocabcsv"
)

// Crawler orchestrates the conversion of a vocabulary page.
type Crawler struct {
	Fetcher vocabcsv.Fetcher
	Parser  vocabcsv.Parser
	Writer  vocabcsv.CategoryWriter

	// KeepGoing records category failures and continues with the next
	// category instead of aborting the run.
	KeepGoing bool
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Bytes      int
	Categories int
	Entries    int
	Failures   []Failure
}

// Failure records a category that could not be built or written.
// Heading is set only when the category was built and its write failed;
// build errors already name the offending heading or index.
type Failure struct {
	Index   int
	Heading string
	Err     error
}

func (f Failure) Error() string {
	if f.Heading == "" {
		return f.Err.Error()
	}
	return fmt.Sprintf("write %q: %v", f.Heading, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type       ProgressType
	Completed  int
	Total      int
	Identifier string
	Entries    int
	Error      error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressCompleted ProgressType = iota
	ProgressFailed
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl fetches url, parses it, and writes every category in page order.
// The progress callback, if provided, receives one event per category.
func (c *Crawler) Crawl(ctx context.Context, url string, progress ProgressFunc) (*Result, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	doc, err := c.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	result := &Result{Bytes: len(html)}
	total := doc.Count()

	for i := range total {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		cat, err := c.processCategory(ctx, doc, i)
		if err != nil {
			f := Failure{Index: i, Err: err}
			if cat != nil {
				f.Heading = cat.Heading
			}
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					Error:     err,
				})
			}
			if !c.KeepGoing {
				return result, f
			}
			result.Failures = append(result.Failures, f)
			continue
		}

		result.Categories++
		result.Entries += len(cat.Entries)

		if progress != nil {
			progress(ProgressEvent{
				Type:       ProgressCompleted,
				Completed:  i + 1,
				Total:      total,
				Identifier: cat.Identifier,
				Entries:    len(cat.Entries),
			})
		}
	}

	if len(result.Failures) > 0 {
		errs := make([]error, len(result.Failures))
		for i, f := range result.Failures {
			errs[i] = f
		}
		return result, errors.Join(errs...)
	}

	return result, nil
}

// processCategory builds category i and writes it. The category is returned
// alongside a write error so the caller can report its heading.
func (c *Crawler) processCategory(ctx context.Context, doc vocabcsv.Document, i int) (*vocabcsv.Category, error) {
	cat, err := doc.Category(i)
	if err != nil {
		return nil, err
	}
	if err := c.Writer.WriteCategory(ctx, cat); err != nil {
		return cat, err
	}
	return cat, nil
}
