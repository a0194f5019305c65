package crawl

import (
	"context"

	"github.com/fwojciec/vocabcsv"
)

// Ensure MultiWriter implements vocabcsv.CategoryWriter.
var _ vocabcsv.CategoryWriter = MultiWriter(nil)

// MultiWriter writes each category to every writer in order and stops at
// the first error.
type MultiWriter []vocabcsv.CategoryWriter

// WriteCategory implements vocabcsv.CategoryWriter.
func (m MultiWriter) WriteCategory(ctx context.Context, c *vocabcsv.Category) error {
	for _, w := range m {
		if err := w.WriteCategory(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
