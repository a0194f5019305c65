// Package fs writes vocabulary categories as delimited files on disk.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/vocabcsv"
)

// DefaultExtension is the file extension used when none is configured.
const DefaultExtension = "csv"

// Ensure Writer implements vocabcsv.CategoryWriter at compile time.
var _ vocabcsv.CategoryWriter = (*Writer)(nil)

// Writer writes each category to <dir>/<identifier>.<ext>.
// Files are written to a temporary file and renamed into place, so a
// failed write never leaves a partial file behind.
type Writer struct {
	dir string
	ext string
}

// Option configures a Writer.
type Option func(*Writer)

// WithExtension sets the output file extension, without the leading dot.
func WithExtension(ext string) Option {
	return func(w *Writer) {
		w.ext = ext
	}
}

// NewWriter creates a new Writer that writes into dir.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{dir: dir, ext: DefaultExtension}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the file path a category is written to.
func (w *Writer) Path(c *vocabcsv.Category) string {
	return filepath.Join(w.dir, c.Identifier+"."+w.ext)
}

// WriteCategory writes the header and one row per entry as UTF-8 CSV.
func (w *Writer) WriteCategory(ctx context.Context, c *vocabcsv.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.dir, c.Identifier+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cw := csv.NewWriter(tmp)
	if err := cw.WriteAll(c.Records()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", c.Identifier, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, w.Path(c)); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
