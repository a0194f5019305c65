package crawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/vocabcsv"
	"github.com/fwojciec/vocabcsv/crawl"
	"github.com/fwojciec/vocabcsv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiWriter_WriteCategory(t *testing.T) {
	t.Parallel()

	t.Run("writes to every writer in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mock.CategoryWriter {
			return &mock.CategoryWriter{
				WriteCategoryFn: func(_ context.Context, _ *vocabcsv.Category) error {
					order = append(order, name)
					return nil
				},
			}
		}
		w := crawl.MultiWriter{record("csv"), record("sqlite")}

		err := w.WriteCategory(context.Background(), &vocabcsv.Category{Identifier: "health"})

		require.NoError(t, err)
		assert.Equal(t, []string{"csv", "sqlite"}, order)
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		writeErr := errors.New("disk full")
		called := false
		w := crawl.MultiWriter{
			&mock.CategoryWriter{
				WriteCategoryFn: func(_ context.Context, _ *vocabcsv.Category) error { return writeErr },
			},
			&mock.CategoryWriter{
				WriteCategoryFn: func(_ context.Context, _ *vocabcsv.Category) error {
					called = true
					return nil
				},
			},
		}

		err := w.WriteCategory(context.Background(), &vocabcsv.Category{Identifier: "health"})

		require.ErrorIs(t, err, writeErr)
		assert.False(t, called)
	})
}
