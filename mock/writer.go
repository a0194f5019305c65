package mock

import (
	"context"

	"github.com/fwojciec/vocabcsv"
)

// Compile-time interface verification.
var (
	_ vocabcsv.CategoryWriter  = (*CategoryWriter)(nil)
	_ vocabcsv.CategoryService = (*CategoryService)(nil)
)

// CategoryWriter is a mock implementation of vocabcsv.CategoryWriter.
type CategoryWriter struct {
	WriteCategoryFn func(ctx context.Context, c *vocabcsv.Category) error
}

func (w *CategoryWriter) WriteCategory(ctx context.Context, c *vocabcsv.Category) error {
	return w.WriteCategoryFn(ctx, c)
}

// CategoryService is a mock implementation of vocabcsv.CategoryService.
type CategoryService struct {
	WriteCategoryFn            func(ctx context.Context, c *vocabcsv.Category) error
	FindCategoryByIdentifierFn func(ctx context.Context, identifier string) (*vocabcsv.Category, error)
	FindCategoriesFn           func(ctx context.Context) ([]*vocabcsv.Category, error)
}

func (s *CategoryService) WriteCategory(ctx context.Context, c *vocabcsv.Category) error {
	return s.WriteCategoryFn(ctx, c)
}

func (s *CategoryService) FindCategoryByIdentifier(ctx context.Context, identifier string) (*vocabcsv.Category, error) {
	return s.FindCategoryByIdentifierFn(ctx, identifier)
}

func (s *CategoryService) FindCategories(ctx context.Context) ([]*vocabcsv.Category, error) {
	return s.FindCategoriesFn(ctx)
}
