package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/vocabcsv"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ vocabcsv.CategoryService = (*CategoryService)(nil)

// CategoryService implements vocabcsv.CategoryService using SQLite.
type CategoryService struct {
	db *DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db *DB) *CategoryService {
	return &CategoryService{db: db}
}

// hashCategory computes an xxHash over the heading and every record.
func hashCategory(c *vocabcsv.Category) string {
	d := xxhash.New()
	_, _ = d.WriteString(c.Heading)
	for _, record := range c.Records() {
		_, _ = d.WriteString("\x1e")
		for _, field := range record {
			_, _ = d.WriteString(field)
			_, _ = d.WriteString("\x1f")
		}
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// WriteCategory inserts or replaces a category and its words by identifier.
// Writing content identical to what is stored is a no-op.
func (s *CategoryService) WriteCategory(ctx context.Context, c *vocabcsv.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	hash := hashCategory(c)
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id, storedHash string
	err = tx.QueryRowContext(ctx, `
		SELECT id, content_hash FROM categories WHERE identifier = ?
	`, c.Identifier).Scan(&id, &storedHash)

	switch {
	case err == sql.ErrNoRows:
		id = uuid.New().String()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, identifier, heading, content_hash, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, c.Identifier, c.Heading, hash, now, now); err != nil {
			return err
		}
	case err != nil:
		return err
	case storedHash == hash:
		return nil
	default:
		if _, err := tx.ExecContext(ctx, `
			UPDATE categories SET heading = ?, content_hash = ?, updated_at = ? WHERE id = ?
		`, c.Heading, hash, now, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE category_id = ?`, id); err != nil {
			return err
		}
	}

	for i, e := range c.Entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO words (id, category_id, position, word, part_of_speech, ipa, meaning, example, example_for_quiz)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), id, i, e.Word, e.PartOfSpeech, e.IPA, e.Meaning, e.Example, e.ExampleForQuiz); err != nil {
			return fmt.Errorf("insert word %q: %w", e.Word, err)
		}
	}

	return tx.Commit()
}

// FindCategoryByIdentifier retrieves a category with its words in table order.
func (s *CategoryService) FindCategoryByIdentifier(ctx context.Context, identifier string) (*vocabcsv.Category, error) {
	var id string
	c := &vocabcsv.Category{Identifier: identifier}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, heading FROM categories WHERE identifier = ?
	`, identifier).Scan(&id, &c.Heading)
	if err == sql.ErrNoRows {
		return nil, vocabcsv.Errorf(vocabcsv.ENOTFOUND, "category %q not found", identifier)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, part_of_speech, ipa, meaning, example, example_for_quiz
		FROM words
		WHERE category_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e vocabcsv.Entry
		if err := rows.Scan(&e.Word, &e.PartOfSpeech, &e.IPA, &e.Meaning, &e.Example, &e.ExampleForQuiz); err != nil {
			return nil, err
		}
		c.Entries = append(c.Entries, &e)
	}

	return c, rows.Err()
}

// FindCategories retrieves all categories without their words.
func (s *CategoryService) FindCategories(ctx context.Context) ([]*vocabcsv.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT identifier, heading FROM categories ORDER BY identifier
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*vocabcsv.Category
	for rows.Next() {
		var c vocabcsv.Category
		if err := rows.Scan(&c.Identifier, &c.Heading); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}
