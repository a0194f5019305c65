package vocabcsv

import (
	"context"
	"strings"
	"unicode"
)

// Category is one titled group of vocabulary entries and becomes one
// output file.
type Category struct {
	// Heading is the heading text as it appears on the page,
	// e.g. "1. Environment (Môi trường)".
	Heading string `json:"heading"`

	// Identifier is the normalized name used for the output resource,
	// e.g. "environment".
	Identifier string `json:"identifier"`

	// Entries are in table row order.
	Entries []*Entry `json:"entries"`
}

// Validate returns an error if the category cannot be written.
func (c *Category) Validate() error {
	if c.Identifier == "" {
		return Errorf(EINVALID, "category identifier required")
	}
	if strings.IndexFunc(c.Identifier, unicode.IsSpace) >= 0 {
		return Errorf(EINVALID, "category identifier %q contains whitespace", c.Identifier)
	}
	if strings.ContainsAny(c.Identifier, `/\`) {
		return Errorf(EINVALID, "category identifier %q contains a path separator", c.Identifier)
	}
	if strings.ToLower(c.Identifier) != c.Identifier {
		return Errorf(EINVALID, "category identifier %q must be lowercase", c.Identifier)
	}
	return nil
}

// Records returns the header row followed by one record per entry.
func (c *Category) Records() [][]string {
	records := make([][]string, 0, len(c.Entries)+1)
	records = append(records, Header())
	for _, e := range c.Entries {
		records = append(records, e.Record())
	}
	return records
}

// CategoryIdentifier derives an identifier from a heading of the form
// "<n>. <Name> (<Gloss>)". The index before the first ". " and anything
// from the first " (" onward are dropped, whitespace becomes "_" and the
// result is lowercased.
func CategoryIdentifier(heading string) (string, error) {
	_, rest, ok := strings.Cut(strings.TrimSpace(heading), ". ")
	if !ok {
		return "", Errorf(EINVALID, "heading %q: missing index delimiter \". \"", heading)
	}
	name, _, _ := strings.Cut(rest, " (")

	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))

	if name == "" {
		return "", Errorf(EINVALID, "heading %q: empty category name", heading)
	}
	return strings.ToLower(name), nil
}

// CategoryWriter persists a category.
type CategoryWriter interface {
	// WriteCategory writes the category and all of its entries.
	// A category is written as a whole or not at all.
	WriteCategory(ctx context.Context, c *Category) error
}

// CategoryService represents a service for stored categories.
type CategoryService interface {
	CategoryWriter

	// FindCategoryByIdentifier retrieves a category and its entries.
	// Returns ENOTFOUND if the category does not exist.
	FindCategoryByIdentifier(ctx context.Context, identifier string) (*Category, error)

	// FindCategories retrieves all stored categories ordered by identifier.
	// Entries are not loaded.
	FindCategories(ctx context.Context) ([]*Category, error)
}
