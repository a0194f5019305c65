package vocabcsv

// Parser turns page HTML into a Document of categories.
type Parser interface {
	// Parse reads the page and locates its headings and tables.
	// Categories are built lazily by Document.Category.
	Parse(html string) (Document, error)
}

// Document is a parsed vocabulary page.
type Document interface {
	// Count returns the number of categories to process: the larger of the
	// heading count and the table count.
	Count() int

	// Category builds the i-th category by pairing the i-th heading with
	// the i-th table. Returns ELAYOUT if either is missing and EINVALID if
	// the heading cannot be turned into an identifier.
	Category(i int) (*Category, error)
}
