// Package goquery implements vocabcsv.Parser on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vocabcsv"
)

// Default selectors match the WordPress block markup of the source page.
const (
	DefaultHeadingSelector = "h3.wp-block-heading"
	DefaultTableSelector   = "figure.wp-block-table"
	DefaultAsideTag        = "em"
	DefaultEmphasisTag     = "strong"
)

// Ensure Parser implements vocabcsv.Parser at compile time.
var _ vocabcsv.Parser = (*Parser)(nil)

// Parser locates category headings and vocabulary tables in HTML.
type Parser struct {
	headingSelector string
	tableSelector   string
	asideTag        string
	emphasisTag     string
}

// Option configures a Parser.
type Option func(*Parser)

// WithHeadingSelector sets the CSS selector for category headings.
func WithHeadingSelector(selector string) Option {
	return func(p *Parser) {
		p.headingSelector = selector
	}
}

// WithTableSelector sets the CSS selector for vocabulary tables.
func WithTableSelector(selector string) Option {
	return func(p *Parser) {
		p.tableSelector = selector
	}
}

// WithAsideTag sets the inline tag whose content is dropped from examples.
func WithAsideTag(tag string) Option {
	return func(p *Parser) {
		p.asideTag = tag
	}
}

// WithEmphasisTag sets the inline tag that marks the headword in examples.
func WithEmphasisTag(tag string) Option {
	return func(p *Parser) {
		p.emphasisTag = tag
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		headingSelector: DefaultHeadingSelector,
		tableSelector:   DefaultTableSelector,
		asideTag:        DefaultAsideTag,
		emphasisTag:     DefaultEmphasisTag,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the HTML and collects headings and tables in document order.
func (p *Parser) Parse(html string) (vocabcsv.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vocabcsv.Errorf(vocabcsv.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{
		headings: doc.Find(p.headingSelector),
		tables:   doc.Find(p.tableSelector),
		rows:     rowTransformer{asideTag: p.asideTag, emphasisTag: p.emphasisTag},
	}, nil
}

// Ensure Document implements vocabcsv.Document at compile time.
var _ vocabcsv.Document = (*Document)(nil)

// Document pairs the i-th heading with the i-th table of a parsed page.
type Document struct {
	headings *goquery.Selection
	tables   *goquery.Selection
	rows     rowTransformer
}

// Count returns the larger of the heading and table counts.
func (d *Document) Count() int {
	return max(d.headings.Length(), d.tables.Length())
}

// Category builds the i-th category.
func (d *Document) Category(i int) (*vocabcsv.Category, error) {
	if i < 0 || i >= d.Count() {
		return nil, vocabcsv.Errorf(vocabcsv.EINVALID, "category index %d out of range [0, %d)", i, d.Count())
	}
	if i >= d.headings.Length() || i >= d.tables.Length() {
		return nil, vocabcsv.Errorf(vocabcsv.ELAYOUT,
			"category %d: page has %d headings and %d tables", i+1, d.headings.Length(), d.tables.Length())
	}

	heading := d.headings.Eq(i).Text()
	identifier, err := vocabcsv.CategoryIdentifier(heading)
	if err != nil {
		return nil, err
	}

	var entries []*vocabcsv.Entry
	d.tables.Eq(i).Find("tr").Each(func(_ int, row *goquery.Selection) {
		if e := d.rows.transform(row.Find("td")); e != nil {
			entries = append(entries, e)
		}
	})

	return &vocabcsv.Category{
		Heading:    strings.TrimSpace(heading),
		Identifier: identifier,
		Entries:    entries,
	}, nil
}
