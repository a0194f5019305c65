package mock

import "github.com/fwojciec/vocabcsv"

// Compile-time interface verification.
var (
	_ vocabcsv.Parser   = (*Parser)(nil)
	_ vocabcsv.Document = (*Document)(nil)
)

// Parser is a mock implementation of vocabcsv.Parser.
type Parser struct {
	ParseFn func(html string) (vocabcsv.Document, error)
}

func (p *Parser) Parse(html string) (vocabcsv.Document, error) {
	return p.ParseFn(html)
}

// Document is a mock implementation of vocabcsv.Document.
type Document struct {
	CountFn    func() int
	CategoryFn func(i int) (*vocabcsv.Category, error)
}

func (d *Document) Count() int {
	return d.CountFn()
}

func (d *Document) Category(i int) (*vocabcsv.Category, error) {
	return d.CategoryFn(i)
}
