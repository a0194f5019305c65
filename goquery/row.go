package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vocabcsv"
	"golang.org/x/net/html"
)

// rowTransformer turns the cells of one table row into an Entry.
type rowTransformer struct {
	asideTag    string
	emphasisTag string
}

// transform returns nil for rows with fewer than vocabcsv.MinCells cells.
func (t rowTransformer) transform(cells *goquery.Selection) *vocabcsv.Entry {
	if cells.Length() < vocabcsv.MinCells {
		return nil
	}

	example, quiz := t.examples(cells.Eq(4))

	return &vocabcsv.Entry{
		Word:           cellText(cells.Eq(0)),
		PartOfSpeech:   vocabcsv.CanonicalPartOfSpeech(cellText(cells.Eq(1))),
		IPA:            cellText(cells.Eq(2)),
		Meaning:        cellText(cells.Eq(3)),
		Example:        example,
		ExampleForQuiz: quiz,
	}
}

// examples derives the plain and cloze variants of an example cell.
// Each variant is computed on its own copy so the page tree is left intact.
func (t rowTransformer) examples(cell *goquery.Selection) (example, quiz string) {
	cleaned := cell.Clone()
	cleaned.Find(t.asideTag).Remove()
	example = strings.TrimSpace(cleaned.Text())

	masked := cleaned.Clone()
	masked.Find(t.emphasisTag).Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(&html.Node{
			Type: html.TextNode,
			Data: vocabcsv.Blank(s.Text()),
		})
	})
	quiz = strings.TrimSpace(masked.Text())

	return example, quiz
}

func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
