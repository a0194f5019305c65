package vocabcsv

import (
	"strings"
	"unicode/utf8"
)

// MinCells is the number of cells a table row needs to produce an Entry.
// Shorter rows are header or incomplete rows and are skipped.
const MinCells = 5

// Entry is one vocabulary word.
type Entry struct {
	Word           string `json:"word"`
	PartOfSpeech   string `json:"partOfSpeech"`
	IPA            string `json:"ipa"`
	Meaning        string `json:"meaning"`
	Example        string `json:"example"`
	ExampleForQuiz string `json:"exampleForQuiz"`
}

// Header returns the column names of an entry record.
func Header() []string {
	return []string{"word", "partOfSpeech", "IPA", "meaning", "example", "exampleForQuiz"}
}

// Record returns the entry's fields in Header order.
func (e *Entry) Record() []string {
	return []string{e.Word, e.PartOfSpeech, e.IPA, e.Meaning, e.Example, e.ExampleForQuiz}
}

var partsOfSpeech = map[string]string{
	"n":   "noun",
	"v":   "verb",
	"adj": "adjective",
	"adv": "adverb",
	"phr": "phrase",
}

// CanonicalPartOfSpeech expands an abbreviated part of speech.
// Matching is case-sensitive; unknown values are returned unchanged.
func CanonicalPartOfSpeech(raw string) string {
	if pos, ok := partsOfSpeech[raw]; ok {
		return pos
	}
	return raw
}

// Blank returns the cloze blank that replaces text in a quiz sentence:
// one underscore per character, padded by a space on each side.
func Blank(text string) string {
	return " " + strings.Repeat("_", utf8.RuneCountInString(text)) + " "
}
