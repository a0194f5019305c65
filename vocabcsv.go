// Package vocabcsv converts a vocabulary webpage into per-category record
// files. The page groups words under numbered headings, each followed by a
// table of word, part of speech, IPA, meaning and example sentence.
//
// This package contains domain types, interfaces and the pure text
// transforms, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, sqlite/).
package vocabcsv
