// Package analysis computes descriptive statistics over a block of
// natural-language text: word, character, sentence and paragraph counts, a
// Flesch-Kincaid readability grade, ranked keyword frequency, and a coarse
// sentiment polarity.
//
// An Analysis is built once by New and never changes afterwards, so it can
// be shared between goroutines without locking. No operation returns an
// error: empty or degenerate input yields zero or neutral values.
package analysis

import (
	"strings"

	"github.com/jeduden/textstat/internal/tokens"
)

// Analysis holds trimmed input text and the statistics derived from it.
type Analysis struct {
	text           string
	wordCount      int
	characterCount int
	sentenceCount  int
	paragraphCount int
	frequency      map[string]int
}

// New trims leading and trailing whitespace from text and computes all
// counts and the keyword frequency table.
func New(text string) *Analysis {
	cleaned := strings.TrimSpace(text)
	return &Analysis{
		text:           cleaned,
		wordCount:      tokens.CountWords(cleaned),
		characterCount: tokens.CountCharacters(cleaned),
		sentenceCount:  tokens.CountSentences(cleaned),
		paragraphCount: tokens.CountParagraphs(cleaned),
		frequency:      wordFrequency(cleaned),
	}
}

// Text returns the trimmed text the analysis was built from.
func (a *Analysis) Text() string { return a.text }

// WordCount returns the number of whitespace-delimited words.
func (a *Analysis) WordCount() int { return a.wordCount }

// CharacterCount returns the number of non-whitespace characters.
func (a *Analysis) CharacterCount() int { return a.characterCount }

// SentenceCount returns the number of non-blank segments between
// '.', '!' and '?'.
func (a *Analysis) SentenceCount() int { return a.sentenceCount }

// ParagraphCount returns the number of non-blank segments between blank
// lines.
func (a *Analysis) ParagraphCount() int { return a.paragraphCount }

// Syllables returns the estimated syllable total of the text. It is
// recomputed on every call.
func (a *Analysis) Syllables() int {
	return tokens.CountSyllables(a.text)
}

// Snapshot is the serialisable form of an Analysis: the trimmed text and
// its four counts. Keyword frequency is not part of it.
type Snapshot struct {
	Text           string `json:"text"`
	WordCount      int    `json:"word_count"`
	CharacterCount int    `json:"character_count"`
	SentenceCount  int    `json:"sentence_count"`
	ParagraphCount int    `json:"paragraph_count"`
}

// Snapshot returns the scalar fields of a.
func (a *Analysis) Snapshot() Snapshot {
	return Snapshot{
		Text:           a.text,
		WordCount:      a.wordCount,
		CharacterCount: a.characterCount,
		SentenceCount:  a.sentenceCount,
		ParagraphCount: a.paragraphCount,
	}
}

// Analyze is the one-shot form of New(text).Snapshot().
func Analyze(text string) Snapshot {
	return New(text).Snapshot()
}
