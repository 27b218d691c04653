// Package tokens holds the counting primitives shared by the analysis
// engine and the metrics registry. Every function is a pure transform over
// a string and never fails.
package tokens

import (
	"strings"
	"unicode"
)

// Words splits text into maximal runs of non-whitespace characters.
func Words(text string) []string {
	return strings.Fields(text)
}

// CountWords counts whitespace-delimited words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountCharacters counts runes that are not whitespace. Invalid UTF-8 bytes
// count as one character each.
func CountCharacters(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences splits text on each '.', '!' and '?' and returns the
// trimmed segments that are not blank. Terminators are removed.
func SplitSentences(text string) []string {
	return nonBlank(strings.FieldsFunc(text, isTerminator))
}

// CountSentences counts the segments returned by SplitSentences. Text
// without any terminator is one sentence as long as it is not blank.
func CountSentences(text string) int {
	return len(SplitSentences(text))
}

// SplitParagraphs splits text on a blank line ("\n\n") and returns the
// trimmed segments that are not blank.
func SplitParagraphs(text string) []string {
	return nonBlank(strings.Split(text, "\n\n"))
}

// CountParagraphs counts the segments returned by SplitParagraphs.
func CountParagraphs(text string) int {
	return len(SplitParagraphs(text))
}

func nonBlank(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Clean lowercases word and strips leading and trailing runes that are not
// alphabetic. Interior punctuation and digits are kept, so "don't" stays
// "don't" and "(v2.0)" becomes "v2".
func Clean(word string) string {
	return strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return !isAlphabetic(r)
	})
}

// isAlphabetic reports whether r has the Unicode Alphabetic property:
// letters, letter numbers such as Roman numerals, and combining marks like
// Indic vowel signs.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)
}

// CleanWords returns Clean applied to every word of text, including the
// empty results of words made only of non-letters.
func CleanWords(text string) []string {
	words := strings.Fields(text)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Clean(w)
	}
	return out
}
