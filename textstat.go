// Package textstat computes simple statistics over a block of text: word,
// character, sentence and paragraph counts, a Flesch-Kincaid readability
// grade, the most frequent keywords and a word-list sentiment score.
//
//	a := textstat.New("Go is great. Tests help!")
//	fmt.Println(a.WordCount(), a.Readability(), a.TopKeywords(3))
package textstat

import "github.com/jeduden/textstat/internal/analysis"

type (
	// Analysis is an immutable analysis of one trimmed text.
	Analysis = analysis.Analysis
	// Snapshot holds the scalar results of an analysis.
	Snapshot = analysis.Snapshot
	// Keyword is a cleaned word and its occurrence count.
	Keyword = analysis.Keyword
	// Report bundles every result of an analysis.
	Report = analysis.Report
	// Level is a readability band.
	Level = analysis.Level
	// Polarity is a sentiment label.
	Polarity = analysis.Polarity
)

// DefaultKeywordCount is the number of keywords reported when none is given.
const DefaultKeywordCount = analysis.DefaultKeywordCount

// New analyzes text. It never fails; empty input yields zero counts.
func New(text string) *Analysis {
	return analysis.New(text)
}

// Analyze returns the scalar snapshot of text in one call.
func Analyze(text string) Snapshot {
	return analysis.Analyze(text)
}

// ReadabilityLevel maps a Flesch-Kincaid grade to its band.
func ReadabilityLevel(grade float64) Level {
	return analysis.ReadabilityLevel(grade)
}

// SentimentLabel maps a sentiment score to its polarity.
func SentimentLabel(score float64) Polarity {
	return analysis.SentimentLabel(score)
}
