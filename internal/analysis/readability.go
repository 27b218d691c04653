package analysis

import "github.com/jeduden/textstat/internal/tokens"

// GradeFunc computes a readability grade level from plain text.
// Higher values mean harder to read.
type GradeFunc func(text string) float64

// FleschKincaid computes the Flesch-Kincaid grade level of text.
// Formula: 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
// Returns 0 when text has no words or no sentences.
func FleschKincaid(text string) float64 {
	return fleschKincaid(
		tokens.CountWords(text),
		tokens.CountSentences(text),
		tokens.CountSyllables(text),
	)
}

func fleschKincaid(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	return 0.39*float64(words)/float64(sentences) +
		11.8*float64(syllables)/float64(words) -
		15.59
}

// Readability returns the Flesch-Kincaid grade of the analysed text using
// the cached word and sentence counts. The result is not clamped and is
// negative for very short, simple text.
func (a *Analysis) Readability() float64 {
	if a.wordCount == 0 || a.sentenceCount == 0 {
		return 0
	}
	return fleschKincaid(a.wordCount, a.sentenceCount, a.Syllables())
}

// Level is a coarse reading difficulty band.
type Level string

const (
	// LevelVeryEasy is any grade below 6.
	LevelVeryEasy Level = "very-easy"
	// LevelEasy is a grade from 6 up to 10.
	LevelEasy Level = "easy"
	// LevelModerate is a grade from 10 up to 14.
	LevelModerate Level = "moderately-difficult"
	// LevelDifficult is a grade of 14 or more.
	LevelDifficult Level = "difficult"
)

// ReadabilityLevel maps a grade to its difficulty band.
func ReadabilityLevel(grade float64) Level {
	switch {
	case grade < 6:
		return LevelVeryEasy
	case grade < 10:
		return LevelEasy
	case grade < 14:
		return LevelModerate
	default:
		return LevelDifficult
	}
}

// Label returns the human-readable description of l.
func (l Level) Label() string {
	switch l {
	case LevelVeryEasy:
		return "Very easy to read"
	case LevelEasy:
		return "Easy to read"
	case LevelModerate:
		return "Moderately difficult"
	case LevelDifficult:
		return "Difficult to read"
	}
	return string(l)
}
