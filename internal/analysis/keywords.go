package analysis

import (
	"sort"

	"github.com/jeduden/textstat/internal/tokens"
)

// DefaultKeywordCount is the number of keywords reported when the caller
// does not ask for a specific count.
const DefaultKeywordCount = 10

// minKeywordLen is the shortest cleaned word, in bytes, that is counted.
const minKeywordLen = 3

// Keyword is a cleaned word and the number of times it occurs.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func wordFrequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range tokens.CleanWords(text) {
		if len(w) >= minKeywordLen {
			freq[w]++
		}
	}
	return freq
}

// DistinctKeywords returns the number of distinct words that qualify as
// keywords.
func (a *Analysis) DistinctKeywords() int {
	return len(a.frequency)
}

// TopKeywords returns up to n keywords ordered by count, highest first.
// Words with equal counts are ordered alphabetically. A non-positive n
// returns an empty slice.
func (a *Analysis) TopKeywords(n int) []Keyword {
	if n <= 0 {
		return []Keyword{}
	}

	ranked := make([]Keyword, 0, len(a.frequency))
	for w, c := range a.frequency {
		ranked = append(ranked, Keyword{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
