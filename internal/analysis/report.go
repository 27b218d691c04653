package analysis

// Report is a complete analysis result as emitted by the command line and
// HTTP front ends.
type Report struct {
	Snapshot
	SyllableCount int               `json:"syllable_count"`
	Readability   ReadabilityResult `json:"readability"`
	Sentiment     SentimentResult   `json:"sentiment"`
	Keywords      []Keyword         `json:"keywords"`
}

// ReadabilityResult is a grade together with its difficulty band.
type ReadabilityResult struct {
	Grade float64 `json:"grade"`
	Level Level   `json:"level"`
	Label string  `json:"label"`
}

// SentimentResult is a sentiment score together with its polarity.
type SentimentResult struct {
	Score    float64  `json:"score"`
	Polarity Polarity `json:"polarity"`
}

// Report builds a Report with up to keywords top keywords.
func (a *Analysis) Report(keywords int) Report {
	grade := a.Readability()
	level := ReadabilityLevel(grade)
	score := a.Sentiment()
	return Report{
		Snapshot:      a.Snapshot(),
		SyllableCount: a.Syllables(),
		Readability: ReadabilityResult{
			Grade: grade,
			Level: level,
			Label: level.Label(),
		},
		Sentiment: SentimentResult{
			Score:    score,
			Polarity: SentimentLabel(score),
		},
		Keywords: a.TopKeywords(keywords),
	}
}
