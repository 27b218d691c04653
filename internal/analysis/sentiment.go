package analysis

import "github.com/jeduden/textstat/internal/tokens"

var positiveWords = map[string]struct{}{
	"good":     {}, "great": {}, "excellent": {}, "happy": {},
	"positive": {}, "wonderful": {}, "best": {}, "love": {},
}

var negativeWords = map[string]struct{}{
	"bad":      {}, "awful": {}, "terrible": {}, "sad": {},
	"negative": {}, "worst": {}, "hate": {}, "poor": {},
}

// Sentiment scores the text in [-1, 1]. Each cleaned word found in the
// positive set adds one, each word in the negative set subtracts one, and
// the sum is divided by the number of matched words. Unmatched words do not
// count. Text without any match scores 0.
func (a *Analysis) Sentiment() float64 {
	return sentimentScore(a.text)
}

func sentimentScore(text string) float64 {
	score, matched := 0, 0
	for _, w := range tokens.CleanWords(text) {
		if _, ok := positiveWords[w]; ok {
			score++
			matched++
		} else if _, ok := negativeWords[w]; ok {
			score--
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return float64(score) / float64(matched)
}

// Polarity is the coarse direction of a sentiment score.
type Polarity string

const (
	// Negative is any score below -0.3.
	Negative Polarity = "negative"
	// Neutral is a score from -0.3 to 0.3 inclusive.
	Neutral Polarity = "neutral"
	// Positive is any score above 0.3.
	Positive Polarity = "positive"
)

// SentimentLabel maps a score to a polarity. Scores within 0.3 of zero
// are neutral.
func SentimentLabel(score float64) Polarity {
	switch {
	case score < -0.3:
		return Negative
	case score > 0.3:
		return Positive
	default:
		return Neutral
	}
}
