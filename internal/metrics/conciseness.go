package metrics

import (
	"math"
	"strings"

	"github.com/jeduden/textstat/internal/analysis"
	"github.com/jeduden/textstat/internal/tokens"
)

// Hedges and intensifiers that add words without adding meaning.
var fillerWords = map[string]struct{}{
	"actually": {}, "basically": {}, "clearly": {}, "generally": {},
	"just": {}, "kind": {}, "maybe": {}, "might": {}, "pretty": {},
	"quite": {}, "really": {}, "simply": {}, "somewhat": {}, "very": {},
}

// Function words; everything else counts toward lexical density.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "their": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "to": {}, "was": {},
	"we": {}, "were": {}, "will": {}, "with": {}, "you": {}, "your": {},
}

// Wordy phrases matched against the cleaned word stream, so punctuation
// and line breaks between the words do not hide them.
var verbosePhrases = []string{
	"in order to",
	"make sure",
	"on the same page",
	"it is important to note",
	"in most cases",
	"at this point in time",
	"due to the fact that",
}

const (
	densityWeight    = 0.65
	fillerWeight     = 0.35
	longSentence     = 24.0 // words per sentence before the length penalty starts
	lengthPenaltyMax = 22.0
	phraseSaturation = 4.0 // distinct phrases for the full phrase penalty
	phrasePenaltyMax = 15.0
)

// concisenessScore rates a from 0 to 100. Word and sentence counts come from
// the analysis; stop-word and filler ratios are taken over its cleaned words.
// Text without words has no score.
func concisenessScore(a *analysis.Analysis) (float64, bool) {
	if a.WordCount() == 0 {
		return 0, false
	}

	cleaned := tokens.CleanWords(a.Text())
	content, filler := 0, 0
	for _, w := range cleaned {
		if w == "" {
			continue
		}
		if _, ok := stopWords[w]; !ok {
			content++
		}
		if _, ok := fillerWords[w]; ok {
			filler++
		}
	}

	n := float64(a.WordCount())
	base := 100 * (densityWeight*float64(content)/n + fillerWeight*(1-float64(filler)/n))

	perSentence := n / float64(max(a.SentenceCount(), 1))
	lengthPenalty := clamp((perSentence-longSentence)/longSentence, 0, 1)

	phrasePenalty := clamp(float64(phraseHits(cleaned))/phraseSaturation, 0, 1)

	score := base - lengthPenaltyMax*lengthPenalty - phrasePenaltyMax*phrasePenalty
	return math.Round(clamp(score, 0, 100)*10) / 10, true
}

// phraseHits counts the distinct verbose phrases present in words.
func phraseHits(words []string) int {
	stream := " " + strings.Join(words, " ") + " "
	hits := 0
	for _, phrase := range verbosePhrases {
		if strings.Contains(stream, " "+phrase+" ") {
			hits++
		}
	}
	return hits
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
