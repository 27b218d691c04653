// Package check compares analyzed documents against configured thresholds.
package check

import (
	"fmt"
	"math"

	"github.com/jeduden/textstat/internal/config"
	"github.com/jeduden/textstat/internal/metrics"
)

// Violation is a single threshold breach for one input.
type Violation struct {
	Path     string
	MetricID string
	Metric   string
	Message  string
}

// Evaluate returns the violations of th for doc. Documents with fewer
// words than th.MinWords are too short to judge and are skipped.
func Evaluate(doc *metrics.Document, th config.Thresholds) []Violation {
	if th.Disabled {
		return nil
	}

	a := doc.Analysis()
	if th.MinWords != nil && a.WordCount() < *th.MinWords {
		return nil
	}

	var out []Violation
	if th.MaxGrade != nil && a.SentenceCount() > 0 && a.WordCount() > 0 {
		grade := math.Round(a.Readability()*10) / 10
		if grade > *th.MaxGrade {
			out = append(out, violation(doc.Path, "readability", fmt.Sprintf(
				"readability grade too high (%.1f > %.1f)", grade, *th.MaxGrade,
			)))
		}
	}

	if th.MinSentiment != nil {
		score := math.Round(a.Sentiment()*100) / 100
		if score < *th.MinSentiment {
			out = append(out, violation(doc.Path, "sentiment", fmt.Sprintf(
				"sentiment too low (%.2f < %.2f)", score, *th.MinSentiment,
			)))
		}
	}
	return out
}

func violation(path, metric, msg string) Violation {
	v := Violation{Path: path, Metric: metric, Message: msg}
	if def, ok := metrics.Lookup(metric); ok {
		v.MetricID = def.ID
	}
	return v
}
