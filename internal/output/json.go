package output

import (
	"encoding/json"
	"io"

	"github.com/jeduden/textstat/internal/analysis"
	"github.com/jeduden/textstat/internal/check"
)

// JSONFormatter outputs results as pretty-printed JSON arrays.
// An empty input produces [].
type JSONFormatter struct{}

type jsonReport struct {
	Path string `json:"path"`
	analysis.Report
}

type jsonKeywords struct {
	Path     string             `json:"path"`
	Keywords []analysis.Keyword `json:"keywords"`
}

type jsonViolation struct {
	File     string `json:"file"`
	MetricID string `json:"metric_id"`
	Metric   string `json:"metric"`
	Message  string `json:"message"`
}

// Reports writes one object per result with the path and the full report.
func (f *JSONFormatter) Reports(w io.Writer, results []Result) error {
	items := make([]jsonReport, 0, len(results))
	for _, r := range results {
		items = append(items, jsonReport{Path: r.Path, Report: r.Report})
	}
	return encode(w, items)
}

// Keywords writes the path and top keywords of each result.
func (f *JSONFormatter) Keywords(w io.Writer, results []Result) error {
	items := make([]jsonKeywords, 0, len(results))
	for _, r := range results {
		kw := r.Report.Keywords
		if kw == nil {
			kw = []analysis.Keyword{}
		}
		items = append(items, jsonKeywords{Path: r.Path, Keywords: kw})
	}
	return encode(w, items)
}

// Violations writes threshold violations.
func (f *JSONFormatter) Violations(w io.Writer, violations []check.Violation) error {
	items := make([]jsonViolation, 0, len(violations))
	for _, v := range violations {
		items = append(items, jsonViolation{
			File:     v.Path,
			MetricID: v.MetricID,
			Metric:   v.Metric,
			Message:  v.Message,
		})
	}
	return encode(w, items)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
