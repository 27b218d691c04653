package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jeduden/textstat/internal/analysis"
	"github.com/jeduden/textstat/internal/check"
)

const (
	cyan   = "\033[36m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

// TextFormatter outputs results in human-readable text format.
// When Color is true, paths are printed in cyan and metric IDs in yellow.
type TextFormatter struct {
	Color bool
}

func (f *TextFormatter) paint(color, s string) string {
	if !f.Color {
		return s
	}
	return color + s + reset
}

// Reports writes a block of aligned "name value" lines per result,
// separated by blank lines.
func (f *TextFormatter) Reports(w io.Writer, results []Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, f.paint(cyan, r.Path)); err != nil {
			return err
		}

		rep := r.Report
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		rows := [][2]string{
			{"words", fmt.Sprint(rep.WordCount)},
			{"characters", fmt.Sprint(rep.CharacterCount)},
			{"sentences", fmt.Sprint(rep.SentenceCount)},
			{"paragraphs", fmt.Sprint(rep.ParagraphCount)},
			{"syllables", fmt.Sprint(rep.SyllableCount)},
			{"readability", fmt.Sprintf("%.1f (%s)", rep.Readability.Grade, rep.Readability.Label)},
			{"sentiment", fmt.Sprintf("%.2f (%s)", rep.Sentiment.Score, rep.Sentiment.Polarity)},
			{"keywords", joinKeywords(rep.Keywords)},
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(tw, "  %s\t%s\n", row[0], row[1]); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Keywords writes each result's path followed by "count word" lines.
func (f *TextFormatter) Keywords(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, f.paint(cyan, r.Path)); err != nil {
			return err
		}
		for _, kw := range r.Report.Keywords {
			if _, err := fmt.Fprintf(w, "%6d %s\n", kw.Count, kw.Word); err != nil {
				return err
			}
		}
	}
	return nil
}

// Violations writes each violation as a single line in the pattern:
// path metric-id message
func (f *TextFormatter) Violations(w io.Writer, violations []check.Violation) error {
	for _, v := range violations {
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			f.paint(cyan, v.Path), f.paint(yellow, v.MetricID), v.Message); err != nil {
			return err
		}
	}
	return nil
}

func joinKeywords(kws []analysis.Keyword) string {
	if len(kws) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(kws))
	for _, kw := range kws {
		parts = append(parts, fmt.Sprintf("%s (%d)", kw.Word, kw.Count))
	}
	return strings.Join(parts, ", ")
}
