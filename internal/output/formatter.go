package output

import (
	"io"

	"github.com/jeduden/textstat/internal/analysis"
	"github.com/jeduden/textstat/internal/check"
)

// Result pairs an input name with its analysis report.
type Result struct {
	Path   string
	Report analysis.Report
}

// Formatter defines the interface for writing command results.
type Formatter interface {
	Reports(w io.Writer, results []Result) error
	Keywords(w io.Writer, results []Result) error
	Violations(w io.Writer, violations []check.Violation) error
}

// New returns the formatter for format ("text" or "json").
func New(format string, color bool) (Formatter, bool) {
	switch format {
	case "text":
		return &TextFormatter{Color: color}, true
	case "json":
		return &JSONFormatter{}, true
	default:
		return nil, false
	}
}
