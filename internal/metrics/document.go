package metrics

import (
	"bytes"

	"github.com/jeduden/textstat/internal/analysis"
	"github.com/jeduden/textstat/internal/inputs"
)

// Document is the shared metric input for a single file.
// The extracted text and its analysis are computed lazily and cached.
type Document struct {
	Path   string
	Source []byte

	opts inputs.TextOptions

	plainText      string
	plainTextReady bool

	analysis *analysis.Analysis
}

// NewDocument constructs a Document wrapper for metric computation.
// Markdown extraction only applies when path has a Markdown extension.
func NewDocument(path string, source []byte, opts inputs.TextOptions) *Document {
	return &Document{
		Path:   path,
		Source: source,
		opts:   opts.ForPath(path),
	}
}

// ByteCount returns raw file byte count.
func (d *Document) ByteCount() int {
	return len(d.Source)
}

// LineCount returns content line count.
func (d *Document) LineCount() int {
	if len(d.Source) == 0 {
		return 0
	}
	lines := bytes.Count(d.Source, []byte("\n"))
	if d.Source[len(d.Source)-1] != '\n' {
		lines++
	}
	return lines
}

// PlainText returns the text handed to the analysis engine.
func (d *Document) PlainText() string {
	if !d.plainTextReady {
		d.plainText = inputs.Text(d.Source, d.opts)
		d.plainTextReady = true
	}
	return d.plainText
}

// Analysis returns the analysis of PlainText.
func (d *Document) Analysis() *analysis.Analysis {
	if d.analysis == nil {
		d.analysis = analysis.New(d.PlainText())
	}
	return d.analysis
}
