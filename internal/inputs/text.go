package inputs

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jeduden/textstat/internal/mdtext"
)

// StdinName is the display name used for input read from standard input.
const StdinName = "<stdin>"

// TextOptions selects the preprocessing applied before analysis.
type TextOptions struct {
	// Markdown extracts plain text with goldmark.
	Markdown bool
	// FrontMatter strips a leading YAML front matter block.
	FrontMatter bool
}

// StripFrontMatter removes YAML front matter delimited by "---\n"
// from the beginning of source. It returns the front matter block
// (including delimiters) and the remaining content. If no front
// matter is found, prefix is nil and content equals source.
func StripFrontMatter(source []byte) (prefix, content []byte) {
	delim := []byte("---\n")
	if !bytes.HasPrefix(source, delim) {
		return nil, source
	}
	rest := source[len(delim):]
	idx := bytes.Index(rest, delim)
	if idx < 0 {
		return nil, source
	}
	end := len(delim) + idx + len(delim)
	return source[:end], source[end:]
}

// Text converts raw source into the text handed to the analysis engine.
func Text(source []byte, opts TextOptions) string {
	if opts.FrontMatter {
		_, source = StripFrontMatter(source)
	}
	if opts.Markdown {
		return mdtext.FromMarkdown(source)
	}
	return string(source)
}

// ForPath returns opts with Markdown cleared when path is not a Markdown
// file.
func (opts TextOptions) ForPath(path string) TextOptions {
	if !IsMarkdown(path) {
		opts.Markdown = false
	}
	return opts
}

// Input is one named piece of source text.
type Input struct {
	Name   string
	Source []byte
}

// ReadFiles reads each path in order.
func ReadFiles(paths []string) ([]Input, error) {
	out := make([]Input, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		out = append(out, Input{Name: p, Source: data})
	}
	return out, nil
}

// ReadStdin reads all of r as a single input named StdinName.
func ReadStdin(r io.Reader) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, fmt.Errorf("reading stdin: %w", err)
	}
	return Input{Name: StdinName, Source: data}, nil
}
