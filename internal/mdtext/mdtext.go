// Package mdtext turns a goldmark AST into the plain prose that text
// statistics are computed over.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse parses source as Markdown with the default goldmark parser.
func Parse(source []byte) ast.Node {
	return goldmark.DefaultParser().Parse(text.NewReader(source))
}

// FromMarkdown parses source and returns its plain text. Each prose block
// (paragraph, heading, tight list item) becomes its own paragraph in the
// result, separated by a blank line.
func FromMarkdown(source []byte) string {
	return ExtractPlainText(Parse(source), source)
}

// ExtractPlainText returns the visible text below node with inline markup
// removed. Link and image text is kept, code spans keep their content,
// code blocks and raw HTML are dropped. Soft line breaks become spaces.
func ExtractPlainText(node ast.Node, source []byte) string {
	var (
		blocks []string
		buf    strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			blocks = append(blocks, s)
		}
		buf.Reset()
	}

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch v := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				flush()
			}
		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			buf.Write(v.Segment.Value(source))
			switch {
			case v.HardLineBreak():
				buf.WriteByte('\n')
			case v.SoftLineBreak():
				buf.WriteByte(' ')
			}
		case *ast.String:
			if entering {
				buf.Write(v.Value)
			}
		case *ast.AutoLink:
			if entering {
				buf.Write(v.Label(source))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	flush()

	return strings.Join(blocks, "\n\n")
}
