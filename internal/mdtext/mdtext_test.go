package mdtext_test

import (
	"testing"

	"github.com/jeduden/textstat/internal/mdtext"
	"github.com/yuin/goldmark/ast"
)

// parseParagraph parses markdown and returns the first Paragraph node.
func parseParagraph(t *testing.T, src string) (ast.Node, []byte) {
	t.Helper()
	source := []byte(src)
	doc := mdtext.Parse(source)
	var para ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*ast.Paragraph); ok {
				para = n
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	if para == nil {
		t.Fatal("no paragraph found")
	}
	return para, source
}

func TestExtractPlainText_PlainParagraph(t *testing.T) {
	para, src := parseParagraph(t, "Hello world.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "Hello world." {
		t.Errorf("got %q, want %q", got, "Hello world.")
	}
}

func TestExtractPlainText_Link(t *testing.T) {
	para, src := parseParagraph(t, "Click [here](https://example.com) now.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "Click here now." {
		t.Errorf("got %q, want %q", got, "Click here now.")
	}
}

func TestExtractPlainText_Emphasis(t *testing.T) {
	para, src := parseParagraph(t, "This is *important* text.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "This is important text." {
		t.Errorf("got %q, want %q", got, "This is important text.")
	}
}

func TestExtractPlainText_Strong(t *testing.T) {
	para, src := parseParagraph(t, "This is **bold** text.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "This is bold text." {
		t.Errorf("got %q, want %q", got, "This is bold text.")
	}
}

func TestExtractPlainText_CodeSpan(t *testing.T) {
	para, src := parseParagraph(t, "Use `fmt.Println` to print.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "Use fmt.Println to print." {
		t.Errorf("got %q, want %q", got, "Use fmt.Println to print.")
	}
}

func TestExtractPlainText_Image(t *testing.T) {
	para, src := parseParagraph(t, "See ![alt text](image.png) here.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "See alt text here." {
		t.Errorf("got %q, want %q", got, "See alt text here.")
	}
}

func TestExtractPlainText_NestedMarkup(t *testing.T) {
	para, src := parseParagraph(
		t,
		"Click [**bold link**](https://example.com) now.\n",
	)
	got := mdtext.ExtractPlainText(para, src)
	if got != "Click bold link now." {
		t.Errorf("got %q, want %q", got, "Click bold link now.")
	}
}

func TestExtractPlainText_SoftLineBreak(t *testing.T) {
	para, src := parseParagraph(t, "Hello\nworld.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "Hello world." {
		t.Errorf("got %q, want %q", got, "Hello world.")
	}
}

func TestExtractPlainText_AutoLink(t *testing.T) {
	para, src := parseParagraph(t, "Visit <https://example.com> today.\n")
	got := mdtext.ExtractPlainText(para, src)
	if got != "Visit https://example.com today." {
		t.Errorf("got %q, want %q", got, "Visit https://example.com today.")
	}
}

// --- FromMarkdown tests ---

func TestFromMarkdown_BlocksBecomeParagraphs(t *testing.T) {
	got := mdtext.FromMarkdown([]byte("# Title\n\nFirst paragraph.\n\nSecond\nparagraph.\n"))
	want := "Title\n\nFirst paragraph.\n\nSecond paragraph."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromMarkdown_DropsCodeBlocks(t *testing.T) {
	src := "Before.\n\n```go\nfmt.Println(\"hi\")\n```\n\nAfter.\n"
	got := mdtext.FromMarkdown([]byte(src))
	if got != "Before.\n\nAfter." {
		t.Errorf("got %q, want %q", got, "Before.\n\nAfter.")
	}
}

func TestFromMarkdown_TightList(t *testing.T) {
	got := mdtext.FromMarkdown([]byte("- one\n- two\n"))
	if got != "one\n\ntwo" {
		t.Errorf("got %q, want %q", got, "one\n\ntwo")
	}
}

func TestFromMarkdown_Empty(t *testing.T) {
	if got := mdtext.FromMarkdown(nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
