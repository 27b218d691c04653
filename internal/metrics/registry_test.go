package metrics

import (
	"strings"
	"testing"

	"github.com/jeduden/textstat/internal/analysis"
	"github.com/jeduden/textstat/internal/inputs"
	"github.com/jeduden/textstat/internal/tokens"
)

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder("asc")
	if err != nil {
		t.Fatalf("ParseOrder(asc): %v", err)
	}
	if order != OrderAsc {
		t.Fatalf("order = %q, want %q", order, OrderAsc)
	}

	order, err = ParseOrder("")
	if err != nil {
		t.Fatalf("ParseOrder(empty): %v", err)
	}
	if order != OrderDesc {
		t.Fatalf("default order = %q, want %q", order, OrderDesc)
	}

	if _, err := ParseOrder("sideways"); err == nil {
		t.Fatal("expected error for invalid order")
	}
}

func TestResolve_Defaults(t *testing.T) {
	defs, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve defaults: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("expected default metrics")
	}
	if defs[0].ID != "MET001" {
		t.Fatalf("first default metric = %q, want MET001", defs[0].ID)
	}
}

func TestResolve_UnknownMetricHasActionableError(t *testing.T) {
	_, err := Resolve([]string{"bogus"})
	if err == nil {
		t.Fatal("expected unknown metric error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown metric") {
		t.Fatalf("error = %q, expected unknown metric message", msg)
	}
	if !strings.Contains(msg, "available:") {
		t.Fatalf("error = %q, expected available list", msg)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" bytes, lines , ,words ")
	want := []string{"bytes", "lines", "words"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

var markdownOpts = inputs.TextOptions{Markdown: true, FrontMatter: true}

func TestBuiltins_Computable(t *testing.T) {
	src := []byte("# Title\n\none two three four\n")
	doc := NewDocument("test.md", src, markdownOpts)

	defs := All()
	if len(defs) != 10 {
		t.Fatalf("expected 10 file metrics, got %d", len(defs))
	}

	values := make(map[string]Value, len(defs))
	for _, def := range defs {
		v := def.Compute(doc)
		if !v.Available {
			t.Fatalf("metric %s unexpectedly unavailable", def.Name)
		}
		values[def.Name] = v
	}

	if values["bytes"].Number != float64(len(src)) {
		t.Fatalf("bytes = %.0f, want %d", values["bytes"].Number, len(src))
	}
	if values["lines"].Number != 3 {
		t.Fatalf("lines = %.0f, want 3", values["lines"].Number)
	}
	// The heading marker is stripped before counting.
	if values["words"].Number != 5 {
		t.Fatalf("words = %.0f, want 5", values["words"].Number)
	}
	if values["paragraphs"].Number != 2 {
		t.Fatalf("paragraphs = %.0f, want 2", values["paragraphs"].Number)
	}
	if values["sentiment"].Number != 0 {
		t.Fatalf("sentiment = %.2f, want 0", values["sentiment"].Number)
	}
}

func TestDocument_PlainTextSkipsMarkdownForTextFiles(t *testing.T) {
	src := []byte("# not a heading\n")
	doc := NewDocument("notes.txt", src, markdownOpts)
	if got := doc.PlainText(); got != string(src) {
		t.Fatalf("PlainText = %q, want raw source", got)
	}

	md := NewDocument("notes.md", src, markdownOpts)
	if got := md.PlainText(); got != "not a heading" {
		t.Fatalf("PlainText = %q, want %q", got, "not a heading")
	}
}

func TestDocument_AnalysisCached(t *testing.T) {
	doc := NewDocument("a.txt", []byte("Good words here."), inputs.TextOptions{})
	if doc.Analysis() != doc.Analysis() {
		t.Fatal("expected cached analysis")
	}
}

func TestReadability_UnavailableWithoutWords(t *testing.T) {
	def, ok := Lookup("MET008")
	if !ok {
		t.Fatal("readability metric not found")
	}
	if v := def.Compute(NewDocument("empty.txt", nil, inputs.TextOptions{})); v.Available {
		t.Fatalf("readability of empty text should be unavailable, got %v", v.Number)
	}
}

func TestLookup_ByNameAndID(t *testing.T) {
	byName, ok := Lookup("Sentiment")
	if !ok {
		t.Fatal("expected lookup by name to succeed")
	}
	byID, ok := Lookup("met009")
	if !ok {
		t.Fatal("expected lookup by ID to succeed")
	}
	if byName.ID != byID.ID {
		t.Fatalf("name lookup %s != id lookup %s", byName.ID, byID.ID)
	}
}

func TestConciseness_DenseBeatsVerbose(t *testing.T) {
	def, ok := Lookup("conciseness")
	if !ok {
		t.Fatal("conciseness metric not found")
	}

	verbose := []byte(
		"In order to make sure we are on the same page, it is important to note " +
			"that we might update this process in most cases.\n",
	)
	dense := []byte(
		"The synchronization algorithm enforces linearizability " +
			"via monotonic commit indices.\n",
	)

	verboseVal := def.Compute(NewDocument("verbose.txt", verbose, inputs.TextOptions{}))
	denseVal := def.Compute(NewDocument("dense.txt", dense, inputs.TextOptions{}))

	if denseVal.Number <= verboseVal.Number {
		t.Fatalf(
			"dense score %.1f should be greater than verbose %.1f",
			denseVal.Number,
			verboseVal.Number,
		)
	}
}

func TestConciseness_UnavailableWithoutWords(t *testing.T) {
	if _, ok := concisenessScore(analysis.New("  ")); ok {
		t.Fatal("expected no conciseness score for empty text")
	}
	def, ok := Lookup("conciseness")
	if !ok {
		t.Fatal("conciseness metric not found")
	}
	if v := def.Compute(NewDocument("empty.txt", nil, inputs.TextOptions{})); v.Available {
		t.Fatalf("conciseness of empty text should be unavailable, got %v", v.Number)
	}
}

func TestConciseness_PhrasesMatchAcrossPunctuation(t *testing.T) {
	words := tokens.CleanWords("We did this, in order\nto ship. Make sure; it works.")
	if got := phraseHits(words); got != 2 {
		t.Fatalf("phraseHits = %d, want 2", got)
	}
	if got := phraseHits(tokens.CleanWords("Margin order to ship.")); got != 0 {
		t.Fatalf("phraseHits = %d, want 0 for partial word match", got)
	}
}

func TestConciseness_UsesEngineWordCount(t *testing.T) {
	// "42" and "--" clean to nothing: neither content nor filler, but
	// still words in the engine's count.
	a := analysis.New("just 42 -- really")
	score, ok := concisenessScore(a)
	if !ok {
		t.Fatal("expected a score")
	}
	// n=4, content words: just, really (2), fillers: 2.
	// base = 100*(0.65*2/4 + 0.35*(1-2/4)) = 50.
	if score != 50 {
		t.Fatalf("concisenessScore = %.1f, want 50", score)
	}
}
