package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeduden/textstat/internal/analysis"
)

func count(f func(a *analysis.Analysis) int) func(doc *Document) Value {
	return func(doc *Document) Value {
		return AvailableValue(float64(f(doc.Analysis())))
	}
}

var registry = []Definition{
	{
		ID:           "MET001",
		Name:         "bytes",
		Description:  "File size measured in bytes.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) Value {
			return AvailableValue(float64(doc.ByteCount()))
		},
	},
	{
		ID:           "MET002",
		Name:         "lines",
		Description:  "Line count of the raw file.",
		Kind:         KindInteger,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) Value {
			return AvailableValue(float64(doc.LineCount()))
		},
	},
	{
		ID:           "MET003",
		Name:         "words",
		Description:  "Whitespace-delimited words in the analyzed text.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute:      count((*analysis.Analysis).WordCount),
	},
	{
		ID:           "MET004",
		Name:         "characters",
		Description:  "Non-whitespace characters in the analyzed text.",
		Kind:         KindInteger,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute:      count((*analysis.Analysis).CharacterCount),
	},
	{
		ID:           "MET005",
		Name:         "sentences",
		Description:  "Sentences ending in '.', '!' or '?'.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute:      count((*analysis.Analysis).SentenceCount),
	},
	{
		ID:           "MET006",
		Name:         "paragraphs",
		Description:  "Blank-line separated paragraphs.",
		Kind:         KindInteger,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute:      count((*analysis.Analysis).ParagraphCount),
	},
	{
		ID:           "MET007",
		Name:         "syllables",
		Description:  "Estimated syllable total.",
		Kind:         KindInteger,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute:      count((*analysis.Analysis).Syllables),
	},
	{
		ID:           "MET008",
		Name:         "readability",
		Description:  "Flesch-Kincaid grade level (higher is harder to read).",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) Value {
			a := doc.Analysis()
			if a.WordCount() == 0 || a.SentenceCount() == 0 {
				return UnavailableValue()
			}
			return AvailableValue(a.Readability())
		},
	},
	{
		ID:           "MET009",
		Name:         "sentiment",
		Description:  "Word-list sentiment score in [-1, 1].",
		Kind:         KindFloat,
		Precision:    2,
		Default:      true,
		DefaultOrder: OrderAsc,
		Compute: func(doc *Document) Value {
			return AvailableValue(doc.Analysis().Sentiment())
		},
	},
	{
		ID:           "MET010",
		Name:         "conciseness",
		Description:  "Heuristic conciseness score (0-100, lower is less concise).",
		Kind:         KindFloat,
		Precision:    1,
		Default:      false,
		DefaultOrder: OrderAsc,
		Compute: func(doc *Document) Value {
			if score, ok := concisenessScore(doc.Analysis()); ok {
				return AvailableValue(score)
			}
			return UnavailableValue()
		},
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns default-selected metrics sorted by ID.
func Defaults() []Definition {
	defs := All()
	out := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs.
// Empty names returns default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
