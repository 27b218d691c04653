package check

import (
	"sort"

	"github.com/jeduden/textstat/internal/config"
	vlog "github.com/jeduden/textstat/internal/log"
	"github.com/jeduden/textstat/internal/metrics"
)

// Runner evaluates each document against the thresholds effective for its
// path and collects the violations.
type Runner struct {
	Config *config.Config
	Logger *vlog.Logger
}

// Result holds the output of a check run.
type Result struct {
	Violations []Violation
	// Checked counts documents whose check was not disabled.
	Checked int
}

// Run checks docs and returns violations sorted by path, then metric ID.
func (r *Runner) Run(docs []*metrics.Document) *Result {
	res := &Result{}

	for _, doc := range docs {
		th := config.Effective(r.Config, doc.Path)
		if th.Disabled {
			r.Logger.Printf("skipping %s: check disabled", doc.Path)
			continue
		}
		res.Checked++
		res.Violations = append(res.Violations, Evaluate(doc, th)...)
	}

	sort.SliceStable(res.Violations, func(i, j int) bool {
		vi, vj := res.Violations[i], res.Violations[j]
		if vi.Path != vj.Path {
			return vi.Path < vj.Path
		}
		return vi.MetricID < vj.MetricID
	})

	return res
}
