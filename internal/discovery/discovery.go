// Package discovery finds input files under a directory by matching
// doublestar glob patterns against slash-separated relative paths.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns selects files, e.g. "**/*.md". An empty list discovers
	// nothing.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// IncludeHidden walks into directories whose name starts with a dot.
	// They are skipped by default so .git and similar trees are not read.
	IncludeHidden bool
}

// Discover walks BaseDir and returns files matching any of the configured
// patterns. Invalid patterns are dropped.
// Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	include := validPatterns(opts.Patterns)
	if len(include) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	var result []string
	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(include, rel) {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result)
	return result, nil
}

// Match reports whether the slash-separated path rel matches any pattern.
func Match(patterns []string, rel string) bool {
	return matchAny(patterns, filepath.ToSlash(rel))
}

func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
