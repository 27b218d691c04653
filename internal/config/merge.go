package config

import (
	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. Scalar settings and
// check thresholds set in loaded win; anything left unset keeps its default.
// Ignore, Metrics and Overrides come from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	merged := &Config{
		TopKeywords: defaults.TopKeywords,
		Markdown:    defaults.Markdown,
		FrontMatter: defaults.FrontMatter,
		Files:       append([]string(nil), defaults.Files...),
		Check:       defaults.Check,
	}
	if loaded == nil {
		return merged
	}

	if loaded.TopKeywords != nil {
		merged.TopKeywords = loaded.TopKeywords
	}
	if loaded.Markdown != nil {
		merged.Markdown = loaded.Markdown
	}
	if loaded.FrontMatter != nil {
		merged.FrontMatter = loaded.FrontMatter
	}
	if len(loaded.Files) > 0 {
		merged.Files = append([]string(nil), loaded.Files...)
	}
	merged.Check = defaults.Check.overlay(loaded.Check)
	merged.Ignore = loaded.Ignore
	merged.Metrics = loaded.Metrics
	merged.Overrides = loaded.Overrides
	return merged
}

// Effective returns the check thresholds for a given file path. It starts
// with the top-level thresholds and then applies each override whose file
// patterns match filePath, in order. Later overrides take precedence.
func Effective(cfg *Config, filePath string) Thresholds {
	result := cfg.Check
	for _, o := range cfg.Overrides {
		if MatchesAny(o.Files, filePath) {
			result = result.overlay(o.Check)
		}
	}
	return result
}

// MatchesAny returns true if filePath matches any of the given glob
// patterns. Invalid patterns never match.
func MatchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(filePath) {
			return true
		}
	}
	return false
}
