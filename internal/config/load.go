package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jeduden/textstat/internal/analysis"
)

// FileName is the name of the config file looked up by Discover.
const FileName = ".textstat.yml"

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .textstat.yml config file. It stops searching when it encounters a .git
// directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repository root.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// DefaultFiles are the discovery patterns used when walking directories.
var DefaultFiles = []string{"**/*.md", "**/*.markdown", "**/*.txt"}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	top := analysis.DefaultKeywordCount
	markdown := true
	frontMatter := true
	maxGrade := 14.0
	minSentiment := -1.0
	minWords := 20
	return &Config{
		TopKeywords: &top,
		Markdown:    &markdown,
		FrontMatter: &frontMatter,
		Files:       append([]string(nil), DefaultFiles...),
		Check: Thresholds{
			MaxGrade:     &maxGrade,
			MinSentiment: &minSentiment,
			MinWords:     &minWords,
		},
	}
}

// DumpDefaults returns the built-in configuration with an example ignore
// list. This is consumed by `textstat init` to generate a default config
// file.
func DumpDefaults() *Config {
	cfg := Defaults()
	cfg.Ignore = []string{"vendor/**", "node_modules/**"}
	return cfg
}
