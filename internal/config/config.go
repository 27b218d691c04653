package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	TopKeywords *int       `yaml:"top-keywords,omitempty"`
	Markdown    *bool      `yaml:"markdown,omitempty"`
	FrontMatter *bool      `yaml:"front-matter,omitempty"`
	Files       []string   `yaml:"files,omitempty"`
	Ignore      []string   `yaml:"ignore,omitempty"`
	Metrics     []string   `yaml:"metrics,omitempty"`
	Check       Thresholds `yaml:"check,omitempty"`
	Overrides   []Override `yaml:"overrides,omitempty"`
}

// Override applies check thresholds to files matching glob patterns.
type Override struct {
	Files []string   `yaml:"files"`
	Check Thresholds `yaml:"check"`
}

// Thresholds are the limits enforced by the check command. Unset fields
// inherit from the enclosing level. Disabled skips the check entirely.
type Thresholds struct {
	Disabled     bool
	MaxGrade     *float64
	MinSentiment *float64
	MinWords     *int
}

type thresholdsYAML struct {
	MaxGrade     *float64 `yaml:"max-grade,omitempty"`
	MinSentiment *float64 `yaml:"min-sentiment,omitempty"`
	MinWords     *int     `yaml:"min-words,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshalling for Thresholds.
// It handles three forms:
//   - false -> Disabled=true
//   - true  -> Disabled=false, no limits set
//   - {max-grade: n, ...} -> Disabled=false, limits set
func (t *Thresholds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			*t = Thresholds{Disabled: !b}
			return nil
		}
	}

	if value.Kind == yaml.MappingNode {
		var raw thresholdsYAML
		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("invalid check config: %w", err)
		}
		*t = Thresholds{
			MaxGrade:     raw.MaxGrade,
			MinSentiment: raw.MinSentiment,
			MinWords:     raw.MinWords,
		}
		return nil
	}

	return fmt.Errorf("check config must be a bool or a mapping, got %v", value.Kind)
}

// MarshalYAML implements yaml.Marshaler for Thresholds.
func (t Thresholds) MarshalYAML() (any, error) {
	if t.Disabled {
		return false, nil
	}
	return thresholdsYAML{
		MaxGrade:     t.MaxGrade,
		MinSentiment: t.MinSentiment,
		MinWords:     t.MinWords,
	}, nil
}

// IsZero reports whether no threshold is set, so omitempty drops it.
func (t Thresholds) IsZero() bool {
	return !t.Disabled && t.MaxGrade == nil && t.MinSentiment == nil && t.MinWords == nil
}

// overlay returns t with every field that is set in o replaced.
func (t Thresholds) overlay(o Thresholds) Thresholds {
	if o.Disabled {
		return Thresholds{Disabled: true}
	}
	out := t
	out.Disabled = false
	if o.MaxGrade != nil {
		out.MaxGrade = o.MaxGrade
	}
	if o.MinSentiment != nil {
		out.MinSentiment = o.MinSentiment
	}
	if o.MinWords != nil {
		out.MinWords = o.MinWords
	}
	return out
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.TopKeywords != nil && *c.TopKeywords < 0 {
		return fmt.Errorf("top-keywords must be >= 0, got %d", *c.TopKeywords)
	}
	check := []Thresholds{c.Check}
	for _, o := range c.Overrides {
		check = append(check, o.Check)
	}
	for _, th := range check {
		if th.MinWords != nil && *th.MinWords < 0 {
			return fmt.Errorf("check: min-words must be >= 0, got %d", *th.MinWords)
		}
		if th.MinSentiment != nil && (*th.MinSentiment < -1 || *th.MinSentiment > 1) {
			return fmt.Errorf("check: min-sentiment must be within [-1, 1], got %v", *th.MinSentiment)
		}
	}
	return nil
}

// KeywordCount returns the configured keyword count, or 0 when unset.
func (c *Config) KeywordCount() int {
	if c.TopKeywords == nil {
		return 0
	}
	return *c.TopKeywords
}

// MarkdownEnabled returns whether Markdown files are reduced to plain
// text before analysis. Defaults to true if not set.
func (c *Config) MarkdownEnabled() bool {
	if c.Markdown != nil {
		return *c.Markdown
	}
	return true
}

// FrontMatterEnabled returns whether front matter stripping is enabled.
// Defaults to true if not set.
func (c *Config) FrontMatterEnabled() bool {
	if c.FrontMatter != nil {
		return *c.FrontMatter
	}
	return true
}
