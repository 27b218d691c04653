package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, yml string) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

// --- YAML parsing tests ---

func TestParseValidYAML(t *testing.T) {
	cfg := loadValidYAMLFixture(t)

	t.Run("scalars", func(t *testing.T) {
		if cfg.KeywordCount() != 5 {
			t.Errorf("top-keywords: expected 5, got %d", cfg.KeywordCount())
		}
		if cfg.MarkdownEnabled() {
			t.Error("markdown should be disabled")
		}
		if cfg.FrontMatter != nil {
			t.Error("front-matter should be unset")
		}
	})

	t.Run("lists", func(t *testing.T) {
		if len(cfg.Files) != 1 || cfg.Files[0] != "**/*.txt" {
			t.Errorf("files: got %v", cfg.Files)
		}
		if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "vendor/**" {
			t.Errorf("ignore: got %v", cfg.Ignore)
		}
		if len(cfg.Metrics) != 2 || cfg.Metrics[1] != "readability" {
			t.Errorf("metrics: got %v", cfg.Metrics)
		}
	})

	t.Run("check", func(t *testing.T) {
		if cfg.Check.MaxGrade == nil || *cfg.Check.MaxGrade != 12 {
			t.Errorf("max-grade: got %v", cfg.Check.MaxGrade)
		}
		if cfg.Check.MinWords != nil {
			t.Errorf("min-words should be unset, got %v", *cfg.Check.MinWords)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		if len(cfg.Overrides) != 2 {
			t.Fatalf("expected 2 overrides, got %d", len(cfg.Overrides))
		}
		if cfg.Overrides[0].Files[0] != "CHANGELOG.md" {
			t.Errorf("expected CHANGELOG.md, got %s", cfg.Overrides[0].Files[0])
		}
		if !cfg.Overrides[0].Check.Disabled {
			t.Error("check should be disabled in first override")
		}
		if cfg.Overrides[1].Check.MaxGrade == nil || *cfg.Overrides[1].Check.MaxGrade != 16 {
			t.Errorf("max-grade in override: got %v", cfg.Overrides[1].Check.MaxGrade)
		}
	})
}

func loadValidYAMLFixture(t *testing.T) *Config {
	t.Helper()
	yml := `
top-keywords: 5
markdown: false
files:
  - "**/*.txt"
ignore:
  - "vendor/**"
  - "node_modules/**"
metrics: [words, readability]
check:
  max-grade: 12
overrides:
  - files:
      - "CHANGELOG.md"
    check: false
  - files:
      - "docs/**"
    check:
      max-grade: 16
`
	cfg, err := Load(writeConfig(t, yml))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return cfg
}

func TestThresholdsBoolTrue(t *testing.T) {
	var th Thresholds
	if err := yaml.Unmarshal([]byte("true"), &th); err != nil {
		t.Fatal(err)
	}
	if th.Disabled || th.MaxGrade != nil {
		t.Errorf("expected enabled with no limits, got %+v", th)
	}
}

func TestThresholdsRejectsList(t *testing.T) {
	var th Thresholds
	err := yaml.Unmarshal([]byte("[1, 2]"), &th)
	if err == nil {
		t.Fatal("expected error for sequence")
	}
	if !strings.Contains(err.Error(), "bool or a mapping") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInvalidYAMLReturnsError(t *testing.T) {
	yml := `
check:
  max-grade: [[[invalid
`
	if _, err := Load(writeConfig(t, yml)); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/.textstat.yml"); err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestLoadRejectsNegativeTopKeywords(t *testing.T) {
	_, err := Load(writeConfig(t, "top-keywords: -1\n"))
	if err == nil || !strings.Contains(err.Error(), "top-keywords") {
		t.Fatalf("expected top-keywords error, got %v", err)
	}
}

func TestLoadRejectsSentimentOutOfRange(t *testing.T) {
	yml := `
overrides:
  - files: ["*.md"]
    check:
      min-sentiment: 2
`
	_, err := Load(writeConfig(t, yml))
	if err == nil || !strings.Contains(err.Error(), "min-sentiment") {
		t.Fatalf("expected min-sentiment error, got %v", err)
	}
}

// --- Discovery tests ---

func TestDiscoverFindsInCurrentDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(cfgPath, []byte("top-keywords: 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverFindsInParentDir(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "subdir")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(parent, FileName)
	if err := os.WriteFile(cfgPath, []byte("top-keywords: 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(child)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverStopsAtGitBoundary(t *testing.T) {
	// Config above the repository root must not be found.
	grandparent := t.TempDir()
	parent := filepath.Join(grandparent, "repo")
	child := filepath.Join(parent, "src")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(parent, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(grandparent, FileName)
	if err := os.WriteFile(cfgPath, []byte("top-keywords: 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(child)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != "" {
		t.Errorf("expected empty string (stopped at .git), got %s", found)
	}
}

func TestDiscoverReturnsEmptyWhenNotFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != "" {
		t.Errorf("expected empty string, got %s", found)
	}
}

// --- Defaults and merge tests ---

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.KeywordCount() != 10 {
		t.Errorf("top-keywords: expected 10, got %d", cfg.KeywordCount())
	}
	if !cfg.MarkdownEnabled() || !cfg.FrontMatterEnabled() {
		t.Error("markdown and front-matter should default to enabled")
	}
	if *cfg.Check.MaxGrade != 14 || *cfg.Check.MinWords != 20 || *cfg.Check.MinSentiment != -1 {
		t.Errorf("unexpected default thresholds: %+v", cfg.Check)
	}
}

func TestMergeNilLoaded(t *testing.T) {
	merged := Merge(Defaults(), nil)
	if merged.KeywordCount() != 10 {
		t.Errorf("expected defaults, got top-keywords %d", merged.KeywordCount())
	}
	if len(merged.Files) != len(DefaultFiles) {
		t.Errorf("files: got %v", merged.Files)
	}
}

func TestMergeLoadedWins(t *testing.T) {
	merged := Merge(Defaults(), loadValidYAMLFixture(t))

	if merged.KeywordCount() != 5 {
		t.Errorf("top-keywords: expected 5, got %d", merged.KeywordCount())
	}
	if merged.MarkdownEnabled() {
		t.Error("markdown should be disabled by loaded config")
	}
	if !merged.FrontMatterEnabled() {
		t.Error("front-matter should keep its default")
	}
	if *merged.Check.MaxGrade != 12 {
		t.Errorf("max-grade: expected 12, got %v", *merged.Check.MaxGrade)
	}
	if *merged.Check.MinWords != 20 {
		t.Errorf("min-words: expected default 20, got %v", *merged.Check.MinWords)
	}
	if len(merged.Ignore) != 2 || len(merged.Overrides) != 2 {
		t.Errorf("ignore/overrides not preserved: %v %v", merged.Ignore, merged.Overrides)
	}
}

// --- Effective tests ---

func TestEffectiveWithoutOverrides(t *testing.T) {
	cfg := Defaults()
	th := Effective(cfg, "README.md")
	if th.Disabled || *th.MaxGrade != 14 {
		t.Errorf("unexpected thresholds: %+v", th)
	}
}

func TestEffectiveOverrideAppliesPerFile(t *testing.T) {
	cfg := Merge(Defaults(), loadValidYAMLFixture(t))

	if th := Effective(cfg, "CHANGELOG.md"); !th.Disabled {
		t.Error("check should be disabled for CHANGELOG.md")
	}
	th := Effective(cfg, "docs/guide.md")
	if th.Disabled || *th.MaxGrade != 16 || *th.MinWords != 20 {
		t.Errorf("docs/guide.md thresholds: %+v", th)
	}
	if th := Effective(cfg, "README.md"); *th.MaxGrade != 12 {
		t.Errorf("README.md max-grade: expected 12, got %v", *th.MaxGrade)
	}
}

func TestEffectiveLaterOverridesWin(t *testing.T) {
	low, high := 10.0, 20.0
	cfg := Defaults()
	cfg.Overrides = []Override{
		{Files: []string{"docs/**"}, Check: Thresholds{MaxGrade: &low}},
		{Files: []string{"docs/api/**"}, Check: Thresholds{MaxGrade: &high}},
	}

	th := Effective(cfg, "docs/api/foo.md")
	if *th.MaxGrade != 20 {
		t.Errorf("expected max-grade=20 (later override wins), got %v", *th.MaxGrade)
	}
}

func TestMatchesAny_InvalidPatternSkipped(t *testing.T) {
	if MatchesAny([]string{"[", "*.md"}, "a.md") != true {
		t.Error("valid pattern after invalid one should still match")
	}
	if MatchesAny([]string{"["}, "a.md") {
		t.Error("invalid pattern should not match")
	}
}

// --- Marshal tests ---

func TestDumpDefaults_MarshalRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(DumpDefaults())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"top-keywords: 10", "max-grade: 14", "vendor/**"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("dumped config missing %q:\n%s", key, data)
		}
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.KeywordCount() != 10 || *back.Check.MinWords != 20 {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestMarshalYAML_DisabledCheck(t *testing.T) {
	data, err := yaml.Marshal(Override{Files: []string{"a.md"}, Check: Thresholds{Disabled: true}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "check: false") {
		t.Errorf("expected check: false, got:\n%s", data)
	}
}
