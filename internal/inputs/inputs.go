// Package inputs resolves command-line arguments to input files and turns
// file contents into the plain text that gets analyzed.
package inputs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeduden/textstat/internal/config"
	"github.com/jeduden/textstat/internal/discovery"
)

// Options controls how arguments are resolved to files.
type Options struct {
	// Files holds doublestar patterns used when an argument names a
	// directory. Defaults to config.DefaultFiles when empty.
	Files []string

	// Ignore holds glob patterns. Files found by walking a directory or
	// expanding a glob are dropped when they match. Explicitly named
	// files are never ignored.
	Ignore []string

	// IncludeHidden walks into dot-directories.
	IncludeHidden bool
}

func (o Options) patterns() []string {
	if len(o.Files) == 0 {
		return config.DefaultFiles
	}
	return o.Files
}

// IsMarkdown returns true if the file extension is .md or .markdown.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ignored reports whether rel, or its base name, matches an ignore pattern.
func ignored(patterns []string, rel string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel = filepath.ToSlash(filepath.Clean(rel))
	return config.MatchesAny(patterns, rel) || config.MatchesAny(patterns, filepath.Base(rel))
}

// Resolve takes positional arguments and returns deduplicated, sorted file
// paths. It supports individual files, directories (walked with the
// configured patterns), and glob patterns. Returns an error for
// nonexistent paths that are not glob patterns.
func Resolve(args []string, opts Options) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, opts, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

func resolveArg(arg string, opts Options, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, opts, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return addDirFiles(arg, opts, addFile)
	}

	addFile(arg)
	return nil
}

// resolveGlob expands a doublestar pattern. Matching directories are walked.
func resolveGlob(pattern string, opts Options, addFile func(string)) error {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("expanding %q: %w", pattern, err)
	}
	for _, m := range matches {
		if ignored(opts.Ignore, m) {
			continue
		}
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := addDirFiles(m, opts, addFile); err != nil {
				return err
			}
			continue
		}
		addFile(m)
	}
	return nil
}

func addDirFiles(dir string, opts Options, addFile func(string)) error {
	files, err := discovery.Discover(discovery.Options{
		Patterns:      opts.patterns(),
		BaseDir:       dir,
		IncludeHidden: opts.IncludeHidden,
	})
	if err != nil {
		return fmt.Errorf("walking %q: %w", dir, err)
	}
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			rel = f
		}
		if ignored(opts.Ignore, rel) {
			continue
		}
		addFile(f)
	}
	return nil
}
