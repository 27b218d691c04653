package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/textstat/internal/check"
	"github.com/jeduden/textstat/internal/config"
	"github.com/jeduden/textstat/internal/inputs"
	vlog "github.com/jeduden/textstat/internal/log"
	"github.com/jeduden/textstat/internal/metrics"
	"github.com/jeduden/textstat/internal/output"
)

// commonOptions are the flags shared by analyze, keywords and check.
type commonOptions struct {
	configPath    string
	format        string
	top           int
	noMarkdown    bool
	noFrontMatter bool
	stdinName     string
	noColor       bool
	quiet         bool
	verbose       bool
}

func (o *commonOptions) register(fs *flag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&o.format, "format", "f", "text", "Output format: text, json")
	fs.IntVarP(&o.top, "top", "n", -1, "Number of keywords to report (default from config)")
	fs.BoolVar(&o.noMarkdown, "no-markdown", false, "Analyze Markdown files as raw text")
	fs.BoolVar(&o.noFrontMatter, "no-front-matter", false, "Keep YAML front matter in the analyzed text")
	fs.StringVar(&o.stdinName, "stdin-name", inputs.StdinName, "Name for piped input; a .md name enables Markdown extraction")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Show config and files on stderr")
}

// session is the loaded state shared by the file-based commands.
type session struct {
	opts   commonOptions
	cfg    *config.Config
	logger *vlog.Logger
	docs   []*metrics.Document
}

func (s *session) textOptions() inputs.TextOptions {
	return inputs.TextOptions{
		Markdown:    s.cfg.MarkdownEnabled() && !s.opts.noMarkdown,
		FrontMatter: s.cfg.FrontMatterEnabled() && !s.opts.noFrontMatter,
	}
}

func (s *session) keywordCount() int {
	if s.opts.top >= 0 {
		return s.opts.top
	}
	return s.cfg.KeywordCount()
}

// openSession loads config and inputs. File arguments are resolved;
// with none, piped stdin is read, otherwise the current directory is walked.
func openSession(opts commonOptions, args []string) (*session, error) {
	if opts.quiet {
		opts.verbose = false
	}
	if opts.top < -1 {
		return nil, fmt.Errorf("--top must be >= 0")
	}
	logger := &vlog.Logger{Enabled: opts.verbose, W: os.Stderr}
	logger.Initialized("textstat")

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	s := &session{opts: opts, cfg: cfg, logger: logger}

	var ins []inputs.Input
	if len(args) == 0 && isStdinPipe() {
		in, err := inputs.ReadStdin(os.Stdin)
		if err != nil {
			return nil, err
		}
		in.Name = opts.stdinName
		ins = []inputs.Input{in}
	} else {
		if len(args) == 0 {
			args = []string{"."}
		}
		files, err := inputs.Resolve(args, inputs.Options{Files: cfg.Files, Ignore: cfg.Ignore})
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			logger.Printf("file: %s", f)
		}
		ins, err = inputs.ReadFiles(files)
		if err != nil {
			return nil, err
		}
	}

	textOpts := s.textOptions()
	for _, in := range ins {
		s.docs = append(s.docs, metrics.NewDocument(in.Name, in.Source, textOpts))
	}
	return s, nil
}

func (s *session) results() []output.Result {
	n := s.keywordCount()
	results := make([]output.Result, 0, len(s.docs))
	for _, doc := range s.docs {
		results = append(results, output.Result{Path: doc.Path, Report: doc.Analysis().Report(n)})
	}
	return results
}

func (s *session) formatter() (output.Formatter, error) {
	f, ok := output.New(s.opts.format, !s.opts.noColor)
	if !ok {
		return nil, fmt.Errorf("unknown format %q (supported: text, json)", s.opts.format)
	}
	return f, nil
}

func parseCommon(name, usage string, args []string) (commonOptions, []string, bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts commonOptions
	opts.register(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat %s [flags] [files...]\n\n%s\n\n"+
			"Files can be paths, directories (walked with the config's files patterns), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped, otherwise walks the current directory.\n\n"+
			"Flags:\n", name, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, nil, false
	}
	return opts, fs.Args(), true
}

// runAnalyze implements the "analyze" subcommand.
func runAnalyze(args []string) int {
	opts, files, ok := parseCommon("analyze", "Print counts, readability, sentiment and keywords for each input.", args)
	if !ok {
		return 2
	}
	s, err := openSession(opts, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	f, err := s.formatter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if err := f.Reports(os.Stdout, s.results()); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: writing output: %v\n", err)
		return 2
	}
	s.logger.Printf("analyzed %d inputs", len(s.docs))
	return 0
}

// runKeywords implements the "keywords" subcommand.
func runKeywords(args []string) int {
	opts, files, ok := parseCommon("keywords", "Print the most frequent keywords for each input.", args)
	if !ok {
		return 2
	}
	s, err := openSession(opts, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	f, err := s.formatter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if err := f.Keywords(os.Stdout, s.results()); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: writing output: %v\n", err)
		return 2
	}
	return 0
}

// runCheck implements the "check" subcommand: exit 1 when any input
// breaks its thresholds.
func runCheck(args []string) int {
	opts, files, ok := parseCommon("check", "Check readability and sentiment thresholds from the config.", args)
	if !ok {
		return 2
	}
	s, err := openSession(opts, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	f, err := s.formatter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	runner := &check.Runner{Config: s.cfg, Logger: s.logger}
	violations := runner.Run(s.docs).Violations

	if !opts.quiet && len(violations) > 0 {
		if err := f.Violations(os.Stderr, violations); err != nil {
			fmt.Fprintf(os.Stderr, "textstat: error writing output: %v\n", err)
			return 2
		}
	}
	s.logger.Printf("checked %d inputs, %d issues found", len(s.docs), len(violations))

	if len(violations) > 0 {
		return 1
	}
	return 0
}
