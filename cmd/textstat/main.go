package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/textstat/internal/config"
	"github.com/jeduden/textstat/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usageText = `Usage: textstat <command> [flags] [files...]

Commands:
  analyze   Print a full text report per input
  keywords  Print the most frequent keywords per input
  check     Check inputs against readability and sentiment thresholds
  metrics   List metrics or rank files by them
  serve     Serve the analysis engine over HTTP
  init      Generate a default .textstat.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'textstat <command> --help' for more information on a command.
`

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := args[0]
	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "analyze":
		return runAnalyze(args[1:])
	case "keywords":
		return runKeywords(args[1:])
	case "check":
		return runCheck(args[1:])
	case "metrics":
		return runMetrics(args[1:])
	case "serve":
		return runServe(args[1:])
	case "init":
		return runInit(args[1:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "textstat: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	info := version.Get()
	fmt.Printf("textstat %s (%s)\n", info.Version, info.GoVersion)
}

// runInit implements the "init" subcommand: generate .textstat.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textstat: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "textstat: %s already exists\n", config.FileName)
		return 2
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "textstat: created %s\n", config.FileName)
	return 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. It returns the
// merged config, the path that was loaded (empty if defaults only), and
// any error.
func loadConfig(configPath string) (*config.Config, string, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return config.Merge(defaults, loaded), configPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), "", nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, "", err
	}

	return config.Merge(defaults, loaded), discovered, nil
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
