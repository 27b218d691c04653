package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	vlog "github.com/jeduden/textstat/internal/log"
	"github.com/jeduden/textstat/internal/server"
)

const shutdownTimeout = 10 * time.Second

// runServe implements the "serve" subcommand.
func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		configPath string
		addr       string
		top        int
		bodyLimit  string
		quiet      bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&addr, "addr", ":8080", "Address to listen on")
	fs.IntVarP(&top, "top", "n", -1, "Default number of keywords per response (default from config)")
	fs.StringVar(&bodyLimit, "body-limit", server.DefaultBodyLimit, "Maximum request body size")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress request logs")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat serve [flags]\n\n"+
			"Serve the analysis engine over HTTP.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textstat: serve takes no arguments\n")
		return 2
	}

	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if top < 0 {
		top = cfg.KeywordCount()
	}

	logger := vlog.New("textstat", !quiet)
	srv := server.NewServer(server.Config{
		Addr:        addr,
		TopKeywords: top,
		FrontMatter: cfg.FrontMatterEnabled(),
		BodyLimit:   bodyLimit,
	}, logger, server.NewRegistry())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
			return 2
		}
		return 0
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	logger.Printf("server stopped")
	return 0
}
