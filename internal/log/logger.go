package log

import (
	"fmt"
	"io"
	"os"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to W, or stderr when W is nil. A non-empty Prefix is written
// before every message followed by ": ".
type Logger struct {
	Enabled bool
	Prefix  string
	W       io.Writer
}

// New returns a Logger writing to stderr with the given prefix.
func New(prefix string, enabled bool) *Logger {
	return &Logger{Enabled: enabled, Prefix: prefix, W: os.Stderr}
}

// Printf writes a formatted message when Enabled is true.
// It is a no-op when Enabled is false or l is nil.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	w := l.W
	if w == nil {
		w = os.Stderr
	}
	if l.Prefix != "" {
		format = l.Prefix + ": " + format
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// Initialized reports that the named component finished start-up.
func (l *Logger) Initialized(component string) {
	l.Printf("%s initialized", component)
}
