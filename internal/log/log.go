// Package log provides a context-carried verbose logger for rusky.
//
// Commands attach a Logger once in the root command; lower layers pull it
// out of the context and trace external commands and file writes. Nothing
// is printed unless --verbose is set.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type ctxKey struct{}

// Logger writes verbose tracing lines.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a new logger.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a silent logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}
	return &Logger{out: io.Discard}
}

// Command logs an external command execution.
func (l *Logger) Command(name string, args ...string) {
	if !l.verbose {
		return
	}
	_, _ = fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
}

// Debugf logs a formatted line.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	_, _ = fmt.Fprintf(l.out, format+"\n", args...)
}
