// Package logger provides leveled diagnostic logging for repoxml.
// Debug and Info events (pattern tests, ignored paths) are only written in
// verbose mode, enabled with the --verbose flag. Warn and Error events are
// always written, so per-file failures stay visible without it.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes prefixed diagnostic lines to an output writer.
// It is safe for concurrent use by the tree walker's workers.
type Logger struct {
	mu      sync.RWMutex
	verbose bool
	output  io.Writer
}

// New creates a logger writing to w. A nil w defaults to os.Stderr.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{verbose: verbose, output: w}
}

// Discard returns a logger that drops every event.
func Discard() *Logger {
	return New(io.Discard, false)
}

// SetVerbose enables or disables verbose logging.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func (l *Logger) IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// SetOutput sets the output writer. Useful for testing.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Debug prints a message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	l.write(true, "[DEBUG] ", format, args)
}

// Info prints an informational message if verbose mode is enabled.
func (l *Logger) Info(format string, args ...any) {
	l.write(true, "[INFO] ", format, args)
}

// Warn prints a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.write(false, "[WARN] ", format, args)
}

// Error prints an error message.
func (l *Logger) Error(format string, args ...any) {
	l.write(false, "[ERROR] ", format, args)
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.verbose {
		fmt.Fprintf(l.output, "\n=== %s ===\n", name)
	}
}

func (l *Logger) write(gated bool, prefix, format string, args []any) {
	// Write lock: lines from concurrent workers must not interleave.
	l.mu.Lock()
	defer l.mu.Unlock()
	if gated && !l.verbose {
		return
	}
	fmt.Fprintf(l.output, prefix+format+"\n", args...)
}

var std = New(os.Stderr, false)

// Default returns the process-wide logger used by the package-level functions.
func Default() *Logger { return std }

// SetVerbose enables or disables verbose logging on the default logger.
func SetVerbose(v bool) { std.SetVerbose(v) }

// IsVerbose returns true if the default logger is verbose.
func IsVerbose() bool { return std.IsVerbose() }

// SetOutput sets the default logger's output writer.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Debug prints a message on the default logger if verbose mode is enabled.
func Debug(format string, args ...any) { std.Debug(format, args...) }

// Info prints an informational message on the default logger if verbose mode is enabled.
func Info(format string, args ...any) { std.Info(format, args...) }

// Warn prints a warning message on the default logger.
func Warn(format string, args ...any) { std.Warn(format, args...) }

// Error prints an error message on the default logger.
func Error(format string, args ...any) { std.Error(format, args...) }

// Section prints a section header on the default logger if verbose mode is enabled.
func Section(name string) { std.Section(name) }
