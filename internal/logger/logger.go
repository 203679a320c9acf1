// Package logger provides leveled logging for the aaltjes CLI.
//
// Warnings and errors are always written. Debug and info messages, which
// trace the parse and import pipeline, are written only in verbose mode
// (the --verbose flag). Output is slog text format on stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}))
}

// dropTime removes the timestamp so CLI output stays compact.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = newLogger(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = newLogger(output, verbose)
}

// Logger returns the current structured logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// With returns a logger that adds attrs to every record.
func With(attrs ...any) *slog.Logger {
	return Logger().With(attrs...)
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	Logger().Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	Logger().Warn(fmt.Sprintf(format, args...))
}

// Error logs an error.
func Error(format string, args ...any) {
	Logger().Error(fmt.Sprintf(format, args...))
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
