// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Logger implements ports.Logger using log/slog. Output goes to stderr;
// SetOutput swaps the destination, which the app layer uses to mirror the
// run into a log file.
type Logger struct {
	mu      sync.RWMutex
	logger  *slog.Logger
	verbose bool
}

// New creates a new Logger instance writing to stderr.
func New() *Logger {
	return &Logger{logger: slog.New(newHandler(os.Stderr, false))}
}

var _ ports.Logger = (*Logger)(nil)

func newHandler(w io.Writer, verbose bool) slog.Handler {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetVerbose raises the handler level to debug.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
	l.logger = slog.New(newHandler(os.Stderr, verbose))
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w, l.verbose))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
