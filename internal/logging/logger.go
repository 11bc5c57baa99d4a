// Package logging provides the structured logger used during generation.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// Logger provides structured logging.
type Logger struct {
	slog *slog.Logger
}

// Options configures a Logger.
type Options struct {
	// Verbose enables debug messages and timestamps.
	Verbose bool
	// Prefix is printed before every message.
	Prefix string
}

// New creates a Logger writing human readable lines to w.
func New(w io.Writer, opts Options) *Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Verbose,
		TimeFormat:      "15:04:05",
	})
	return &Logger{slog: slog.New(handler)}
}

// NewDefault creates a Logger that writes to stderr at INFO level.
func NewDefault() *Logger {
	return New(os.Stderr, Options{})
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Info logs msg with alternating key/value args at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn is Info at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error is Info at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// Debug is Info at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// With returns a child Logger that adds args to each record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}
