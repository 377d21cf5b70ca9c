// Package logging provides the small prefixed, colored logger used across
// the application's components.
package logging

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes leveled, prefixed log lines to a single writer.
type Logger struct {
	base  *log.Logger
	color string
}

// New creates a logger that prefixes every line with the given component
// name, rendered in the given ANSI color.
func New(name, color string, out io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	prefix := color + "[" + name + "]" + colorReset + " "
	return &Logger{
		base:  log.New(out, prefix, log.LstdFlags),
		color: color,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.base.Printf("[INFO] %s", msg)
}

// Warning logs a recoverable anomaly.
func (l *Logger) Warning(msg string) {
	l.base.Printf("[WARNING] %s", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.base.Printf("[ERROR] %s", msg)
}
