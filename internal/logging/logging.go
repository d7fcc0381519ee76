// Package logging builds the structured logger shared by the CLI and the TUI.
// The terminal is owned by Bubble Tea while a game runs, so log output goes
// to a file or is discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix is attached to every log line.
const Prefix = "beerarcade"

// Logger wraps a charmbracelet logger together with its sink.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// New creates a logger writing to path. An empty path discards output.
// debug lowers the level to Debug; otherwise Info.
func New(path string, debug bool) (*Logger, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer
	)

	if path != "" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logging: create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}
		w, closer = f, f
	}

	return NewWriter(w, debug, closer), nil
}

// NewWriter creates a logger on an arbitrary writer.
func NewWriter(w io.Writer, debug bool, closer io.Closer) *Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return &Logger{Logger: l, closer: closer}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWriter(io.Discard, false, nil)
}
