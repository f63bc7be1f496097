// Package logging builds the charmbracelet/log logger used for
// diagnostics such as dropped lines and watcher errors.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

const (
	prefix      = "tasktxt"
	logFileMode = 0o600
)

// Options holds configuration for the logger.
type Options struct {
	Level string
	// File, when set, receives the log instead of Writer.
	File string
	// Writer is the destination when File is empty. Nil discards, which
	// is what the TUI wants since stderr shares the terminal.
	Writer io.Writer
}

// New creates a logger. The returned close function releases the log
// file, if one was opened, and is always safe to call.
func New(opts Options) (*log.Logger, func() error, error) {
	w := opts.Writer
	closeFn := func() error { return nil }

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // log path from config
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Prefix:          prefix,
		ReportTimestamp: opts.File != "",
	})
	return logger, closeFn, nil
}

// ParseLevel converts a level name to a log.Level, defaulting to warn.
func ParseLevel(level string) log.Level {
	level = strings.TrimSpace(level)
	if level == "" {
		return log.WarnLevel
	}
	if strings.EqualFold(level, "warning") {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// DroppedLines logs each line the parser rejected at debug level.
func DroppedLines(logger *log.Logger, file string, warnings []task.LineWarning) {
	if logger == nil {
		return
	}
	for _, w := range warnings {
		logger.Debug("dropped line", "file", file, "line", w.Line, "reason", w.Reason())
	}
}
