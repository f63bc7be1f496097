package task

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"slices"
	"strings"

	"github.com/twiced-technology-gmbh/tasktxt/internal/clierr"
	"github.com/twiced-technology-gmbh/tasktxt/internal/filelock"
)

// LineWarning describes a non-blank line that did not parse.
type LineWarning struct {
	Line int    `json:"line"` // 1-based
	Text string `json:"text"`
	Err  error  `json:"-"`
}

// Reason returns the warning's error text.
func (w LineWarning) Reason() string {
	if w.Err == nil {
		return ""
	}
	return w.Err.Error()
}

// Read parses every line from r. Lines that fail to parse are dropped from
// the result and reported as warnings; blank lines are dropped without one.
// Lines have no length limit.
func Read(r io.Reader) ([]Task, []LineWarning, error) {
	var (
		readErr  error
		lineNo   int
		warnings []LineWarning
	)
	numbered := func(yield func(string) bool) {
		for line := range Lines(r, &readErr) {
			lineNo++
			if !yield(line) {
				return
			}
		}
	}
	reject := func(line string, err error) {
		if strings.TrimSpace(line) != "" {
			warnings = append(warnings, LineWarning{Line: lineNo, Text: line, Err: err})
		}
	}

	tasks := slices.Collect(ParseReport(numbered, reject))
	if readErr != nil {
		return nil, nil, fmt.Errorf("reading line %d: %w", lineNo+1, readErr)
	}
	return tasks, warnings, nil
}

// Lines yields the lines of r without their "\n" or "\r\n" ending. A read
// error stops the sequence and is stored in *errp.
func Lines(r io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				if !yield(line) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					*errp = err
				}
				return
			}
		}
	}
}

// ReadFile opens path under a shared advisory lock and parses it.
func ReadFile(path string) ([]Task, []LineWarning, error) {
	f, release, err := filelock.OpenShared(path)
	if err != nil {
		return nil, nil, openError(path, err)
	}
	defer func() { _ = release() }()

	tasks, warnings, err := Read(f)
	if err != nil {
		return nil, nil, clierr.Newf(clierr.FileUnreadable, "reading %s: %v", path, err).
			WithDetails(map[string]any{"file": path})
	}
	return tasks, warnings, nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return clierr.Newf(clierr.FileNotFound, "tasks file not found: %s", path).
			WithDetails(map[string]any{"file": path})
	}
	return clierr.Newf(clierr.FileUnreadable, "opening tasks file: %v", err).
		WithDetails(map[string]any{"file": path})
}
