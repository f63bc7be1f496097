package task

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Separator splits the marker from the description. Only the first
// occurrence splits; later ones belong to the description.
const Separator = " - "

// Parse errors. The parser itself never surfaces these to the user; they
// exist so check and debug logging can say why a line was dropped.
var (
	ErrNoSeparator   = errors.New("missing separator")
	ErrUnknownMarker = errors.New("unknown marker")
)

// ParseLine parses a single line of the form "<marker> - <description>".
func ParseLine(line string) (Task, error) {
	rawMarker, rawText, ok := strings.Cut(line, Separator)
	if !ok {
		return Task{}, ErrNoSeparator
	}

	marker := strings.TrimSpace(rawMarker)
	status, ok := DecodeMarker(marker)
	if !ok {
		return Task{}, fmt.Errorf("%w %q", ErrUnknownMarker, marker)
	}

	return Task{
		Description: strings.TrimSpace(rawText),
		Status:      status,
	}, nil
}

// Parse lazily yields the tasks of every line that parses, in order.
// Rejected lines are skipped silently. The sequence is single-pass when
// lines is.
func Parse(lines iter.Seq[string]) iter.Seq[Task] {
	return ParseReport(lines, nil)
}

// ParseReport is Parse with a hook: reject, when non-nil, is called with
// each line that does not parse and the reason, before the next line is
// read.
func ParseReport(lines iter.Seq[string], reject func(line string, err error)) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for line := range lines {
			t, err := ParseLine(line)
			if err != nil {
				if reject != nil {
					reject(line, err)
				}
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}
