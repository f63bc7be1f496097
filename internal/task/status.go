package task

import (
	"strings"

	"github.com/twiced-technology-gmbh/tasktxt/internal/clierr"
)

// Status classifies a task by its line marker.
type Status int

// Statuses in declaration order. Tab order is a presentation concern and
// lives in the app package.
const (
	NotDone Status = iota
	Done
	AlmostDone
	Unsure

	statusCount
)

// Marker literals, exactly as they appear at the start of a line.
const (
	MarkerNotDone    = "[ ]"
	MarkerDone       = "[X]"
	MarkerAlmostDone = "[~]"
	MarkerUnsure     = "[?]"
)

// Color is the semantic display color of a status. Renderers map it to
// whatever their palette uses.
type Color int

// Display colors.
const (
	Red Color = iota
	Yellow
	Green
	Blue
)

var colorNames = [...]string{Red: "red", Yellow: "yellow", Green: "green", Blue: "blue"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

type statusInfo struct {
	marker string
	name   string
	color  Color
}

// statusTable is sized by statusCount so a new status without an entry
// leaves a zero row, which TestStatusTableComplete catches.
var statusTable = [statusCount]statusInfo{
	NotDone:    {marker: MarkerNotDone, name: "not-done", color: Red},
	Done:       {marker: MarkerDone, name: "done", color: Green},
	AlmostDone: {marker: MarkerAlmostDone, name: "almost-done", color: Yellow},
	Unsure:     {marker: MarkerUnsure, name: "unsure", color: Blue},
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	all := make([]Status, statusCount)
	for i := range all {
		all[i] = Status(i)
	}
	return all
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= 0 && s < statusCount
}

// Marker returns the line marker for s, or "" for an invalid status.
func (s Status) Marker() string {
	if !s.Valid() {
		return ""
	}
	return statusTable[s].marker
}

// Color returns the display color for s. Invalid statuses render red.
func (s Status) Color() Color {
	if !s.Valid() {
		return Red
	}
	return statusTable[s].color
}

// String returns the kebab-case status name used by flags and JSON.
func (s Status) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return statusTable[s].name
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// DecodeMarker maps a marker literal to its status. Only an exact match
// decodes; surrounding whitespace is not tolerated here.
func DecodeMarker(marker string) (Status, bool) {
	for i, info := range statusTable {
		if info.marker == marker {
			return Status(i), true
		}
	}
	return 0, false
}

// ParseStatus accepts a status name ("almost-done", case-insensitive, "_"
// allowed for "-") or an exact marker literal.
func ParseStatus(s string) (Status, error) {
	if st, ok := DecodeMarker(s); ok {
		return st, nil
	}
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, info := range statusTable {
		if info.name == norm {
			return Status(i), nil
		}
	}
	return 0, clierr.Newf(clierr.InvalidStatus, "invalid status %q", s).
		WithDetails(map[string]any{
			"status":  s,
			"allowed": StatusNames(),
		})
}

// StatusNames returns the names of all statuses in declaration order.
func StatusNames() []string {
	names := make([]string, 0, statusCount)
	for _, info := range statusTable {
		names = append(names, info.name)
	}
	return names
}
