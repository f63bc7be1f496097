package task

import (
	"errors"
	"slices"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Task
	}{
		{"not done", "[ ] - Buy milk", Task{"Buy milk", NotDone}},
		{"first separator only", "[X] - Done thing - extra", Task{"Done thing - extra", Done}},
		{"almost", "[~] - Half way", Task{"Half way", AlmostDone}},
		{"unsure", "[?] - Maybe", Task{"Maybe", Unsure}},
		{"trims marker edges", "  [X]  - spaced", Task{"spaced", Done}},
		{"trims description", "[ ] -    padded   ", Task{"padded", NotDone}},
		{"carriage return", "[ ] - windows\r", Task{"windows", NotDone}},
		{"empty description", "[ ] - ", Task{"", NotDone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineRejects(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrNoSeparator},
		{"no separator here", ErrNoSeparator},
		{"[ ]-tight", ErrNoSeparator},
		{"[Q] - bad marker", ErrUnknownMarker},
		{"[ x ] - inner space", ErrUnknownMarker},
		{" - no marker", ErrUnknownMarker},
		{"[[X]] - doubled", ErrUnknownMarker},
	}
	for _, tt := range tests {
		_, err := ParseLine(tt.line)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseLine(%q) err = %v, want %v", tt.line, err, tt.err)
		}
	}
}

func TestParseSkipsRejectedLines(t *testing.T) {
	lines := []string{
		"",
		"[ ] - one",
		"no separator here",
		"[Q] - bad marker",
		"[X] - two",
	}
	got := slices.Collect(Parse(slices.Values(lines)))
	want := []Task{{"one", NotDone}, {"two", Done}}
	if !slices.Equal(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseRejectionSetYieldsNothing(t *testing.T) {
	lines := []string{"", "no separator here", "[Q] - bad marker"}
	if got := slices.Collect(Parse(slices.Values(lines))); len(got) != 0 {
		t.Errorf("Parse = %+v, want none", got)
	}
}

func TestParseStopsEarly(t *testing.T) {
	pulled := 0
	lines := func(yield func(string) bool) {
		for _, l := range []string{"[ ] - a", "[ ] - b", "[ ] - c"} {
			pulled++
			if !yield(l) {
				return
			}
		}
	}
	for range Parse(lines) {
		break
	}
	if pulled != 1 {
		t.Errorf("pulled %d lines, want 1", pulled)
	}
}

func TestTaskString(t *testing.T) {
	tk := Task{Description: "Done thing - extra", Status: Done}
	if tk.String() != "[X] - Done thing - extra" {
		t.Errorf("String() = %q", tk.String())
	}
	back, err := ParseLine(tk.String())
	if err != nil || back != tk {
		t.Errorf("round trip = %+v, %v", back, err)
	}
}

func TestParseReportCallsReject(t *testing.T) {
	lines := []string{"[ ] - a", "no separator", "[x] - lower", "", "[X] - b"}
	var rejected []string
	var reasons []error
	got := slices.Collect(ParseReport(slices.Values(lines), func(line string, err error) {
		rejected = append(rejected, line)
		reasons = append(reasons, err)
	}))

	if len(got) != 2 || got[0].Description != "a" || got[1].Description != "b" {
		t.Errorf("tasks = %+v", got)
	}
	if want := []string{"no separator", "[x] - lower", ""}; !slices.Equal(rejected, want) {
		t.Errorf("rejected = %q, want %q", rejected, want)
	}
	if !errors.Is(reasons[0], ErrNoSeparator) || !errors.Is(reasons[1], ErrUnknownMarker) {
		t.Errorf("reasons = %v", reasons)
	}
}
