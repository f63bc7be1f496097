package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/twiced-technology-gmbh/tasktxt/internal/board"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Status colors aligned with the TUI list palette.
	statusStyles = map[task.Color]lipgloss.Style{
		task.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		task.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		task.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		task.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
)

// DisableColor strips all styling from CLI output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	statusStyles = map[task.Color]lipgloss.Style{}
}

// TaskTable renders tasks as a formatted table in the given order.
func TaskTable(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	const pad = 2
	numW, statusW := 3, 8
	for i, t := range tasks {
		numW = max(numW, len(strconv.Itoa(i+1))+pad)
		statusW = max(statusW, len(t.Status.String())+pad)
	}

	header := fmt.Sprintf("%-*s %-5s %-*s %s", numW, "#", "MARK", statusW, "STATUS", "DESCRIPTION")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for i, t := range tasks {
		row := fmt.Sprintf("%-*d %-5s %s %s",
			numW, i+1,
			t.Status.Marker(),
			padRight(styled(t.Status, t.Status.String()), statusW),
			styled(t.Status, t.Description))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// SummaryTable renders per-status counts as a small dashboard.
func SummaryTable(w io.Writer, title string, ov board.Overview) {
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(title))
	fmt.Fprintf(w, "Total: %d tasks\n\n", ov.Total)

	const statusColW = 14
	header := fmt.Sprintf("%-*s %-5s %6s", statusColW, "STATUS", "MARK", "COUNT")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, sc := range ov.Statuses {
		fmt.Fprintf(w, "%s %-5s %6d\n",
			padRight(styled(sc.Status, sc.Status.String()), statusColW),
			sc.Marker, sc.Count)
	}
}

// WarningTable renders dropped lines with their reasons.
func WarningTable(w io.Writer, file string, warnings []task.LineWarning) {
	if len(warnings) == 0 {
		Messagef(w, "%s: all lines parse", file)
		return
	}

	lineW := len("LINE")
	for _, wr := range warnings {
		lineW = max(lineW, len(strconv.Itoa(wr.Line)))
	}
	const reasonW = 24
	header := fmt.Sprintf("%-*s %-*s %s", lineW, "LINE", reasonW, "REASON", "TEXT")
	fmt.Fprintln(w, headerStyle.Render(header))
	for _, wr := range warnings {
		fmt.Fprintf(w, "%-*d %-*s %s\n", lineW, wr.Line, reasonW, wr.Reason(), dimStyle.Render(wr.Text))
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// styled renders s in the color of status.
func styled(status task.Status, s string) string {
	if st, ok := statusStyles[status.Color()]; ok {
		return st.Render(s)
	}
	return s
}
