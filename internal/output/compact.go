package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/tasktxt/internal/board"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

// TaskCompact renders tasks one per line in their file form, colored by
// status.
func TaskCompact(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	for _, t := range tasks {
		fmt.Fprintln(w, styled(t.Status, t.String()))
	}
}

// SummaryCompact renders per-status counts on one line.
func SummaryCompact(w io.Writer, ov board.Overview) {
	parts := make([]string, 0, len(ov.Statuses))
	for _, sc := range ov.Statuses {
		parts = append(parts, styled(sc.Status, sc.Marker+"="+strconv.Itoa(sc.Count)))
	}
	fmt.Fprintf(w, "%d tasks: %s\n", ov.Total, strings.Join(parts, " "))
}

// WarningsCompact renders dropped lines as file:line: reason.
func WarningsCompact(w io.Writer, file string, warnings []task.LineWarning) {
	for _, wr := range warnings {
		fmt.Fprintf(w, "%s:%d: %s\n", file, wr.Line, wr.Reason())
	}
}
