package board

import (
	"slices"
	"strings"

	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

// FilterOptions defines which tasks to include.
type FilterOptions struct {
	Statuses []task.Status // empty means all statuses
	Search   string        // case-insensitive substring of the description
}

// Filter returns tasks matching all specified criteria (AND logic), in
// their original order.
func Filter(tasks []task.Task, opts FilterOptions) []task.Task {
	var result []task.Task
	for _, t := range tasks {
		if matchesFilter(t, opts) {
			result = append(result, t)
		}
	}
	return result
}

func matchesFilter(t task.Task, opts FilterOptions) bool {
	if len(opts.Statuses) > 0 && !slices.Contains(opts.Statuses, t.Status) {
		return false
	}
	if opts.Search != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(opts.Search)) {
		return false
	}
	return true
}
