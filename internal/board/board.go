// Package board holds the parsed task list partitioned by status.
package board

import (
	"iter"
	"slices"

	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

// Board is the read-only snapshot of a tasks file: every parsed task in
// file order plus one order-preserving partition per status.
type Board struct {
	tasks    []task.Task
	byStatus map[task.Status][]task.Task
}

// New builds a Board from parsed tasks. Each task lands in exactly one
// partition, chosen by its status; relative file order is kept.
func New(tasks []task.Task) *Board {
	b := &Board{
		tasks:    slices.Clone(tasks),
		byStatus: make(map[task.Status][]task.Task, len(task.Statuses())),
	}
	for _, s := range task.Statuses() {
		b.byStatus[s] = nil
	}
	for _, t := range b.tasks {
		b.byStatus[t.Status] = append(b.byStatus[t.Status], t)
	}
	return b
}

// FromLines parses lines and builds a Board from the ones that parse.
func FromLines(lines iter.Seq[string]) *Board {
	return New(slices.Collect(task.Parse(lines)))
}

// Load reads and parses the tasks file at path. Dropped lines are
// returned as warnings; only open and read failures are errors.
func Load(path string) (*Board, []task.LineWarning, error) {
	tasks, warnings, err := task.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return New(tasks), warnings, nil
}

// All returns every task in file order.
func (b *Board) All() []task.Task {
	return slices.Clone(b.tasks)
}

// Tasks returns the partition for status s in file order.
func (b *Board) Tasks(s task.Status) []task.Task {
	return slices.Clone(b.byStatus[s])
}

// Len returns the size of the partition for status s.
func (b *Board) Len(s task.Status) int {
	return len(b.byStatus[s])
}

// Total returns the number of parsed tasks.
func (b *Board) Total() int {
	return len(b.tasks)
}

// StatusCount is one row of an Overview.
type StatusCount struct {
	Status task.Status `json:"status"`
	Marker string      `json:"marker"`
	Count  int         `json:"count"`
}

// Overview is the per-status task count of a board.
type Overview struct {
	Total    int           `json:"total"`
	Statuses []StatusCount `json:"statuses"`
}

// Summary counts tasks per status, listing statuses in the given order.
func (b *Board) Summary(order []task.Status) Overview {
	counts := make([]StatusCount, 0, len(order))
	for _, s := range order {
		counts = append(counts, StatusCount{
			Status: s,
			Marker: s.Marker(),
			Count:  b.Len(s),
		})
	}
	return Overview{Total: b.Total(), Statuses: counts}
}
