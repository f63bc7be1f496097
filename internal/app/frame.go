package app

import (
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

// Item is one row of the active tab.
type Item struct {
	Description string
	Status      task.Status
	Color       task.Color
}

// Frame is a read-only snapshot of what to draw: the tab bar and the
// active tab's list. Renderers must not hold on to it across updates.
type Frame struct {
	Title    string
	Labels   []string
	Counts   []int // tasks per tab, parallel to Labels
	Active   int
	Items    []Item
	Selected int // index into Items, or -1 for no selection
	Total    int
}

// HasSelection reports whether Selected points at an item.
func (f Frame) HasSelection() bool {
	return f.Selected >= 0 && f.Selected < len(f.Items)
}

// Frame builds the snapshot for the current state.
func (s *State) Frame() Frame {
	f := Frame{
		Title:    s.title,
		Labels:   make([]string, len(s.tabs)),
		Counts:   make([]int, len(s.tabs)),
		Active:   s.ring.Index(),
		Selected: -1,
		Total:    s.board.Total(),
	}
	for i, t := range s.tabs {
		f.Labels[i] = t.Label
		f.Counts[i] = s.board.Len(t.Status)
	}

	tasks := s.board.Tasks(s.tabs[f.Active].Status)
	f.Items = make([]Item, len(tasks))
	for i, t := range tasks {
		f.Items[i] = Item{
			Description: t.Description,
			Status:      t.Status,
			Color:       t.Status.Color(),
		}
	}

	if sel, ok := s.activeList().Selected(); ok && sel < len(f.Items) {
		f.Selected = sel
	}
	return f
}
