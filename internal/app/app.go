// Package app owns the viewer's state: the task board, the tab cursor
// and one selection cursor per tab. Input arrives as discrete events and
// the renderer reads a Frame snapshot.
package app

import (
	"github.com/twiced-technology-gmbh/tasktxt/internal/board"
	"github.com/twiced-technology-gmbh/tasktxt/internal/cursor"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

// DefaultTitle is shown above the tab bar when no title is configured.
const DefaultTitle = "Task txt"

// Event is a discrete input to Dispatch.
type Event int

// Events. Anything the input layer cannot map becomes EventNone.
const (
	EventNone Event = iota
	EventQuit
	EventLeft
	EventRight
	EventUp
	EventDown
	EventTick
)

var eventNames = [...]string{
	EventNone:  "none",
	EventQuit:  "quit",
	EventLeft:  "left",
	EventRight: "right",
	EventUp:    "up",
	EventDown:  "down",
	EventTick:  "tick",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Tab binds a tab label to the status whose tasks it shows.
type Tab struct {
	Label  string
	Status task.Status
}

// Tabs returns the tab ring in display order. The order is fixed and
// differs from the status declaration order.
func Tabs() []Tab {
	return []Tab{
		{Label: "Not Done", Status: task.NotDone},
		{Label: "Almost Done", Status: task.AlmostDone},
		{Label: "Done", Status: task.Done},
		{Label: "Unsure", Status: task.Unsure},
	}
}

// TabOrder returns the statuses in tab order.
func TabOrder() []task.Status {
	tabs := Tabs()
	order := make([]task.Status, len(tabs))
	for i, t := range tabs {
		order[i] = t.Status
	}
	return order
}

// State is the single owner of everything the viewer mutates. It is not
// safe for concurrent use; the TUI loop is its only caller.
type State struct {
	title string
	tabs  []Tab
	board *board.Board
	ring  cursor.Ring
	lists []cursor.List // indexed by tab position
	quit  bool
}

// New returns a State over b with the first tab active and nothing
// selected.
func New(b *board.Board, title string) *State {
	if title == "" {
		title = DefaultTitle
	}
	tabs := Tabs()
	s := &State{
		title: title,
		tabs:  tabs,
		ring:  cursor.NewRing(len(tabs)),
		lists: make([]cursor.List, len(tabs)),
	}
	s.setBoard(b)
	return s
}

func (s *State) setBoard(b *board.Board) {
	if b == nil {
		b = board.New(nil)
	}
	s.board = b
	for i, t := range s.tabs {
		s.lists[i].Resize(b.Len(t.Status))
	}
}

// Dispatch applies one event. Once quit has been requested every later
// event is ignored.
func (s *State) Dispatch(ev Event) {
	if s.quit {
		return
	}
	switch ev {
	case EventQuit:
		s.quit = true
	case EventLeft:
		s.ring.Previous()
	case EventRight:
		s.ring.Next()
	case EventUp:
		s.activeList().Previous()
	case EventDown:
		s.activeList().Next()
	case EventTick:
		// Reserved for time-based updates.
	case EventNone:
	}
}

// Reload swaps in a freshly parsed board. The active tab is kept and each
// tab's selection is re-validated against its new length.
func (s *State) Reload(b *board.Board) {
	if s.quit {
		return
	}
	s.setBoard(b)
}

// Quit reports whether a quit event has been dispatched.
func (s *State) Quit() bool { return s.quit }

// ActiveTab returns the index of the active tab.
func (s *State) ActiveTab() int { return s.ring.Index() }

// SelectTab activates tab i directly. Out-of-range indexes are ignored.
func (s *State) SelectTab(i int) bool {
	if s.quit {
		return false
	}
	return s.ring.Set(i)
}

// Board returns the current board.
func (s *State) Board() *board.Board { return s.board }

func (s *State) activeList() *cursor.List {
	return &s.lists[s.ring.Index()]
}
