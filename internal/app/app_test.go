package app

import (
	"slices"
	"testing"

	"github.com/twiced-technology-gmbh/tasktxt/internal/board"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

func newTestState(lines ...string) *State {
	return New(board.FromLines(slices.Values(lines)), "")
}

var mixedLines = []string{
	"[ ] - open one",
	"[X] - done one",
	"[ ] - open two",
	"[~] - almost one",
	"[ ] - open three",
	"[?] - unsure one",
}

func TestTabOrder(t *testing.T) {
	labels := make([]string, 0, 4)
	for _, tab := range Tabs() {
		labels = append(labels, tab.Label)
	}
	want := []string{"Not Done", "Almost Done", "Done", "Unsure"}
	if !slices.Equal(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}

	wantOrder := []task.Status{task.NotDone, task.AlmostDone, task.Done, task.Unsure}
	if !slices.Equal(TabOrder(), wantOrder) {
		t.Errorf("TabOrder = %v, want %v", TabOrder(), wantOrder)
	}
}

func TestNewDefaults(t *testing.T) {
	s := newTestState(mixedLines...)
	if s.ActiveTab() != 0 {
		t.Errorf("ActiveTab = %d", s.ActiveTab())
	}
	if s.Quit() {
		t.Error("new state should not be quitting")
	}
	f := s.Frame()
	if f.Title != DefaultTitle {
		t.Errorf("Title = %q", f.Title)
	}
	if f.HasSelection() || f.Selected != -1 {
		t.Errorf("Selected = %d, want -1", f.Selected)
	}
}

func TestDispatchTabs(t *testing.T) {
	s := newTestState(mixedLines...)

	for i, want := range []int{3, 2, 1, 0} {
		s.Dispatch(EventLeft)
		if s.ActiveTab() != want {
			t.Errorf("left #%d: tab = %d, want %d", i+1, s.ActiveTab(), want)
		}
	}
	for i, want := range []int{1, 2, 3, 0} {
		s.Dispatch(EventRight)
		if s.ActiveTab() != want {
			t.Errorf("right #%d: tab = %d, want %d", i+1, s.ActiveTab(), want)
		}
	}
}

func TestDispatchNavigatesActiveTabOnly(t *testing.T) {
	s := newTestState(mixedLines...)

	// Not Done has three items.
	for _, want := range []int{0, 1, 2, 2} {
		s.Dispatch(EventDown)
		if got := s.Frame().Selected; got != want {
			t.Errorf("NotDone selection = %d, want %d", got, want)
		}
	}

	// Done (tab 2) keeps its own cursor.
	s.Dispatch(EventRight)
	s.Dispatch(EventRight)
	f := s.Frame()
	if f.Active != 2 || f.Selected != -1 {
		t.Fatalf("Done tab: active=%d selected=%d", f.Active, f.Selected)
	}
	s.Dispatch(EventDown)
	if got := s.Frame().Selected; got != 0 {
		t.Errorf("Done selection = %d, want 0", got)
	}

	// Back to Not Done: previous position is remembered.
	s.Dispatch(EventLeft)
	s.Dispatch(EventLeft)
	if got := s.Frame().Selected; got != 2 {
		t.Errorf("NotDone selection after return = %d, want 2", got)
	}
	for _, want := range []int{1, 0, 0} {
		s.Dispatch(EventUp)
		if got := s.Frame().Selected; got != want {
			t.Errorf("NotDone up: selection = %d, want %d", got, want)
		}
	}
}

func TestDispatchEmptyTab(t *testing.T) {
	s := newTestState("[ ] - only open")
	s.Dispatch(EventRight) // Almost Done, empty
	s.Dispatch(EventDown)
	s.Dispatch(EventUp)
	f := s.Frame()
	if len(f.Items) != 0 {
		t.Fatalf("items = %+v", f.Items)
	}
	if f.HasSelection() || f.Selected != -1 {
		t.Errorf("empty tab selection = %d, want -1", f.Selected)
	}
}

func TestDispatchQuitStopsTransitions(t *testing.T) {
	s := newTestState(mixedLines...)
	s.Dispatch(EventQuit)
	if !s.Quit() {
		t.Fatal("quit not set")
	}
	s.Dispatch(EventRight)
	s.Dispatch(EventDown)
	if s.ActiveTab() != 0 || s.Frame().Selected != -1 {
		t.Errorf("state changed after quit: tab=%d sel=%d", s.ActiveTab(), s.Frame().Selected)
	}
	if s.SelectTab(2) {
		t.Error("SelectTab changed tab after quit")
	}
}

func TestDispatchTickAndNoneAreNoops(t *testing.T) {
	s := newTestState(mixedLines...)
	s.Dispatch(EventDown)
	before := s.Frame()
	s.Dispatch(EventTick)
	s.Dispatch(EventNone)
	s.Dispatch(Event(99))
	after := s.Frame()
	if before.Active != after.Active || before.Selected != after.Selected {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
}

func TestSelectTab(t *testing.T) {
	s := newTestState(mixedLines...)
	if !s.SelectTab(3) || s.ActiveTab() != 3 {
		t.Errorf("SelectTab(3): tab = %d", s.ActiveTab())
	}
	if s.SelectTab(7) {
		t.Error("SelectTab(7) should be ignored")
	}
}

func TestReloadRevalidatesSelection(t *testing.T) {
	s := newTestState(mixedLines...)
	s.Dispatch(EventDown)
	s.Dispatch(EventDown)
	s.Dispatch(EventDown) // NotDone at 2

	s.Reload(board.FromLines(slices.Values([]string{"[ ] - survivor", "[X] - d"})))
	f := s.Frame()
	if len(f.Items) != 1 || f.Selected != 0 {
		t.Errorf("after shrink: items=%d selected=%d", len(f.Items), f.Selected)
	}

	s.Reload(board.FromLines(slices.Values([]string{"[X] - d"})))
	f = s.Frame()
	if len(f.Items) != 0 || f.Selected != -1 {
		t.Errorf("after empty: items=%d selected=%d", len(f.Items), f.Selected)
	}

	s.Reload(nil)
	if s.Board().Total() != 0 {
		t.Errorf("Reload(nil) total = %d", s.Board().Total())
	}
}

func TestEventString(t *testing.T) {
	if EventDown.String() != "down" || Event(-1).String() != "unknown" {
		t.Errorf("unexpected names: %q %q", EventDown.String(), Event(-1).String())
	}
}
