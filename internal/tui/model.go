// Package tui implements the terminal UI: it turns key presses and ticks
// into app events and draws the app's frame.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/tasktxt/internal/app"
	"github.com/twiced-technology-gmbh/tasktxt/internal/board"
	"github.com/twiced-technology-gmbh/tasktxt/internal/logging"
)

const defaultTick = 200 * time.Millisecond

// Options configures a Model.
type Options struct {
	// Path is the tasks file, shown in the status bar and re-read on reload.
	Path   string
	Title  string
	Tick   time.Duration
	Logger *log.Logger
}

// Model is the top-level bubbletea model.
type Model struct {
	state   *app.State
	keys    KeyMap
	help    help.Model
	path    string
	tick    time.Duration
	logger  *log.Logger
	width   int
	height  int
	err     error
	offsets []int // first visible row per tab
}

// New creates a Model showing b.
func New(b *board.Board, opts Options) *Model {
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	state := app.New(b, opts.Title)
	return &Model{
		state:   state,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		path:    opts.Path,
		tick:    tick,
		logger:  logger,
		offsets: make([]int, len(state.Frame().Labels)),
	}
}

// State exposes the app state for inspection.
func (m *Model) State() *app.State { return m.state }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Quit() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil
	case TickMsg:
		m.state.Dispatch(app.EventTick)
		return m, tickCmd(m.tick)
	case ReloadMsg:
		m.reload()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.ensureVisible()
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		if len(msg.Runes) == 1 {
			m.state.SelectTab(int(msg.Runes[0] - '1'))
			m.ensureVisible()
		}
		return m, nil
	}

	ev := m.keys.Event(msg)
	m.state.Dispatch(ev)
	if m.state.Quit() {
		return m, tea.Quit
	}
	m.ensureVisible()
	return m, nil
}

// reload re-reads the tasks file. A failed read keeps the current board
// and shows the error in the status bar.
func (m *Model) reload() {
	if m.path == "" {
		return
	}
	b, warnings, err := board.Load(m.path)
	if err != nil {
		m.err = err
		m.logger.Warn("reload failed", "file", m.path, "err", err)
		return
	}
	m.err = nil
	logging.DroppedLines(m.logger, m.path, warnings)
	m.state.Reload(b)
	m.logger.Info("reloaded", "file", m.path, "tasks", b.Total())
	m.ensureVisible()
}

// ensureVisible adjusts the active tab's scroll offset so the selected
// row is within the visible window.
func (m *Model) ensureVisible() {
	f := m.state.Frame()
	off := m.offsets[f.Active]
	rows := m.listRows(f)

	if f.HasSelection() {
		switch {
		case f.Selected >= off+rows:
			off = f.Selected - rows + 1
		case f.Selected < off:
			off = f.Selected
		}
	}
	off = min(off, max(len(f.Items)-rows, 0))
	m.offsets[f.Active] = max(off, 0)
}

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a board refresh.
type ReloadMsg struct{}

// TickMsg is sent every tick interval.
type TickMsg struct{}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return TickMsg{} })
}
