package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/tasktxt/internal/app"
)

// Layout constants.
const (
	highlight = ">> "

	defaultWidth = 60
	maxWidth     = 100

	headerChrome = 3 // title, tab bar, blank line
	listChrome   = 4 // box borders and the two scroll indicator rows
	footerChrome = 2 // blank line and status bar
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.state.Quit() {
		return ""
	}
	f := m.state.Frame()
	width := m.contentWidth()

	parts := []string{
		titleStyle.Render(truncate(f.Title, width)),
		m.renderTabs(f),
		"",
		m.renderList(f, width),
		"",
		m.renderStatusBar(f, width),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return min(m.width, maxWidth)
}

// listRows is how many items fit in the list box.
func (m *Model) listRows(f app.Frame) int {
	if m.height == 0 {
		return max(len(f.Items), 1)
	}
	helpLines := 1
	if m.help.ShowAll {
		for _, group := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(group))
		}
	}
	return max(m.height-headerChrome-listChrome-footerChrome-helpLines, 1)
}

func (m *Model) renderTabs(f app.Frame) string {
	tabs := make([]string, len(f.Labels))
	for i, label := range f.Labels {
		text := fmt.Sprintf("%s (%d)", label, f.Counts[i])
		if i == f.Active {
			tabs[i] = activeTabStyle.Render(text)
		} else {
			tabs[i] = tabStyle.Render(text)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderList(f app.Frame, width int) string {
	// Box border (2) and padding (2).
	const boxChrome = 4
	inner := max(width-boxChrome, 1)

	start := min(m.offsets[f.Active], len(f.Items))
	end := min(start+m.listRows(f), len(f.Items))

	var lines []string
	if start > 0 {
		lines = append(lines, dimStyle.Render(truncate(fmt.Sprintf("↑ %d more", start), inner)))
	}

	if len(f.Items) == 0 {
		lines = append(lines, dimStyle.Render("(empty)"))
	}
	for i := start; i < end; i++ {
		item := f.Items[i]
		prefix := strings.Repeat(" ", len(highlight))
		selected := i == f.Selected
		if selected {
			prefix = highlight
		}
		text := truncate(item.Description, inner-len(prefix))
		lines = append(lines, itemStyle(item.Color, selected).Render(prefix+text))
	}

	if end < len(f.Items) {
		lines = append(lines, dimStyle.Render(truncate(fmt.Sprintf("↓ %d more", len(f.Items)-end), inner)))
	}

	return listStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStatusBar(f app.Frame, width int) string {
	if m.err != nil {
		return errorStyle.Render(truncate("Error: "+m.err.Error(), width))
	}
	text := fmt.Sprintf("%d tasks", f.Total)
	if f.HasSelection() {
		text = fmt.Sprintf("%d/%d · %s", f.Selected+1, len(f.Items), text)
	}
	if m.path != "" {
		text = filepath.Base(m.path) + " · " + text
	}
	return statusBarStyle.Render(truncate(text, width))
}

// truncate shortens s to maxLen display columns, ending in "...".
func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	target := min(maxLen-3, len(runes)) //nolint:mnd // room for "..."
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
