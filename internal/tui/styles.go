package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// palette maps task colors onto the 256-color terminal palette.
	palette = map[task.Color]lipgloss.Color{
		task.Red:    "196",
		task.Yellow: "226",
		task.Green:  "34",
		task.Blue:   "33",
	}
)

// itemStyle returns the style for a row of the given color.
func itemStyle(c task.Color, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(palette[c])
	if selected {
		s = s.Bold(true)
	}
	return s
}
