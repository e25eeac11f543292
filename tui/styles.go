package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7AA2F7"))

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B4261"))

	pausedClockStyle = clockStyle.
				Foreground(lipgloss.Color("#E0AF68"))

	stateStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4545"))
	helpStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)
