package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primary = lipgloss.Color("#FF6B9D")
	success = lipgloss.Color("#C3E88D")
	failure = lipgloss.Color("#F07178")
	info    = lipgloss.Color("#82AAFF")
	muted   = lipgloss.Color("#546E7A")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted)

	selectedFormatStyle = lipgloss.NewStyle().
				Foreground(primary).
				Bold(true)

	statusActiveStyle = lipgloss.NewStyle().
				Foreground(info).
				Bold(true)

	statusCompletedStyle = lipgloss.NewStyle().
				Foreground(success).
				Bold(true)

	statusFailedStyle = lipgloss.NewStyle().
				Foreground(failure).
				Bold(true)

	historyHeaderStyle = lipgloss.NewStyle().
				Foreground(primary).
				Bold(true).
				MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true).
			MarginTop(1)
)
