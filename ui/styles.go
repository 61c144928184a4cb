package ui

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("39")  // blue
	secondary = lipgloss.Color("240") // gray
	accent    = lipgloss.Color("86")  // green
	danger    = lipgloss.Color("196") // red
	muted     = lipgloss.Color("245")

	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1)

	// List rows
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cmdPreviewStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	outputTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(secondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	// Add form
	labelStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondary).
			Padding(0, 1)

	focusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(primary).
				Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)
