package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Base colors
	primaryColor   = lipgloss.Color("212")
	secondaryColor = lipgloss.Color("141")
	mutedColor     = lipgloss.Color("241")
	successColor   = lipgloss.Color("42")
	warningColor   = lipgloss.Color("214")
	errorColor     = lipgloss.Color("196")

	// Day card styles
	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	hebrewDateStyle = lipgloss.NewStyle().Foreground(secondaryColor)

	// Text styles
	subtleStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	completedStyle = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)
	dirtyStyle     = lipgloss.NewStyle().Foreground(warningColor)

	// Selected row style - inverted colors for visibility
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255"))

	// Celebration highlight for freshly completed dvorush tasks
	celebrateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("228")).
			Background(lipgloss.Color("57"))

	// Disclosure panel under an open task
	disclosureStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			MarginLeft(4)

	// Status bar styles
	statusStyle      = lipgloss.NewStyle().Foreground(successColor)
	statusErrorStyle = lipgloss.NewStyle().Foreground(errorColor)
)
