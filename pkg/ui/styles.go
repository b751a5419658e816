package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles applied in terminal format only; text format keeps the documented
// plain line shapes byte-exact.
var (
	SizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9E9E9E"})

	RemoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#C6C6C6"})

	SummaryStyle = lipgloss.NewStyle().
			Bold(true)
)
