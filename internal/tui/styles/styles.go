package styles

import "github.com/charmbracelet/lipgloss"

// Styles defines the core UI styles
var (
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1)

	Path = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#73F59F"))

	Cursor = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true)

	Folder = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7B61FF")).
		Bold(true)

	File = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC"))

	Detail = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9"))

	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9"))

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F")).
		Bold(true)
)
