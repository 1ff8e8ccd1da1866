package prompt

import "github.com/charmbracelet/lipgloss"

// Picker palette: cyan selection, yellow title, dim descriptions.
var (
	accent    = lipgloss.Color("14")
	accentDim = lipgloss.Color("6")
	textDim   = lipgloss.Color("8")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
)
