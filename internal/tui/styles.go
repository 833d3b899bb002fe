package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#00ADD8")).
			Padding(0, 1)

	// Table header styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	// Selected row style
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#FFA500")).
				Foreground(lipgloss.Color("#000000"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ADD8"))

	crackedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	premiumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// getAuthStyle colors the cracked column
func getAuthStyle(cracked bool) lipgloss.Style {
	if cracked {
		return crackedStyle
	}
	return premiumStyle
}

// getAuthIndicator returns the symbol shown before the auth mode
func getAuthIndicator(cracked bool) string {
	if cracked {
		return "✗"
	}
	return "●"
}
