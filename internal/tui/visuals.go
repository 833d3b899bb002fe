package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// occupancy returns online/max as a percentage. Servers reporting no
// capacity count as empty.
func occupancy(online, maxPlayers int) float64 {
	if maxPlayers <= 0 || online <= 0 {
		return 0
	}
	return math.Min(100, float64(online)/float64(maxPlayers)*100)
}

// renderProgressBar creates a progress bar with color coding
// value: percentage (0-100)
// width: total width of the bar
func renderProgressBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	filledWidth := int(math.Round(value / 100.0 * float64(width)))
	emptyWidth := width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)

	return lipgloss.NewStyle().
		Foreground(getFillColor(value)).
		Render(filled + empty)
}

// renderPlayersBar renders "online/max" followed by a fill bar
func renderPlayersBar(online, maxPlayers, barWidth int) string {
	return fmt.Sprintf("%s %s", renderProgressBar(occupancy(online, maxPlayers), barWidth),
		fmt.Sprintf("%d/%d", online, maxPlayers))
}

// getFillColor returns a color for how full a server is. Busier servers are greener.
func getFillColor(percentage float64) lipgloss.Color {
	switch {
	case percentage >= 90:
		return lipgloss.Color("#FF0000") // Red
	case percentage >= 50:
		return lipgloss.Color("#00FF00") // Green
	case percentage >= 20:
		return lipgloss.Color("#90EE90") // Light Green
	case percentage > 0:
		return lipgloss.Color("#FFFF00") // Yellow
	default:
		return lipgloss.Color("#808080") // Grey
	}
}

// renderBox creates a box with the given content using box-drawing characters
func renderBox(title string, content string, width int) string {
	if width < 4 {
		width = 4
	}

	var b strings.Builder

	b.WriteString("╭─")
	if title != "" {
		b.WriteString(" ")
		b.WriteString(title)
		b.WriteString(" ")
		remaining := width - lipgloss.Width(title) - 6 // 6 for "╭─  ─╮"
		if remaining > 0 {
			b.WriteString(strings.Repeat("─", remaining))
		}
	} else {
		b.WriteString(strings.Repeat("─", width-4))
	}
	b.WriteString("─╮\n")

	for _, line := range strings.Split(content, "\n") {
		b.WriteString("│ ")
		b.WriteString(line)
		padding := width - lipgloss.Width(line) - 4 // 4 for "│  │"
		if padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteString(" │\n")
	}

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", width-2))
	b.WriteString("╯")

	return b.String()
}

// renderSeparator creates a horizontal separator
func renderSeparator(width int, title string) string {
	if title == "" {
		return strings.Repeat("─", width)
	}

	var b strings.Builder
	b.WriteString("─ ")
	b.WriteString(title)
	b.WriteString(" ")
	remaining := width - lipgloss.Width(title) - 3 // 3 for "─  "
	if remaining > 0 {
		b.WriteString(strings.Repeat("─", remaining))
	}
	return b.String()
}
