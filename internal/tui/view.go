package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/serverseeker"
)

const (
	defaultWidth = 80
	defaultRows  = 20
	// header box, blank line, table header, footer and error line
	chromeLines = 8
)

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Browser closed.\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.mode == viewDetail {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if m.err != nil && time.Since(m.errorTime) < errorDisplayTime {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
	}

	return b.String()
}

func (m Model) totalWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// visibleRows is how many table rows fit on screen.
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return defaultRows
	}
	return max(3, m.height-chromeLines)
}

// renderHeader renders the browser header
func (m Model) renderHeader() string {
	title := "ServerSeeker Browser"

	status := fmt.Sprintf("%d servers", len(m.servers))
	if !m.lastUpdate.IsZero() {
		status += fmt.Sprintf(" | Updated: %s", m.lastUpdate.Format("15:04:05"))
	}

	totalWidth := m.totalWidth()
	spacing := max(1, totalWidth-len(title)-len(status)-4) // 4 for padding

	var b strings.Builder
	b.WriteString("╭")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╮\n")

	headerText := fmt.Sprintf(" %s%s%s ", title, strings.Repeat(" ", spacing), status)
	b.WriteString("│")
	b.WriteString(headerStyle.Render(headerText))
	b.WriteString("│\n")

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╯")

	return b.String()
}

// renderList renders the search results table
func (m Model) renderList() string {
	if m.loading && len(m.servers) == 0 {
		return "\nSearching servers...\n"
	}
	if len(m.servers) == 0 {
		return "\nNo servers match the current filter. Press r to search again.\n"
	}

	var b strings.Builder

	addrWidth := len("SERVER")
	for _, s := range m.servers {
		addrWidth = max(addrWidth, len(s.Server))
	}
	versionWidth := 12
	playersWidth := 18 // bar, space and "online/max"
	authWidth := 8
	seenWidth := 16

	descWidth := m.totalWidth() - addrWidth - versionWidth - playersWidth - authWidth - seenWidth - 14
	descWidth = max(10, descWidth)

	headerRow := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s  %-*s  %s",
		addrWidth, "SERVER",
		versionWidth, "VERSION",
		playersWidth, "PLAYERS",
		authWidth, "AUTH",
		seenWidth, "LAST SEEN",
		"DESCRIPTION",
	)
	b.WriteString(tableHeaderStyle.Render(headerRow))
	b.WriteString("\n")

	start, end := m.window()
	now := time.Now()

	for i := start; i < end; i++ {
		s := m.servers[i]

		auth := "premium"
		if s.Cracked {
			auth = "cracked"
		}
		authCol := fmt.Sprintf("%s %-*s", getAuthIndicator(s.Cracked), authWidth-2, auth)
		playersCol := renderPlayersBar(s.OnlinePlayers, s.MaxPlayers, 6)
		versionCol := fmt.Sprintf("%-*s", versionWidth, cmdutil.Truncate(s.Version, versionWidth))
		seenCol := fmt.Sprintf("%-*s", seenWidth, cmdutil.FormatLastSeen(s.LastSeen, now))
		descCol := cmdutil.Truncate(cmdutil.CleanDescription(s.Description), descWidth)

		if i == m.selectedIdx {
			row := fmt.Sprintf("> %-*s  %s  %-*s  %s  %s  %s",
				addrWidth, s.Server, versionCol, playersWidth, fmt.Sprintf("%d/%d", s.OnlinePlayers, s.MaxPlayers),
				authCol, seenCol, descCol)
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(fmt.Sprintf("  %-*s  %s  %s  %s  %s  %s",
				addrWidth, s.Server, versionCol, padVisible(playersCol, playersWidth),
				getAuthStyle(s.Cracked).Render(authCol), seenCol, descCol))
		}
		b.WriteString("\n")
	}

	if end-start < len(m.servers) {
		b.WriteString(footerStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(m.servers))))
		b.WriteString("\n")
	}

	return b.String()
}

// window returns the slice of rows to draw so the selection stays visible.
func (m Model) window() (int, int) {
	rows := m.visibleRows()
	start := 0
	if m.selectedIdx >= rows {
		start = m.selectedIdx - rows + 1
	}
	end := min(len(m.servers), start+rows)
	return start, end
}

// renderDetail renders the selected server and its player history
func (m Model) renderDetail() string {
	if m.detail == nil {
		if m.loading {
			if s, ok := m.summaryFor(m.detailAddr); ok {
				return fmt.Sprintf("\nLoading %s (%s, %d/%d players)...\n",
					m.detailAddr, s.Version, s.OnlinePlayers, s.MaxPlayers)
			}
			return fmt.Sprintf("\nLoading %s...\n", m.detailAddr)
		}
		return fmt.Sprintf("\nNo details for %s.\n", m.detailAddr)
	}

	d := m.detail
	now := time.Now()
	width := m.totalWidth()

	addr := d.Server
	if addr == "" {
		addr = m.detailAddr
	}

	var info strings.Builder
	writeField(&info, "Version", fmt.Sprintf("%s (protocol %d)", d.Version, d.Protocol))
	writeField(&info, "Players", renderPlayersBar(d.OnlinePlayers, d.MaxPlayers, 10))
	writeField(&info, "Cracked", getAuthStyle(d.Cracked).Render(cmdutil.YesNo(d.Cracked)))
	writeField(&info, "Last seen", fmt.Sprintf("%s (%s)",
		cmdutil.FormatLastSeen(d.LastSeen, now), cmdutil.FormatTimestamp(d.LastSeen)))
	info.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", "MOTD")) + " " +
		cmdutil.Truncate(cmdutil.CleanDescription(d.Description), max(10, width-16)))

	var b strings.Builder
	b.WriteString(renderBox(addr, info.String(), width))
	b.WriteString("\n")
	b.WriteString(renderSeparator(width, fmt.Sprintf("Players (%d)", len(d.Players))))
	b.WriteString("\n")

	if len(d.Players) == 0 {
		b.WriteString("No players recorded.\n")
		return b.String()
	}

	players := d.Players
	rows := max(1, m.visibleRows()-7) // box and separator
	if len(players) > rows {
		players = players[:rows]
	}

	nameWidth := len("PLAYER")
	for _, p := range players {
		nameWidth = max(nameWidth, len(p.Name))
	}

	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-*s  %-36s  %s", nameWidth, "PLAYER", "UUID", "LAST SEEN")))
	b.WriteString("\n")
	for _, p := range players {
		b.WriteString(fmt.Sprintf("%-*s  %-36s  %s\n", nameWidth, p.Name, p.UUID, cmdutil.FormatLastSeen(p.LastSeen, now)))
	}
	if len(players) < len(d.Players) {
		b.WriteString(footerStyle.Render(fmt.Sprintf("...and %d more", len(d.Players)-len(players))))
		b.WriteString("\n")
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

// padVisible pads s with spaces to width, ignoring ANSI escape sequences.
func padVisible(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderFooter renders the key help for the current view
func (m Model) renderFooter() string {
	if m.mode == viewDetail {
		return footerStyle.Render("[esc] back  [r]efresh  [q]uit")
	}
	return footerStyle.Render("[↑/↓] navigate  [enter] details  [r]efresh  [q]uit")
}

// summaryFor returns the list entry for addr, used to title a detail view
// before its lookup has returned.
func (m Model) summaryFor(addr string) (serverseeker.ServerSummary, bool) {
	for _, s := range m.servers {
		if s.Server == addr {
			return s, true
		}
	}
	return serverseeker.ServerSummary{}, false
}
