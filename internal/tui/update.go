package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case serversLoadedMsg:
		if m.mode == viewList {
			m.loading = false
		}
		if msg.err != nil {
			slog.Error("server search failed", "error", msg.err)
			return m.showError(fmt.Errorf("search failed: %w", msg.err))
		}

		m.servers = msg.servers
		m.lastUpdate = time.Now()

		if len(m.servers) == 0 {
			m.selectedIdx = 0
		} else if m.selectedIdx >= len(m.servers) {
			m.selectedIdx = len(m.servers) - 1
		}

		return m, nil

	case detailLoadedMsg:
		// Ignore lookups the user has already navigated away from.
		if m.mode != viewDetail || msg.addr != m.detailAddr {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			slog.Error("server info failed", "server", msg.addr, "error", msg.err)
			m.mode = viewList
			return m.showError(fmt.Errorf("failed to load %s: %w", msg.addr, msg.err))
		}

		m.detail = msg.detail
		return m, nil

	case clearErrorMsg:
		if time.Since(m.errorTime) >= errorDisplayTime {
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) showError(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.errorTime = time.Now()
	return m, clearErrorCmd()
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == viewDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, searchCmd(m.ctx, m.browser, m.filter)
	}

	if len(m.servers) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case "down", "j":
		if m.selectedIdx < len(m.servers)-1 {
			m.selectedIdx++
		}

	case "pgup":
		m.selectedIdx = max(0, m.selectedIdx-m.visibleRows())

	case "pgdown":
		m.selectedIdx = min(len(m.servers)-1, m.selectedIdx+m.visibleRows())

	case "home", "g":
		m.selectedIdx = 0

	case "end", "G":
		m.selectedIdx = len(m.servers) - 1

	case "enter":
		server, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = viewDetail
		m.detail = nil
		m.detailAddr = server.Server
		m.loading = true
		return m, detailCmd(m.ctx, m.browser, server.Server)
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "h", "left":
		m.mode = viewList
		m.detail = nil
		m.detailAddr = ""
		m.loading = false
		return m, nil

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, detailCmd(m.ctx, m.browser, m.detailAddr)
	}

	return m, nil
}
