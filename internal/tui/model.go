package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/steviee/serverseeker/internal/serverseeker"
)

// Browser is the subset of the ServerSeeker client the browser needs.
type Browser interface {
	Servers(ctx context.Context, filter *serverseeker.ServerFilter) ([]serverseeker.ServerSummary, error)
	ServerInfo(ctx context.Context, ip string, port int) (*serverseeker.ServerDetail, error)
}

type viewMode int

const (
	viewList viewMode = iota
	viewDetail
)

// Model is the bubbletea model for the server browser
type Model struct {
	servers     []serverseeker.ServerSummary
	selectedIdx int
	mode        viewMode
	detail      *serverseeker.ServerDetail
	detailAddr  string
	lastUpdate  time.Time
	err         error
	errorTime   time.Time
	loading     bool
	width       int
	height      int
	browser     Browser
	filter      *serverseeker.ServerFilter
	ctx         context.Context
	quitting    bool
}

// NewModel creates a browser that runs filter against b
func NewModel(ctx context.Context, b Browser, filter *serverseeker.ServerFilter) *Model {
	return &Model{
		servers: []serverseeker.ServerSummary{},
		loading: true,
		browser: b,
		filter:  filter,
		ctx:     ctx,
	}
}

// Init starts the first search
func (m Model) Init() tea.Cmd {
	return searchCmd(m.ctx, m.browser, m.filter)
}

func searchCmd(ctx context.Context, b Browser, filter *serverseeker.ServerFilter) tea.Cmd {
	return func() tea.Msg {
		servers, err := b.Servers(ctx, filter)
		return serversLoadedMsg{
			servers: servers,
			err:     err,
		}
	}
}

func detailCmd(ctx context.Context, b Browser, addr string) tea.Cmd {
	return func() tea.Msg {
		ip, port, err := serverseeker.SplitAddress(addr)
		if err != nil {
			return detailLoadedMsg{addr: addr, err: err}
		}

		detail, err := b.ServerInfo(ctx, ip, port)
		return detailLoadedMsg{
			addr:   addr,
			detail: detail,
			err:    err,
		}
	}
}

// clearErrorCmd returns a command that clears the error message after a delay
func clearErrorCmd() tea.Cmd {
	return tea.Tick(errorDisplayTime, func(t time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

const errorDisplayTime = 3 * time.Second

// selected returns the highlighted server, if any.
func (m Model) selected() (serverseeker.ServerSummary, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.servers) {
		return serverseeker.ServerSummary{}, false
	}
	return m.servers[m.selectedIdx], true
}
