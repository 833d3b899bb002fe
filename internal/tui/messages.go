package tui

import "github.com/steviee/serverseeker/internal/serverseeker"

// serversLoadedMsg is sent when a search completes
type serversLoadedMsg struct {
	servers []serverseeker.ServerSummary
	err     error
}

// detailLoadedMsg is sent when a server_info lookup completes
type detailLoadedMsg struct {
	addr   string
	detail *serverseeker.ServerDetail
	err    error
}

// clearErrorMsg is sent to clear the error message
type clearErrorMsg struct{}
