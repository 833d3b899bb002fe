package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/serverseeker/internal/serverseeker"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(browser Browser) Model {
	model := NewModel(context.Background(), browser, &serverseeker.ServerFilter{})
	model.loading = false
	model.servers = testServers()
	return *model
}

func TestHandleKeyPress_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		model := loadedModel(&mockBrowser{})

		updatedModel, cmd := model.Update(key)
		m := updatedModel.(Model)

		assert.True(t, m.quitting)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestHandleKeyPress_Navigation(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   tea.KeyMsg
		want  int
	}{
		{name: "down", start: 0, key: tea.KeyMsg{Type: tea.KeyDown}, want: 1},
		{name: "j", start: 1, key: keyRunes("j"), want: 2},
		{name: "down at bottom", start: 2, key: tea.KeyMsg{Type: tea.KeyDown}, want: 2},
		{name: "up", start: 2, key: tea.KeyMsg{Type: tea.KeyUp}, want: 1},
		{name: "k", start: 1, key: keyRunes("k"), want: 0},
		{name: "up at top", start: 0, key: tea.KeyMsg{Type: tea.KeyUp}, want: 0},
		{name: "end", start: 0, key: tea.KeyMsg{Type: tea.KeyEnd}, want: 2},
		{name: "G", start: 0, key: keyRunes("G"), want: 2},
		{name: "home", start: 2, key: tea.KeyMsg{Type: tea.KeyHome}, want: 0},
		{name: "pgdown", start: 0, key: tea.KeyMsg{Type: tea.KeyPgDown}, want: 2},
		{name: "pgup", start: 2, key: tea.KeyMsg{Type: tea.KeyPgUp}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := loadedModel(&mockBrowser{})
			model.selectedIdx = tt.start

			updatedModel, cmd := model.handleKeyPress(tt.key)
			m := updatedModel.(Model)

			assert.Equal(t, tt.want, m.selectedIdx)
			assert.Nil(t, cmd)
		})
	}
}

func TestHandleKeyPress_NoServers(t *testing.T) {
	model := loadedModel(&mockBrowser{})
	model.servers = []serverseeker.ServerSummary{}

	for _, key := range []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}, keyRunes("G")} {
		updatedModel, cmd := model.handleKeyPress(key)
		m := updatedModel.(Model)

		assert.Equal(t, 0, m.selectedIdx)
		assert.Equal(t, viewList, m.mode)
		assert.Nil(t, cmd)
	}
}

func TestHandleKeyPress_EnterLoadsDetail(t *testing.T) {
	detail := &serverseeker.ServerDetail{ServerSummary: serverseeker.ServerSummary{Server: "5.6.7.8:25566"}}
	browser := &mockBrowser{}
	browser.On("ServerInfo", context.Background(), "5.6.7.8", 25566).Return(detail, nil)

	model := loadedModel(browser)
	model.selectedIdx = 1

	updatedModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := updatedModel.(Model)

	assert.Equal(t, viewDetail, m.mode)
	assert.Equal(t, "5.6.7.8:25566", m.detailAddr)
	assert.True(t, m.loading)
	assert.Nil(t, m.detail)
	require.NotNil(t, cmd)

	updatedModel, _ = m.Update(cmd())
	m = updatedModel.(Model)

	assert.False(t, m.loading)
	assert.Same(t, detail, m.detail)
	browser.AssertExpectations(t)
}

func TestHandleKeyPress_BackFromDetail(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyBackspace}, keyRunes("h")} {
		model := loadedModel(&mockBrowser{})
		model.mode = viewDetail
		model.detailAddr = "1.2.3.4:25565"
		model.detail = &serverseeker.ServerDetail{}

		updatedModel, cmd := model.handleKeyPress(key)
		m := updatedModel.(Model)

		assert.Equal(t, viewList, m.mode)
		assert.Nil(t, m.detail)
		assert.Empty(t, m.detailAddr)
		assert.Nil(t, cmd)
	}
}

func TestHandleKeyPress_RefreshList(t *testing.T) {
	browser := &mockBrowser{}
	browser.On("Servers", context.Background(), &serverseeker.ServerFilter{}).Return(testServers()[:1], nil)

	model := loadedModel(browser)
	model.selectedIdx = 2

	updatedModel, cmd := model.handleKeyPress(keyRunes("r"))
	m := updatedModel.(Model)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	// A second refresh while loading is ignored.
	_, again := m.handleKeyPress(keyRunes("r"))
	assert.Nil(t, again)

	updatedModel, _ = m.Update(cmd())
	m = updatedModel.(Model)

	assert.False(t, m.loading)
	assert.Len(t, m.servers, 1)
	assert.Equal(t, 0, m.selectedIdx)
	assert.False(t, m.lastUpdate.IsZero())
	browser.AssertExpectations(t)
}

func TestHandleKeyPress_RefreshDetail(t *testing.T) {
	detail := &serverseeker.ServerDetail{}
	browser := &mockBrowser{}
	browser.On("ServerInfo", context.Background(), "1.2.3.4", 25565).Return(detail, nil)

	model := loadedModel(browser)
	model.mode = viewDetail
	model.detailAddr = "1.2.3.4:25565"

	updatedModel, cmd := model.handleKeyPress(keyRunes("r"))
	m := updatedModel.(Model)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	msg := cmd().(detailLoadedMsg)
	assert.Same(t, detail, msg.detail)
	browser.AssertExpectations(t)
}

func TestModelUpdate_ServersLoaded_Error(t *testing.T) {
	model := NewModel(context.Background(), &mockBrowser{}, nil)

	updatedModel, cmd := model.Update(serversLoadedMsg{err: serverseeker.NewAPIError(429, "slow down")})
	m := updatedModel.(Model)

	assert.False(t, m.loading)
	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, serverseeker.ErrRateLimitExceeded)
	assert.Contains(t, m.err.Error(), "search failed")
	assert.NotNil(t, cmd) // schedules the error to clear
}

func TestModelUpdate_ServersLoaded_ClampsSelection(t *testing.T) {
	model := loadedModel(&mockBrowser{})
	model.selectedIdx = 2

	updatedModel, _ := model.Update(serversLoadedMsg{servers: testServers()[:2]})
	m := updatedModel.(Model)

	assert.Equal(t, 1, m.selectedIdx)
}

func TestModelUpdate_DetailLoaded_Error(t *testing.T) {
	model := loadedModel(&mockBrowser{})
	model.mode = viewDetail
	model.detailAddr = "1.2.3.4:25565"
	model.loading = true

	updatedModel, cmd := model.Update(detailLoadedMsg{addr: "1.2.3.4:25565", err: errors.New("boom")})
	m := updatedModel.(Model)

	assert.Equal(t, viewList, m.mode)
	assert.False(t, m.loading)
	assert.EqualError(t, m.err, "failed to load 1.2.3.4:25565: boom")
	assert.NotNil(t, cmd)
}

func TestModelUpdate_DetailLoaded_Stale(t *testing.T) {
	model := loadedModel(&mockBrowser{})
	model.mode = viewDetail
	model.detailAddr = "9.9.9.9:25565"
	model.loading = true

	updatedModel, cmd := model.Update(detailLoadedMsg{addr: "1.2.3.4:25565", detail: &serverseeker.ServerDetail{}})
	m := updatedModel.(Model)

	assert.Nil(t, m.detail)
	assert.True(t, m.loading)
	assert.Nil(t, cmd)

	// Back in the list view, late results are dropped too.
	model.mode = viewList
	updatedModel, _ = model.Update(detailLoadedMsg{addr: "9.9.9.9:25565", detail: &serverseeker.ServerDetail{}})
	assert.Nil(t, updatedModel.(Model).detail)
}

func TestModelUpdate_WindowSize(t *testing.T) {
	model := NewModel(context.Background(), &mockBrowser{}, nil)

	updatedModel, cmd := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updatedModel.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Nil(t, cmd)
}

func TestModelUpdate_ClearError(t *testing.T) {
	model := NewModel(context.Background(), &mockBrowser{}, nil)

	model.err = errors.New("recent")
	model.errorTime = time.Now()
	updatedModel, _ := model.Update(clearErrorMsg{})
	assert.Error(t, updatedModel.(Model).err)

	model.errorTime = time.Now().Add(-4 * time.Second)
	updatedModel, _ = model.Update(clearErrorMsg{})
	assert.NoError(t, updatedModel.(Model).err)
}
