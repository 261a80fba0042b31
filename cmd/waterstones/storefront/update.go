package storefront

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"waterstones/internal/controller"
)

// Update is the bubbletea event loop. Gateway calls never run here; they
// are dispatched as commands and come back as refreshMsg.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshMsg:
		return m.clampCursor(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.focus {
	case FocusChat:
		return m.handleChatKey(msg)
	case FocusMood:
		return m.handleMoodKey(msg)
	case FocusSearch:
		return m.handleSearchKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// -------------------------------------------------------------------------
// Per-focus key handling
// -------------------------------------------------------------------------

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ctrl.CloseChat()
		m.chatInput.Blur()
		m.focus = FocusBrowse
		return m, nil

	case tea.KeyEnter:
		text := m.chatInput.Value()
		m.chatInput.Reset()
		return m, m.sendChatCmd(text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) handleMoodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.moodInput.Blur()
		m.focus = FocusBrowse
		return m, nil

	case tea.KeyEnter:
		text := m.moodInput.Value()
		return m, m.submitMoodCmd(text)
	}

	var cmd tea.Cmd
	m.moodInput, cmd = m.moodInput.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ctrl.GoHome()
		m.searchInput.Blur()
		m.focus = FocusBrowse
		m.cursor = 0
		return m, nil

	case tea.KeyEnter:
		results := m.ctrl.Results()
		if m.cursor < len(results) {
			m.ctrl.SelectProduct(results[m.cursor])
			m.searchInput.Blur()
			m.focus = FocusBrowse
			m.cursor = 0
		}
		return m, nil

	case tea.KeyUp:
		m.cursor--
		return m.clampCursor(), nil

	case tea.KeyDown:
		m.cursor++
		return m.clampCursor(), nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.ctrl.SetQuery(m.searchInput.Value())
	return m.clampCursor(), cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global shortcuts first.
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "c":
		m.focus = FocusChat
		m.chatInput.Focus()
		return m, m.openChatCmd()

	case "/":
		m.ctrl.StartSearch()
		m.ctrl.SetQuery("")
		m.searchInput.Reset()
		m.searchInput.Focus()
		m.focus = FocusSearch
		m.cursor = 0
		return m, nil
	}

	if m.ctrl.View() == controller.ViewDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleHomeKey(msg)
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.browseList()

	switch msg.String() {
	case "up", "k":
		m.cursor--
		return m.clampCursor(), nil

	case "down", "j":
		m.cursor++
		return m.clampCursor(), nil

	case "enter":
		if m.cursor < len(list) {
			m.ctrl.SelectProduct(list[m.cursor])
		}
		return m, nil

	case "a":
		if m.cursor < len(list) {
			m.ctrl.AddToCart(list[m.cursor])
		}
		return m, nil

	case "m":
		m.focus = FocusMood
		m.moodInput.Focus()
		return m, nil
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "backspace":
		m.ctrl.GoHome()
		m.cursor = 0
		return m, nil

	case "i":
		return m, m.insightCmd()

	case "a":
		if p, ok := m.ctrl.ActiveProduct(); ok {
			m.ctrl.AddToCart(p)
		}
		return m, nil
	}

	return m, nil
}

// -------------------------------------------------------------------------
// Gateway commands
// -------------------------------------------------------------------------
// The controller applies input validation and busy-flag bookkeeping; the
// commands just run the blocking call off the event loop.

func (m Model) openChatCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.OpenChat(context.Background())
		return refreshMsg{}
	}
}

func (m Model) sendChatCmd(text string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.SendChatMessage(context.Background(), text)
		return refreshMsg{}
	}
}

func (m Model) submitMoodCmd(text string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.SubmitMood(context.Background(), text)
		return refreshMsg{}
	}
}

func (m Model) insightCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.RequestInsight(context.Background())
		return refreshMsg{}
	}
}
