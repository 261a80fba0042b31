// Package storefront provides the interactive TUI for the bookshop demo.
// The split follows the usual bubbletea layout:
//   - model.go: types, construction, Init
//   - update.go: the Update loop, key handling, async gateway commands
//   - view.go: rendering
//
// All storefront state lives in the controller; the Model here only holds
// presentation concerns (inputs, focus, cursor, sizes).
package storefront

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"waterstones/cmd/waterstones/ui"
	"waterstones/internal/catalog"
	"waterstones/internal/controller"
)

// Focus determines which component receives keystrokes.
type Focus int

const (
	FocusBrowse Focus = iota
	FocusMood
	FocusSearch
	FocusChat
)

// refreshMsg signals that a background gateway operation finished and the
// controller state should be re-read.
type refreshMsg struct{}

// Model is the bubbletea model for the storefront.
type Model struct {
	ctrl     *controller.Controller
	styles   ui.Styles
	renderer *glamour.TermRenderer
	logger   *zap.Logger

	moodInput   textinput.Model
	searchInput textinput.Model
	chatInput   textinput.Model
	spin        spinner.Model

	focus  Focus
	cursor int
	width  int
	height int
	ready  bool
}

// New creates the storefront model. A nil logger is replaced with a no-op
// logger.
func New(ctrl *controller.Controller, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := ui.DefaultStyles()

	mood := textinput.New()
	mood.Placeholder = "e.g. 'A cozy mystery in the English countryside'"
	mood.CharLimit = 200
	mood.Width = 60

	search := textinput.New()
	search.Placeholder = "Search authors, titles..."
	search.CharLimit = 100
	search.Width = 40

	chat := textinput.New()
	chat.Placeholder = "Ask for a recommendation..."
	chat.CharLimit = 500
	chat.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable", zap.Error(err))
	}

	return Model{
		ctrl:        ctrl,
		styles:      styles,
		renderer:    renderer,
		logger:      logger,
		moodInput:   mood,
		searchInput: search,
		chatInput:   chat,
		spin:        sp,
	}
}

// Init starts the spinner and cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// browseList returns the products the cursor currently moves over.
func (m Model) browseList() []catalog.Product {
	if m.ctrl.View() == controller.ViewSearch {
		return m.ctrl.Results()
	}
	return catalog.Products()
}

// clampCursor keeps the cursor inside the current list.
func (m Model) clampCursor() Model {
	list := m.browseList()
	if len(list) == 0 {
		m.cursor = 0
		return m
	}
	if m.cursor >= len(list) {
		m.cursor = len(list) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// busy reports whether any gateway operation is in flight.
func (m Model) busy() bool {
	return m.ctrl.MoodBusy() || m.ctrl.ChatBusy() || m.ctrl.Insight() == controller.InsightLoading
}
