package storefront

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterstones/internal/assistant"
	"waterstones/internal/catalog"
	"waterstones/internal/controller"
)

// fakeGateway gives the storefront a scripted concierge.
type fakeGateway struct {
	recs     []assistant.Recommendation
	insight  string
	sessions int
}

func (f *fakeGateway) StartSession(context.Context) (controller.Session, error) {
	f.sessions++
	return &fakeSession{}, nil
}

func (f *fakeGateway) GenerateInsight(ctx context.Context, title, author string) string {
	if f.insight != "" {
		return f.insight
	}
	return "An insight about " + title
}

func (f *fakeGateway) RecommendByMood(ctx context.Context, mood string, pool []catalog.Product) []assistant.Recommendation {
	return f.recs
}

type fakeSession struct{}

func (s *fakeSession) Send(ctx context.Context, text string) string {
	return "Re: " + text
}

func newTestModel(gw *fakeGateway) Model {
	ctrl := controller.New(gw, nil)
	m := New(ctrl, nil)
	m.renderer = nil // plain text rendering keeps assertions simple
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return resized.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, cmd := m.Update(msg)
		m = next.(Model)
		m = runCmd(t, m, cmd)
	}
	return m
}

// runCmd executes a returned command synchronously and feeds its message
// back through Update, like the bubbletea runtime would.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		switch msg.(type) {
		case refreshMsg, tea.KeyMsg:
			next, nextCmd := m.Update(msg)
			m = next.(Model)
			cmd = nextCmd
		default:
			// blink/tick/quit messages are runtime concerns
			return m
		}
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestBrowseAndOpenDetail(t *testing.T) {
	m := newTestModel(&fakeGateway{})

	m = press(t, m, "down", "down", "enter")

	assert.Equal(t, controller.ViewDetail, m.ctrl.View())
	p, ok := m.ctrl.ActiveProduct()
	require.True(t, ok)
	assert.Equal(t, "Project Hail Mary", p.Title)

	m = press(t, m, "esc")
	assert.Equal(t, controller.ViewHome, m.ctrl.View())
}

func TestAddToCartFromHome(t *testing.T) {
	m := newTestModel(&fakeGateway{})

	m = press(t, m, "a", "a", "down", "a")

	entries := m.ctrl.CartEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, "The Midnight Library", entries[0].Product.Title)
	assert.Equal(t, "Atomic Habits", entries[1].Product.Title)
	assert.Contains(t, m.View(), "Bag: 3")
}

func TestInsightFlow(t *testing.T) {
	gw := &fakeGateway{insight: "- Memory\n- Hope\n- Choice"}
	m := newTestModel(gw)

	m = press(t, m, "enter") // open first book
	m = press(t, m, "i")

	assert.Contains(t, m.View(), "Memory")
}

func TestMoodFlow(t *testing.T) {
	gw := &fakeGateway{recs: []assistant.Recommendation{
		{Title: "Still Life", Author: "Louise Penny", Reason: "A gentle village mystery."},
	}}
	m := newTestModel(gw)

	m = press(t, m, "m")
	assert.Equal(t, FocusMood, m.focus)

	m = typeText(t, m, "cozy mystery")
	m = press(t, m, "enter")

	recs := m.ctrl.Recommendations()
	require.Len(t, recs, 1)
	assert.Contains(t, m.View(), "Still Life")
	assert.False(t, m.ctrl.MoodBusy())
}

func TestSearchFlow(t *testing.T) {
	m := newTestModel(&fakeGateway{})

	m = press(t, m, "/")
	assert.Equal(t, controller.ViewSearch, m.ctrl.View())
	assert.Equal(t, FocusSearch, m.focus)

	m = typeText(t, m, "dune")
	results := m.ctrl.Results()
	require.Len(t, results, 1)

	m = press(t, m, "enter")
	assert.Equal(t, controller.ViewDetail, m.ctrl.View())
	p, _ := m.ctrl.ActiveProduct()
	assert.Equal(t, "Dune", p.Title)
}

func TestChatFlow(t *testing.T) {
	gw := &fakeGateway{}
	m := newTestModel(gw)

	m = press(t, m, "c")
	assert.True(t, m.ctrl.ChatOpen())
	assert.Equal(t, 1, gw.sessions)

	m = typeText(t, m, "Hello")
	m = press(t, m, "enter")

	msgs := m.ctrl.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hello", msgs[0].Text)
	assert.Equal(t, "Re: Hello", msgs[1].Text)

	// Close and reopen: same session, transcript retained.
	m = press(t, m, "esc")
	assert.False(t, m.ctrl.ChatOpen())
	m = press(t, m, "c")
	assert.Equal(t, 1, gw.sessions)
	assert.Len(t, m.ctrl.Messages(), 2)
}

func TestCursorClamping(t *testing.T) {
	m := newTestModel(&fakeGateway{})

	m = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 20; i++ {
		m = press(t, m, "down")
	}
	assert.Equal(t, len(catalog.Products())-1, m.cursor)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(&fakeGateway{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
