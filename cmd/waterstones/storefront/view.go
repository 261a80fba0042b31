package storefront

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"waterstones/cmd/waterstones/ui"
	"waterstones/internal/assistant"
	"waterstones/internal/catalog"
	"waterstones/internal/controller"
)

// View renders the whole storefront.
func (m Model) View() string {
	if !m.ready {
		return "Opening the shop..."
	}

	header := m.renderHeader()

	var content string
	if m.ctrl.ChatOpen() {
		content = m.renderChat()
	} else {
		switch m.ctrl.View() {
		case controller.ViewDetail:
			content = m.renderDetail()
		case controller.ViewSearch:
			content = m.renderSearch()
		default:
			content = m.renderHome()
		}
	}

	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.styles.Content.Render(content),
		footer,
	)
}

func (m Model) renderHeader() string {
	wordmark := ui.Wordmark(m.styles)

	bag := m.styles.Muted.Render("Bag: empty")
	if q := m.ctrl.CartQuantity(); q > 0 {
		bag = m.styles.Badge.Render(fmt.Sprintf("Bag: %d", q)) +
			m.styles.Price.Render(fmt.Sprintf("  £%.2f", m.ctrl.CartSubtotal()))
	}

	status := m.styles.Success.Render("Ready")
	if m.busy() {
		status = m.spin.View() + m.styles.Muted.Render(" Thinking...")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, wordmark, "   ", bag, "   ", status)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.styles.RenderDivider(m.width))
}

// -------------------------------------------------------------------------
// Home
// -------------------------------------------------------------------------

func (m Model) renderHome() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Subtitle.Render("Stories that shape the world.") + "\n\n")
	sb.WriteString(m.renderProductList(catalog.Products()))
	sb.WriteString("\n")
	sb.WriteString(m.renderMoodMatcher())

	return sb.String()
}

func (m Model) renderProductList(list []catalog.Product) string {
	var sb strings.Builder
	for i, p := range list {
		line := fmt.Sprintf("%-42s %-22s %s £%.2f",
			truncate(p.Title, 40), truncate(p.Author, 20), ui.Stars(p.Rating), p.Price)
		if p.Bestseller {
			line += "  " + m.styles.Badge.Render("Bestseller")
		}

		if i == m.cursor && m.focus == FocusBrowse {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString(m.styles.Body.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderMoodMatcher() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Prompt.Render("AI Mood Matcher") + "  ")
	sb.WriteString(m.styles.Muted.Render("What are you in the mood for?") + "\n")
	sb.WriteString(m.moodInput.View() + "\n")

	switch {
	case m.ctrl.MoodBusy():
		sb.WriteString(m.spin.View() + m.styles.Muted.Render(" Matching books to your mood..."))
	default:
		if recs := m.ctrl.Recommendations(); len(recs) > 0 {
			sb.WriteString(m.renderRecommendations(recs))
		}
	}

	return sb.String()
}

func (m Model) renderRecommendations(recs []assistant.Recommendation) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Bold.Render("Picked for you:") + "\n")
	for _, r := range recs {
		sb.WriteString(m.styles.Body.Render(fmt.Sprintf("  %s — %s", r.Title, r.Author)) + "\n")
		if r.Reason != "" {
			sb.WriteString(m.styles.Muted.Render("    "+r.Reason) + "\n")
		}
	}
	return sb.String()
}

// -------------------------------------------------------------------------
// Detail
// -------------------------------------------------------------------------

func (m Model) renderDetail() string {
	p, ok := m.ctrl.ActiveProduct()
	if !ok {
		return m.styles.Muted.Render("Nothing selected.")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(p.Title) + "\n")
	sb.WriteString(m.styles.Subtitle.Render("by "+p.Author) + "\n\n")
	sb.WriteString(m.styles.Rating.Render(ui.Stars(p.Rating)) +
		m.styles.Muted.Render(fmt.Sprintf("  %.1f · %s", p.Rating, p.Category)) + "\n")
	sb.WriteString(m.styles.Price.Render(fmt.Sprintf("£%.2f", p.Price)) + "\n\n")
	sb.WriteString(m.styles.Body.Render(p.Description) + "\n\n")
	sb.WriteString(m.renderInsight())

	return m.styles.Card.Width(min(m.width-6, 84)).Render(sb.String())
}

func (m Model) renderInsight() string {
	insight := m.ctrl.Insight()
	title := m.styles.Prompt.Render("Literary Insight")

	switch insight {
	case "":
		return title + "\n" + m.styles.Muted.Render("Press i to ask Page for an analysis.")
	case controller.InsightLoading:
		return title + "\n" + m.spin.View() + m.styles.Muted.Render(" "+insight)
	default:
		return title + "\n" + m.renderMarkdown(insight)
	}
}

// -------------------------------------------------------------------------
// Search
// -------------------------------------------------------------------------

func (m Model) renderSearch() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("Search") + "\n")
	sb.WriteString(m.searchInput.View() + "\n\n")

	results := m.ctrl.Results()
	if len(results) == 0 {
		if strings.TrimSpace(m.searchInput.Value()) != "" {
			sb.WriteString(m.styles.Muted.Render("No matches on our shelves."))
		}
		return sb.String()
	}

	for i, p := range results {
		line := fmt.Sprintf("%s — %s  £%.2f", p.Title, p.Author, p.Price)
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			sb.WriteString(m.styles.Body.Render("  "+line) + "\n")
		}
	}
	return sb.String()
}

// -------------------------------------------------------------------------
// Chat panel
// -------------------------------------------------------------------------

func (m Model) renderChat() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" Page ") +
		m.styles.Muted.Render(" Literary Concierge") + "\n\n")

	msgs := m.ctrl.Messages()
	if len(msgs) == 0 {
		sb.WriteString(m.renderMarkdown(assistant.Greeting) + "\n")
	}
	for _, msg := range msgs {
		switch msg.Role {
		case controller.RoleUser:
			sb.WriteString(m.styles.Bold.Foreground(m.styles.Theme.Primary).Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.Text) + "\n\n")
		default:
			sb.WriteString(m.styles.Bold.Foreground(m.styles.Theme.Accent).Render("Page") + "\n")
			sb.WriteString(m.renderMarkdown(msg.Text) + "\n")
		}
	}

	if m.ctrl.ChatBusy() {
		sb.WriteString(m.spin.View() + m.styles.Muted.Render(" Consulting the archives...") + "\n")
	}

	sb.WriteString("\n" + m.chatInput.View())
	return sb.String()
}

// renderMarkdown renders assistant output, falling back to plain text if
// the renderer is unavailable or panics on exotic input.
func (m Model) renderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return content
}

// -------------------------------------------------------------------------
// Footer
// -------------------------------------------------------------------------

func (m Model) renderFooter() string {
	var hints string
	switch {
	case m.ctrl.ChatOpen():
		hints = "enter send · esc close chat"
	case m.focus == FocusMood:
		hints = "enter match my mood · esc back"
	case m.focus == FocusSearch:
		hints = "type to search · ↑/↓ select · enter open · esc home"
	case m.ctrl.View() == controller.ViewDetail:
		hints = "i insight · a add to bag · c chat · esc back · q quit"
	default:
		hints = "↑/↓ browse · enter open · a add to bag · m mood · / search · c chat · q quit"
	}
	return m.styles.Footer.Render(hints)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
