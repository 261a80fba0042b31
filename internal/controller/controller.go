// Package controller owns all transient storefront state: the active
// view, the selected product, the cart, the recommendation batch, and the
// conversation transcript. It is the only writer of that state; the
// presentation layer reads snapshots and triggers transitions.
//
// Methods are safe to call from bubbletea command goroutines. The three
// gateway operations are the only blocking calls; the mutex is held only
// around state transitions, never across a gateway call.
package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"waterstones/internal/assistant"
	"waterstones/internal/cart"
	"waterstones/internal/catalog"
)

// View is the active presentation mode. Exactly one is active at a time.
type View int

const (
	ViewHome View = iota
	ViewDetail
	ViewSearch
)

// Role identifies the originator of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the displayed conversation log. The transcript
// is append-only; messages are never mutated or reordered.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Streaming bool
}

// InsightLoading is the placeholder shown while an insight request is in
// flight.
const InsightLoading = "Analyzing literary patterns..."

// Controller holds the storefront session state.
type Controller struct {
	mu     sync.Mutex
	gw     Gateway
	logger *zap.Logger

	view   View
	active *catalog.Product
	cart   cart.Cart
	query  string

	insight         string
	recommendations []assistant.Recommendation
	moodBusy        bool

	chatOpen bool
	session  Session
	messages []Message
	chatBusy bool
	// turnGate serializes chat turns: a new turn is rejected while one
	// is in flight so replies cannot interleave out of order.
	turnGate *semaphore.Weighted
}

// New creates a controller starting on the home view. A nil logger is
// replaced with a no-op logger.
func New(gw Gateway, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		gw:       gw,
		logger:   logger,
		view:     ViewHome,
		turnGate: semaphore.NewWeighted(1),
	}
}

// =========================================================================
// NAVIGATION
// =========================================================================

// View returns the active presentation mode.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// SelectProduct makes p the active product and switches to the detail
// view. Any previously loaded insight is reset, even when re-selecting
// the same product: insight is always invalidated on navigation.
func (c *Controller) SelectProduct(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = &p
	c.insight = ""
	c.view = ViewDetail
}

// GoHome returns to the home view and clears the active product.
func (c *Controller) GoHome() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewHome
	c.active = nil
}

// ActiveProduct returns the selected product, if any.
func (c *Controller) ActiveProduct() (catalog.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return catalog.Product{}, false
	}
	return *c.active, true
}

// StartSearch switches to the search view.
func (c *Controller) StartSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewSearch
}

// SetQuery records the current search query.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
}

// Results returns the catalog matches for the current query.
func (c *Controller) Results() []catalog.Product {
	c.mu.Lock()
	q := c.query
	c.mu.Unlock()
	return catalog.Search(q)
}

// =========================================================================
// CART
// =========================================================================

// AddToCart adds p to the cart. No other state changes: adding never
// navigates and never touches the active product.
func (c *Controller) AddToCart(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Add(p)
}

// CartEntries returns a snapshot of the cart lines.
func (c *Controller) CartEntries() []cart.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Entries()
}

// CartQuantity returns the total number of items in the cart.
func (c *Controller) CartQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.TotalQuantity()
}

// CartSubtotal returns the cart's price total.
func (c *Controller) CartSubtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Subtotal()
}

// ClearCart empties the cart.
func (c *Controller) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Clear()
}

// =========================================================================
// INSIGHT
// =========================================================================

// RequestInsight fetches a literary insight for the active product. A
// no-op when no product is active. The loading placeholder is visible
// until the gateway resolves; the result is discarded if the user has
// navigated to a different product in the meantime.
func (c *Controller) RequestInsight(ctx context.Context) {
	c.mu.Lock()
	if c.active == nil {
		c.mu.Unlock()
		return
	}
	p := *c.active
	c.insight = InsightLoading
	c.mu.Unlock()

	text := c.gw.GenerateInsight(ctx, p.Title, p.Author)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil || c.active.ID != p.ID {
		return // stale: user moved on
	}
	c.insight = text
}

// Insight returns the current insight text: empty when not yet loaded,
// InsightLoading while a request is in flight.
func (c *Controller) Insight() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insight
}

// =========================================================================
// MOOD RECOMMENDATIONS
// =========================================================================

// SubmitMood asks the gateway for mood-based recommendations and replaces
// the current batch with the result, empty included. Whitespace-only
// input is silently rejected with no state change; a submission while one
// is already in flight is ignored.
func (c *Controller) SubmitMood(ctx context.Context, mood string) {
	if strings.TrimSpace(mood) == "" {
		return
	}

	c.mu.Lock()
	if c.moodBusy {
		c.mu.Unlock()
		return
	}
	c.moodBusy = true
	c.mu.Unlock()

	recs := c.gw.RecommendByMood(ctx, mood, catalog.Products())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recommendations = recs
	c.moodBusy = false
}

// Recommendations returns a snapshot of the current batch.
func (c *Controller) Recommendations() []assistant.Recommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]assistant.Recommendation, len(c.recommendations))
	copy(out, c.recommendations)
	return out
}

// MoodBusy reports whether a recommendation request is in flight.
func (c *Controller) MoodBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moodBusy
}

// =========================================================================
// CONVERSATION
// =========================================================================

// OpenChat shows the assistant panel, lazily starting the session on
// first open. One session lives for the controller's lifetime; closing
// and reopening the panel never creates a second one.
func (c *Controller) OpenChat(ctx context.Context) {
	c.mu.Lock()
	c.chatOpen = true
	if c.session != nil {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	sess, err := c.gw.StartSession(ctx)
	if err != nil {
		c.logger.Warn("assistant session unavailable", zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return
	}
	c.session = sess
}

// CloseChat hides the assistant panel. Session and transcript survive.
func (c *Controller) CloseChat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chatOpen = false
}

// ChatOpen reports whether the assistant panel is visible.
func (c *Controller) ChatOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatOpen
}

// SendChatMessage submits one user turn. The user message is appended
// optimistically before the gateway call; the reply lands after it, so a
// user message always precedes its reply in the transcript. No-ops:
// whitespace-only input, no live session, or a turn already in flight.
func (c *Controller) SendChatMessage(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return
	}
	if !c.turnGate.TryAcquire(1) {
		c.mu.Unlock()
		return
	}
	sess := c.session
	c.messages = append(c.messages, Message{
		ID:   uuid.NewString(),
		Role: RoleUser,
		Text: text,
	})
	c.chatBusy = true
	c.mu.Unlock()

	reply := sess.Send(ctx, text)

	c.mu.Lock()
	c.messages = append(c.messages, Message{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
		Text: reply,
	})
	c.chatBusy = false
	c.mu.Unlock()
	c.turnGate.Release(1)
}

// Messages returns a snapshot of the conversation transcript.
func (c *Controller) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// ChatBusy reports whether a chat turn is in flight.
func (c *Controller) ChatBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatBusy
}
