package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"waterstones/internal/catalog"
)

// Persona is the fixed system instruction for the conversational
// concierge. Changing the wording changes the product's voice.
const Persona = `You are "Page," the AI literary concierge for Waterstones NextGen.
Your tone is sophisticated, knowledgeable, warm, and slightly British.
You help users find books, discuss themes, and offer personalized recommendations.
If a user asks about a specific book, provide a brief, engaging summary and why they might like it.
Keep responses concise (under 100 words) unless asked for a deep dive.
You have access to a simulated catalog of bestsellers but can discuss any book in existence.`

// Greeting opens every fresh conversation transcript.
const Greeting = "Hello, I'm Page. Looking for your next great read?"

// Fallback copy. These stand in for failed or empty service responses so
// the user-facing flow never shows a raw error.
const (
	fallbackTurnError   = "My apologies, something went wrong. Please try again."
	fallbackTurnEmpty   = "I'm having trouble finding the right words properly. Could you ask again?"
	fallbackInsightErr  = "Our literary elves are currently sleeping. Please try again later."
	fallbackInsightNone = "Insights currently unavailable."
)

const defaultRequestTimeout = 30 * time.Second

// Concierge is the AI gateway: it translates application-level requests
// (insight, mood recommendation, chat turn) into generator calls and
// absorbs the generator's failure modes.
type Concierge struct {
	gen     Generator
	logger  *zap.Logger
	timeout time.Duration
}

// Option configures a Concierge.
type Option func(*Concierge)

// WithTimeout bounds each generator call. A request that would otherwise
// hang resolves to its fallback path when the deadline expires.
func WithTimeout(d time.Duration) Option {
	return func(c *Concierge) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a Concierge over the given generator. A nil logger is
// replaced with a no-op logger.
func New(gen Generator, logger *zap.Logger, opts ...Option) *Concierge {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Concierge{
		gen:     gen,
		logger:  logger,
		timeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session is one live conversation with the concierge. All turns must go
// through the same Session so the backend keeps conversational context.
type Session struct {
	chat    ChatSession
	logger  *zap.Logger
	timeout time.Duration
}

// StartSession opens a new conversation pre-seeded with the Persona.
// Calling it again abandons any earlier session and its context.
func (c *Concierge) StartSession(ctx context.Context) (*Session, error) {
	chat, err := c.gen.StartChat(ctx, Persona)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &Session{chat: chat, logger: c.logger, timeout: c.timeout}, nil
}

// Send submits one user utterance and returns the assistant's reply.
// Transport failure and an empty reply both collapse to fixed fallback
// text; the session stays usable for subsequent turns either way.
func (s *Session) Send(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackTurnEmpty
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.chat.Send(ctx, text)
	if err != nil {
		s.logger.Warn("chat turn failed", zap.Error(err))
		return fallbackTurnError
	}
	if strings.TrimSpace(reply) == "" {
		return fallbackTurnEmpty
	}
	return reply
}

// GenerateInsight asks for a short literary analysis of one title: three
// key themes plus a "perfect for readers who love..." line, as a concise
// Markdown list. Never fails; degraded paths return fixed copy.
func (c *Concierge) GenerateInsight(ctx context.Context, title, author string) string {
	prompt := fmt.Sprintf(`Provide a "Literary Insight" for the book "%s" by %s.
Include 3 key themes and a "perfect for readers who love..." sentence.
Format as a concise Markdown list.`, title, author)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("insight generation failed",
			zap.String("title", title),
			zap.Error(err))
		return fallbackInsightErr
	}
	if strings.TrimSpace(text) == "" {
		return fallbackInsightNone
	}
	return text
}

// RecommendByMood turns a free-text mood into up to three structured
// recommendations, biased toward the candidate pool when it fits. Any
// failure, transport or parse, yields an empty batch rather than an
// error: recommendation failure is silent-degrade.
func (c *Concierge) RecommendByMood(ctx context.Context, mood string, pool []catalog.Product) []Recommendation {
	titles := make([]string, len(pool))
	for i, p := range pool {
		titles[i] = fmt.Sprintf("%s by %s", p.Title, p.Author)
	}

	prompt := fmt.Sprintf(`The user feels: "%s".
Recommend 3 books.
Prioritize books from this catalog if they fit: [%s].
If nothing fits well, recommend other famous books.
Format the output as a JSON array of objects with properties: "title", "author", "reason".
DO NOT return markdown formatting, just the raw JSON string.`, mood, strings.Join(titles, ", "))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("mood recommendation failed", zap.Error(err))
		return nil
	}

	recs, err := parseRecommendations(raw)
	if err != nil {
		c.logger.Warn("mood recommendation payload unparseable",
			zap.String("payload", raw),
			zap.Error(err))
		return nil
	}
	return recs
}
