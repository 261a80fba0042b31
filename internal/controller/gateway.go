package controller

import (
	"context"

	"waterstones/internal/assistant"
	"waterstones/internal/catalog"
)

// Gateway is the controller's view of the AI gateway. It mirrors the
// concierge operations so tests can substitute a scripted fake.
type Gateway interface {
	StartSession(ctx context.Context) (Session, error)
	GenerateInsight(ctx context.Context, title, author string) string
	RecommendByMood(ctx context.Context, mood string, pool []catalog.Product) []assistant.Recommendation
}

// Session is one live conversation handle. Implementations never return
// errors from Send; failed turns come back as fallback text.
type Session interface {
	Send(ctx context.Context, text string) string
}

// conciergeGateway adapts *assistant.Concierge to the Gateway interface.
type conciergeGateway struct {
	c *assistant.Concierge
}

// NewGateway wraps a concierge for use by the controller.
func NewGateway(c *assistant.Concierge) Gateway {
	return conciergeGateway{c: c}
}

func (g conciergeGateway) StartSession(ctx context.Context) (Session, error) {
	s, err := g.c.StartSession(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (g conciergeGateway) GenerateInsight(ctx context.Context, title, author string) string {
	return g.c.GenerateInsight(ctx, title, author)
}

func (g conciergeGateway) RecommendByMood(ctx context.Context, mood string, pool []catalog.Product) []assistant.Recommendation {
	return g.c.RecommendByMood(ctx, mood, pool)
}
