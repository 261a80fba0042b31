// Package assistant is the gateway to the external generative-language
// service. It owns the prompts, the conversational session lifecycle, and
// the normalization of raw model output into displayable values. Service
// failures never escape this package: every operation degrades to a fixed
// fallback string or an empty batch.
package assistant

import "context"

// Generator is the minimal surface the gateway needs from a
// generative-language backend. Kept small so tests can substitute a fake.
type Generator interface {
	// Generate runs a one-shot content request and returns raw text.
	Generate(ctx context.Context, prompt string) (string, error)

	// StartChat opens a stateful exchange seeded with a system
	// instruction. Turn-by-turn context is held by the backend.
	StartChat(ctx context.Context, system string) (ChatSession, error)
}

// ChatSession is one ongoing exchange with the backend. All turns of a
// conversation must go through the same ChatSession so the backend keeps
// its context.
type ChatSession interface {
	Send(ctx context.Context, text string) (string, error)
}
