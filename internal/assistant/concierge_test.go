package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"waterstones/internal/catalog"
)

// fakeGenerator scripts one-shot responses and records prompts.
type fakeGenerator struct {
	response   string
	err        error
	lastPrompt string
	chat       *fakeChat
	chatErr    error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenerator) StartChat(_ context.Context, system string) (ChatSession, error) {
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	if f.chat == nil {
		f.chat = &fakeChat{system: system}
	}
	return f.chat, nil
}

// fakeChat replays scripted replies; a nil entry simulates a transport
// failure for that turn.
type fakeChat struct {
	system  string
	replies []*string
	sent    []string
}

func (f *fakeChat) Send(_ context.Context, text string) (string, error) {
	f.sent = append(f.sent, text)
	if len(f.replies) == 0 {
		return "", errors.New("no scripted reply")
	}
	next := f.replies[0]
	f.replies = f.replies[1:]
	if next == nil {
		return "", errors.New("service unreachable")
	}
	return *next, nil
}

func reply(s string) *string { return &s }

func newTestConcierge(gen Generator) *Concierge {
	return New(gen, zap.NewNop())
}

func TestStartSessionSeedsPersona(t *testing.T) {
	gen := &fakeGenerator{}
	c := newTestConcierge(gen)

	sess, err := c.StartSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, Persona, gen.chat.system)
}

func TestSessionSendFallbackOnTransportFailure(t *testing.T) {
	gen := &fakeGenerator{chat: &fakeChat{replies: []*string{
		nil, // first turn: transport failure
		reply("Might I suggest some Dickens?"),
	}}}
	c := newTestConcierge(gen)
	sess, err := c.StartSession(context.Background())
	require.NoError(t, err)

	got := sess.Send(context.Background(), "Hello")
	assert.Equal(t, fallbackTurnError, got)

	// The session must remain usable after a failed turn.
	got = sess.Send(context.Background(), "Recommend something")
	assert.Equal(t, "Might I suggest some Dickens?", got)
	assert.Equal(t, []string{"Hello", "Recommend something"}, gen.chat.sent)
}

func TestSessionSendEmptyReplyFallback(t *testing.T) {
	gen := &fakeGenerator{chat: &fakeChat{replies: []*string{reply("   ")}}}
	c := newTestConcierge(gen)
	sess, err := c.StartSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fallbackTurnEmpty, sess.Send(context.Background(), "Hello"))
}

func TestGenerateInsight(t *testing.T) {
	gen := &fakeGenerator{response: "- Theme one\n- Theme two\n- Theme three"}
	c := newTestConcierge(gen)

	got := c.GenerateInsight(context.Background(), "Dune", "Frank Herbert")
	assert.Equal(t, "- Theme one\n- Theme two\n- Theme three", got)
	assert.Contains(t, gen.lastPrompt, `"Dune" by Frank Herbert`)
	assert.Contains(t, gen.lastPrompt, "3 key themes")
}

func TestGenerateInsightFallbacks(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("boom")}
		got := newTestConcierge(gen).GenerateInsight(context.Background(), "Dune", "Frank Herbert")
		assert.Equal(t, fallbackInsightErr, got)
	})

	t.Run("empty response", func(t *testing.T) {
		gen := &fakeGenerator{response: "  "}
		got := newTestConcierge(gen).GenerateInsight(context.Background(), "Dune", "Frank Herbert")
		assert.Equal(t, fallbackInsightNone, got)
	})
}

func TestRecommendByMoodEmbedsCandidatePool(t *testing.T) {
	gen := &fakeGenerator{response: `[]`}
	c := newTestConcierge(gen)

	pool := []catalog.Product{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "The Midnight Library", Author: "Matt Haig"},
	}
	c.RecommendByMood(context.Background(), "existential sci-fi", pool)

	assert.Contains(t, gen.lastPrompt, `The user feels: "existential sci-fi"`)
	assert.Contains(t, gen.lastPrompt, "Dune by Frank Herbert, The Midnight Library by Matt Haig")
	assert.Contains(t, gen.lastPrompt, "raw JSON string")
}

func TestRecommendByMoodParsesBatch(t *testing.T) {
	gen := &fakeGenerator{response: `[
		{"title": "The Thursday Murder Club", "author": "Richard Osman", "reason": "Cosy crime in a retirement village."},
		{"title": "Still Life", "author": "Louise Penny", "reason": "A gentle village mystery."},
		{"title": "Magpie Murders", "author": "Anthony Horowitz", "reason": "A classic whodunit within a whodunit."}
	]`}
	c := newTestConcierge(gen)

	got := c.RecommendByMood(context.Background(), "A cozy mystery in the English countryside", nil)
	want := []Recommendation{
		{Title: "The Thursday Murder Club", Author: "Richard Osman", Reason: "Cosy crime in a retirement village."},
		{Title: "Still Life", Author: "Louise Penny", Reason: "A gentle village mystery."},
		{Title: "Magpie Murders", Author: "Anthony Horowitz", Reason: "A classic whodunit within a whodunit."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recommendation mismatch (-want +got):\n%s", diff)
	}
}

func TestRecommendByMoodDegradesSilently(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("service unreachable")}
		got := newTestConcierge(gen).RecommendByMood(context.Background(), "anything", nil)
		assert.Empty(t, got)
	})

	t.Run("unparseable payload", func(t *testing.T) {
		gen := &fakeGenerator{response: "I'd love to help! Here are some books..."}
		got := newTestConcierge(gen).RecommendByMood(context.Background(), "anything", nil)
		assert.Empty(t, got)
	})
}
