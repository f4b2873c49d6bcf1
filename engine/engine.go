// Package engine runs chat requests against an LLM provider chain with a
// primary/fallback ladder and session-context prompt assembly.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/memory"
)

// ErrUnavailable is returned when every configured provider fails on a
// regular chat request.
var ErrUnavailable = errors.New("assistant temporarily unavailable")

// Request is one model call: a system prompt plus the conversation so far.
type Request struct {
	System    string
	Messages  []core.ConversationMessage
	MaxTokens int64
}

// Provider is one LLM backend. Stream sends text chunks to onChunk as they
// arrive and returns the full response text.
type Provider interface {
	Name() string
	Stream(ctx context.Context, req Request, onChunk func(chunk string)) (string, error)
}

const (
	defaultMaxTokens = 4096
	defaultTimeout   = 60 * time.Second
)

// Engine orders providers into a fallback ladder and wires responses back
// into the session memory bank.
type Engine struct {
	providers []Provider
	bank      *memory.Bank
	maxTokens int64
	timeout   time.Duration
}

// Option configures the engine.
type Option func(*Engine)

// WithMaxTokens overrides the response token cap.
func WithMaxTokens(n int64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTokens = n
		}
	}
}

// WithTimeout overrides the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// New creates an engine. Providers are tried in order; the bank may be nil,
// which disables context enrichment and history recording.
func New(bank *memory.Bank, providers []Provider, opts ...Option) *Engine {
	e := &Engine{
		providers: providers,
		bank:      bank,
		maxTokens: defaultMaxTokens,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Chat answers a user message in the context of the active session. The user
// message and the assistant reply are both recorded in the bank. When every
// provider fails the user message stays recorded and ErrUnavailable is
// returned.
func (e *Engine) Chat(ctx context.Context, userMessage string, onChunk func(chunk string)) (string, error) {
	var history []core.ConversationMessage
	var aiCtx *core.AIContext
	if e.bank != nil {
		e.bank.AddMessage(core.RoleUser, userMessage)
		history = e.bank.ConversationHistory()
		c := e.bank.AIContext()
		aiCtx = &c
	} else {
		history = []core.ConversationMessage{{Role: core.RoleUser, Content: userMessage, Timestamp: time.Now()}}
	}

	reply, err := e.stream(ctx, Request{
		System:    buildSystemPrompt(SystemPrompt, aiCtx),
		Messages:  history,
		MaxTokens: e.maxTokens,
	}, onChunk)
	if err != nil {
		return "", err
	}

	if e.bank != nil {
		e.bank.AddMessage(core.RoleAssistant, reply)
	}
	return reply, nil
}

// ChatMessages answers a caller-supplied conversation without touching the
// session. The HTTP surface uses this for clients that manage their own
// history.
func (e *Engine) ChatMessages(ctx context.Context, messages []core.ConversationMessage, onChunk func(chunk string)) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages")
	}
	var aiCtx *core.AIContext
	if e.bank != nil {
		c := e.bank.AIContext()
		aiCtx = &c
	}
	return e.stream(ctx, Request{
		System:    buildSystemPrompt(SystemPrompt, aiCtx),
		Messages:  messages,
		MaxTokens: e.maxTokens,
	}, onChunk)
}

// MapRecommendation analyzes a resource described by the map UI. Unlike
// Chat, a total provider outage degrades to canned generic advice rather
// than an error, so the map always shows something.
func (e *Engine) MapRecommendation(ctx context.Context, message string, onChunk func(chunk string)) (string, error) {
	var aiCtx *core.AIContext
	if e.bank != nil {
		c := e.bank.AIContext()
		aiCtx = &c
	}

	reply, err := e.stream(ctx, Request{
		System:    buildSystemPrompt(SystemPrompt, aiCtx) + mapRecommendationAddendum,
		Messages:  []core.ConversationMessage{{Role: core.RoleUser, Content: message, Timestamp: time.Now()}},
		MaxTokens: e.maxTokens,
	}, onChunk)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.Printf("[ENGINE] All providers failed, serving fallback recommendation")
		if onChunk != nil {
			onChunk(fallbackMapRecommendation)
		}
		return fallbackMapRecommendation, nil
	}
	return reply, nil
}

// stream walks the provider ladder until one succeeds. Context cancellation
// stops the ladder immediately instead of burning through the remaining
// providers.
func (e *Engine) stream(ctx context.Context, req Request, onChunk func(chunk string)) (string, error) {
	if len(e.providers) == 0 {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var lastErr error
	for _, p := range e.providers {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		reply, err := p.Stream(ctx, req, onChunk)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		log.Printf("[ENGINE] Provider %s failed: %v", p.Name(), err)
	}
	return "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
