package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/memory"
)

// stubProvider returns a fixed reply or error and records the last request.
type stubProvider struct {
	name    string
	reply   string
	err     error
	calls   int
	lastReq Request
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Stream(ctx context.Context, req Request, onChunk func(string)) (string, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	if onChunk != nil {
		onChunk(s.reply)
	}
	return s.reply, nil
}

func TestChatUsesPrimaryProvider(t *testing.T) {
	primary := &stubProvider{name: "primary", reply: "try the greenmarket"}
	fallback := &stubProvider{name: "fallback", reply: "unused"}
	bank := memory.NewBank(nil, nil)
	e := New(bank, []Provider{primary, fallback})

	var streamed strings.Builder
	reply, err := e.Chat(context.Background(), "where should I shop?", func(chunk string) {
		streamed.WriteString(chunk)
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "try the greenmarket" {
		t.Errorf("reply = %q", reply)
	}
	if streamed.String() != reply {
		t.Errorf("streamed %q, want %q", streamed.String(), reply)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}

	history := bank.ConversationHistory()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Role != core.RoleUser || history[1].Role != core.RoleAssistant {
		t.Errorf("history roles = %s, %s", history[0].Role, history[1].Role)
	}
	if history[1].Content != reply {
		t.Errorf("recorded reply = %q, want %q", history[1].Content, reply)
	}
}

func TestChatFallsBackWhenPrimaryFails(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("rate limited")}
	fallback := &stubProvider{name: "fallback", reply: "fallback answer"}
	e := New(memory.NewBank(nil, nil), []Provider{primary, fallback})

	reply, err := e.Chat(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "fallback answer" {
		t.Errorf("reply = %q", reply)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", primary.calls, fallback.calls)
	}
}

func TestChatAllProvidersFail(t *testing.T) {
	bank := memory.NewBank(nil, nil)
	e := New(bank, []Provider{
		&stubProvider{name: "a", err: errors.New("down")},
		&stubProvider{name: "b", err: errors.New("also down")},
	})

	_, err := e.Chat(context.Background(), "hello", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}

	// The user message stays recorded even though no reply arrived.
	history := bank.ConversationHistory()
	if len(history) != 1 || history[0].Role != core.RoleUser {
		t.Errorf("history = %+v, want just the user message", history)
	}
}

func TestChatIncludesSessionContext(t *testing.T) {
	bank := memory.NewBank(nil, nil)
	bank.SetDietaryGoal(core.DietaryGoal{Type: core.GoalSnapBenefits, Description: "stretch benefits"})
	primary := &stubProvider{name: "primary", reply: "ok"}
	e := New(bank, []Provider{primary})

	if _, err := e.Chat(context.Background(), "hi", nil); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !strings.Contains(primary.lastReq.System, "snap-benefits") {
		t.Error("system prompt missing session context")
	}
	if !strings.Contains(primary.lastReq.System, "NutriChat") {
		t.Error("system prompt missing persona")
	}
}

func TestChatMessagesStateless(t *testing.T) {
	bank := memory.NewBank(nil, nil)
	primary := &stubProvider{name: "primary", reply: "ok"}
	e := New(bank, []Provider{primary})

	messages := []core.ConversationMessage{
		{Role: core.RoleUser, Content: "first"},
		{Role: core.RoleAssistant, Content: "second"},
		{Role: core.RoleUser, Content: "third"},
	}
	if _, err := e.ChatMessages(context.Background(), messages, nil); err != nil {
		t.Fatalf("ChatMessages: %v", err)
	}
	if len(primary.lastReq.Messages) != 3 {
		t.Errorf("request messages = %d, want 3", len(primary.lastReq.Messages))
	}
	if len(bank.ConversationHistory()) != 0 {
		t.Error("ChatMessages must not touch the session history")
	}
}

func TestChatMessagesEmpty(t *testing.T) {
	e := New(nil, []Provider{&stubProvider{name: "p", reply: "ok"}})
	if _, err := e.ChatMessages(context.Background(), nil, nil); err == nil {
		t.Fatal("expected error for empty message list")
	}
}

func TestMapRecommendationFallbackText(t *testing.T) {
	e := New(nil, []Provider{
		&stubProvider{name: "a", err: errors.New("down")},
		&stubProvider{name: "b", err: errors.New("down")},
	})

	var streamed strings.Builder
	reply, err := e.MapRecommendation(context.Background(), "what's near Union Square?", func(chunk string) {
		streamed.WriteString(chunk)
	})
	if err != nil {
		t.Fatalf("MapRecommendation: %v", err)
	}
	if !strings.Contains(reply, "farmers markets") {
		t.Errorf("fallback text = %q", reply)
	}
	if streamed.String() != reply {
		t.Error("fallback text was not streamed to the callback")
	}
}

func TestMapRecommendationAddendum(t *testing.T) {
	primary := &stubProvider{name: "primary", reply: "visit the pantry"}
	e := New(nil, []Provider{primary})

	if _, err := e.MapRecommendation(context.Background(), "analyze", nil); err != nil {
		t.Fatalf("MapRecommendation: %v", err)
	}
	if !strings.Contains(primary.lastReq.System, "analyzing nearby food resources") {
		t.Error("map request missing the concise-analysis addendum")
	}
}

func TestStreamHonorsCancellation(t *testing.T) {
	primary := &stubProvider{name: "primary", reply: "ok"}
	e := New(nil, []Provider{primary})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Chat(ctx, "hello", nil)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if primary.calls != 0 {
		t.Errorf("provider called %d times after cancellation, want 0", primary.calls)
	}
}

func TestNoProvidersConfigured(t *testing.T) {
	// A chat-disabled deployment runs with no providers at all: regular
	// chat errors, map recommendations still return the generic advice.
	e := New(memory.NewBank(nil, nil), nil)

	if _, err := e.Chat(context.Background(), "hello", nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Chat err = %v, want ErrUnavailable", err)
	}

	reply, err := e.MapRecommendation(context.Background(), "what's nearby?", nil)
	if err != nil {
		t.Fatalf("MapRecommendation: %v", err)
	}
	if !strings.Contains(reply, "farmers markets") {
		t.Errorf("reply = %q, want fallback advice", reply)
	}
}
