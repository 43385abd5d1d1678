package chat

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lingotutor/lingotutor/internal/llm"
)

func TestHistorySeedsGreeting(t *testing.T) {
	tutor := NewTutor(llm.NewMockProvider())

	h := tutor.History("Inglês")
	if len(h) != 1 || h[0].Role != llm.RoleAssistant {
		t.Fatalf("unexpected initial history: %+v", h)
	}
	if !strings.Contains(h[0].Content, "tutor de Inglês") {
		t.Errorf("greeting %q does not name the language", h[0].Content)
	}

	// Languages keep separate conversations.
	if es := tutor.History("Espanhol"); !strings.Contains(es[0].Content, "tutor de Espanhol") {
		t.Errorf("spanish greeting %q", es[0].Content)
	}
}

func TestReplyAppendsExchange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Muito bem! \"I am learning\" está correto."),
	})
	tutor := NewTutor(mock)

	reply := tutor.Reply(context.Background(), "Inglês", "I am learning english")
	if !strings.Contains(reply, "Muito bem!") {
		t.Fatalf("unexpected reply %q", reply)
	}

	h := tutor.History("Inglês")
	if len(h) != 3 {
		t.Fatalf("history has %d messages, want 3 (greeting, user, reply)", len(h))
	}
	if h[1].Role != llm.RoleUser || h[2].Role != llm.RoleAssistant {
		t.Errorf("unexpected roles: %+v", h)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "tutor nativo de Inglês") {
		t.Errorf("system prompt %q missing tutor persona", req.System)
	}
	if len(req.Messages) != 1 {
		t.Errorf("request carried %d messages, want the current turn only", len(req.Messages))
	}
}

func TestReplyFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	tutor := NewTutor(mock)

	reply := tutor.Reply(context.Background(), "Espanhol", "Hola")
	if !strings.Contains(reply, "Não consegui responder agora") {
		t.Fatalf("expected fallback, got %q", reply)
	}

	// The fallback still lands in history so the conversation stays
	// coherent on screen.
	h := tutor.History("Espanhol")
	if h[len(h)-1].Content != reply {
		t.Error("fallback reply not recorded in history")
	}
}

func TestReplyIsStatelessPerCall(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Primeira resposta")},
		llm.MockResponse{Content: json.RawMessage("Segunda resposta")},
	)
	tutor := NewTutor(mock)

	tutor.Reply(context.Background(), "Inglês", "primeira pergunta")
	tutor.Reply(context.Background(), "Inglês", "segunda pergunta")

	// The transcript accumulates, but each request carries only the
	// turn being answered.
	if h := tutor.History("Inglês"); len(h) != 5 {
		t.Fatalf("history has %d messages, want 5", len(h))
	}
	second := mock.Calls[1]
	if len(second.Messages) != 1 {
		t.Fatalf("second request carried %d messages, want 1", len(second.Messages))
	}
	if second.Messages[0].Role != llm.RoleUser || second.Messages[0].Content != "segunda pergunta" {
		t.Errorf("second request payload: %+v", second.Messages)
	}
}
