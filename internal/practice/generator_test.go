package practice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lingotutor/lingotutor/internal/llm"
)

func TestGenerator_BuildsEphemeralLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[
			{"type": "select", "prompt": "Como dizer 'Bom dia'?", "options": ["Good morning", "Good night"], "answer": "Good morning"},
			{"type": "arrange", "prompt": "Organize", "words": ["you", "Thank"], "answer": ["Thank", "you"]}
		]`),
	})
	g := NewGenerator(mock)

	lesson, err := g.Generate(context.Background(), "Inglês", 120)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(lesson.ID, "ai-") {
		t.Errorf("lesson id %q does not carry the ai- prefix", lesson.ID)
	}
	if lesson.Title != "Prática Mágica" || lesson.Icon != "✨" {
		t.Errorf("unexpected lesson header: %q %q", lesson.Title, lesson.Icon)
	}
	if len(lesson.Exercises) != 2 {
		t.Fatalf("got %d exercises, want 2", len(lesson.Exercises))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "exercise-batch" {
		t.Error("request missing the exercise-batch schema")
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Inglês") || !strings.Contains(prompt, "120 XP") {
		t.Errorf("prompt missing language or XP: %q", prompt)
	}
}

func TestGenerator_UniqueLessonIDs(t *testing.T) {
	batch := json.RawMessage(`[{"type": "select", "prompt": "x", "options": ["A", "B"], "answer": "A"}]`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batch},
		llm.MockResponse{Content: batch},
	)
	g := NewGenerator(mock)

	a, err := g.Generate(context.Background(), "Espanhol", 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Generate(context.Background(), "Espanhol", 0)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Errorf("two generated lessons share id %q", a.ID)
	}
}

func TestGenerator_UnusableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"oops": "not an array"}`),
	})
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), "Inglês", 0)
	var unusable *ErrUnusableResponse
	if !errors.As(err, &unusable) {
		t.Fatalf("expected ErrUnusableResponse, got %v", err)
	}
}

func TestGenerator_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), "Inglês", 0)
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
