// Package practice generates ephemeral AI lessons ("Prática Mágica"):
// a small batch of select/arrange exercises produced by the configured
// LLM provider and normalized into the curriculum's exercise types.
package practice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/llm"
)

// Purpose is the event log label for practice generation requests.
const Purpose = "practice-gen"

// AILevel labels ephemeral AI lessons. It is never registered in the
// curriculum and takes no part in unlocking.
const AILevel = curriculum.Level("IA")

const (
	exerciseCount = 3
	maxTokens     = 1024
	temperature   = 0.7
)

// ErrUnusableResponse is returned when the model reply yields no
// playable exercises after normalization.
type ErrUnusableResponse struct {
	Raw string
}

func (e *ErrUnusableResponse) Error() string {
	return "practice: model response contained no usable exercises"
}

// Generator produces ephemeral practice lessons.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate requests a fresh exercise batch for the language and wraps
// it in a one-off lesson. The lesson id is unique per call and never
// collides with curriculum ids.
func (g *Generator) Generate(ctx context.Context, language string, xp int) (*curriculum.Lesson, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(language, xp)},
		},
		Schema:      exerciseBatchSchema(),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate practice: %w", err)
	}

	exercises := Normalize(string(resp.Content))
	if len(exercises) == 0 {
		return nil, &ErrUnusableResponse{Raw: string(resp.Content)}
	}

	return &curriculum.Lesson{
		ID:          "ai-" + uuid.NewString(),
		Title:       "Prática Mágica",
		Icon:        "✨",
		Description: "Exercícios criados pela IA agora mesmo.",
		Exercises:   exercises,
	}, nil
}
