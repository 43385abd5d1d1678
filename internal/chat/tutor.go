// Package chat implements the conversational AI tutor. Conversations
// are per-language, kept in memory for the run, and always degrade to a
// friendly fallback message when the provider fails.
package chat

import (
	"context"
	"fmt"

	"github.com/lingotutor/lingotutor/internal/llm"
)

// Purpose is the event log label for tutor chat requests.
const Purpose = "chat-tutor"

const (
	maxTokens   = 512
	temperature = 0.6
)

// Tutor answers learner messages in the persona of a native teacher.
// One tutor per user session; not safe for concurrent use.
type Tutor struct {
	provider llm.Provider
	history  map[string][]llm.Message
}

// NewTutor creates a Tutor backed by the given provider.
func NewTutor(provider llm.Provider) *Tutor {
	return &Tutor{
		provider: provider,
		history:  make(map[string][]llm.Message),
	}
}

// Greeting is the canned opener for a language's conversation.
func Greeting(language string) string {
	return fmt.Sprintf("Olá! Sou seu tutor de %s. Como posso ajudar hoje?", language)
}

// History returns the conversation for the language, seeding it with
// the greeting on first access.
func (t *Tutor) History(language string) []llm.Message {
	if _, ok := t.history[language]; !ok {
		t.history[language] = []llm.Message{
			{Role: llm.RoleAssistant, Content: Greeting(language)},
		}
	}
	return t.history[language]
}

// Reply sends the learner's message and returns the tutor's answer.
// Both sides of the exchange are appended to the language's history,
// but the provider sees only the system prompt and the current turn:
// the history exists for the transcript, not for model context.
// Provider failures never surface as errors; the learner sees a
// fallback message instead.
func (t *Tutor) Reply(ctx context.Context, language, message string) string {
	ctx = llm.WithPurpose(ctx, Purpose)

	t.history[language] = append(t.History(language), llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := t.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(language),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: message}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})

	var reply string
	if err != nil {
		reply = fmt.Sprintf("Não consegui responder agora: %v", err)
	} else {
		reply = string(resp.Content)
	}

	t.history[language] = append(t.history[language], llm.Message{Role: llm.RoleAssistant, Content: reply})
	return reply
}

func systemPrompt(language string) string {
	return fmt.Sprintf("Você é um tutor nativo de %s. Corrija suavemente erros, incentive e responda de forma curta.", language)
}
