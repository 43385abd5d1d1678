// Package chat is the tutor conversation screen.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingotutor/lingotutor/internal/chat"
	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/llm"
	"github.com/lingotutor/lingotutor/internal/profile"
	"github.com/lingotutor/lingotutor/internal/router"
	"github.com/lingotutor/lingotutor/internal/screen"
	"github.com/lingotutor/lingotutor/internal/ui/components"
	"github.com/lingotutor/lingotutor/internal/ui/layout"
	"github.com/lingotutor/lingotutor/internal/ui/theme"
)

type replyMsg struct {
	text string
}

type message struct {
	fromTutor bool
	text      string
}

// ChatScreen is the conversation with the AI tutor for one language.
// It keeps its own display transcript; the tutor owns the LLM-side
// history and is only touched from command goroutines, one at a time.
type ChatScreen struct {
	language curriculum.Language
	tracker  *profile.Tracker
	tutor    *chat.Tutor

	messages []message
	input    components.TextInput
	waiting  bool
}

var _ screen.Screen = (*ChatScreen)(nil)

// New creates the chat screen, opening with the tutor's greeting.
func New(language curriculum.Language, tracker *profile.Tracker, tutor *chat.Tutor) *ChatScreen {
	c := &ChatScreen{
		language: language,
		tracker:  tracker,
		tutor:    tutor,
		input:    components.NewTextInput("Escreva sua mensagem...", 200),
	}

	// Mirror the tutor's seeded history so reopening the screen keeps
	// the conversation.
	for _, m := range tutor.History(language.Name) {
		c.messages = append(c.messages, message{
			fromTutor: m.Role != llm.RoleUser,
			text:      m.Content,
		})
	}
	return c
}

func (c *ChatScreen) Title() string {
	return "Tutor IA"
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

// HeaderInfo implements screen.HeaderInfoProvider.
func (c *ChatScreen) HeaderInfo() (string, int) {
	p := c.tracker.Get(c.language.Name)
	return c.language.Flag + " " + c.language.Name, p.XP
}

// KeyHints implements screen.KeyHintProvider.
func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Enviar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		c.messages = append(c.messages, message{fromTutor: true, text: msg.text})
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() tea.Cmd {
	if c.waiting {
		return nil
	}
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}

	c.messages = append(c.messages, message{text: text})
	c.input.Reset()
	c.waiting = true

	tutor := c.tutor
	language := c.language.Name
	return func() tea.Msg {
		reply := tutor.Reply(context.Background(), language, text)
		return replyMsg{text: reply}
	}
}

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Title.Render(fmt.Sprintf("Tutor IA · %s %s", c.language.Flag, c.language.Name))
	caption := theme.Subtitle.Render("Converse com um professor nativo e receba correções gentis.")

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(caption)
	b.WriteString("\n\n")

	bubbleWidth := min(width-8, 70)
	transcript := c.renderTranscript(bubbleWidth, height-8)
	b.WriteString(transcript)
	b.WriteString("\n\n")

	if c.waiting {
		b.WriteString(theme.Hint.Render("Tutor digitando..."))
	} else {
		b.WriteString(theme.Body.Render("Você: ") + c.input.View())
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

// renderTranscript renders the newest messages that fit the given
// number of lines.
func (c *ChatScreen) renderTranscript(width, maxLines int) string {
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Width(width)
	userStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var rendered []string
	for _, m := range c.messages {
		if m.fromTutor {
			rendered = append(rendered, tutorStyle.Render("🧑‍🏫 "+m.text))
		} else {
			rendered = append(rendered, userStyle.Render("🙋 "+m.text))
		}
	}

	// Drop oldest messages until the transcript fits.
	if maxLines > 0 {
		for len(rendered) > 1 {
			total := 0
			for _, r := range rendered {
				total += lipgloss.Height(r) + 1
			}
			if total <= maxLines {
				break
			}
			rendered = rendered[1:]
		}
	}

	return strings.Join(rendered, "\n\n")
}
