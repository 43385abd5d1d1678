package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingotutor/lingotutor/internal/exercise"
	"github.com/lingotutor/lingotutor/internal/ui/theme"
)

// Zone identifies which word row the cursor is in.
type Zone int

const (
	ZonePool Zone = iota
	ZoneAssembled
)

// WordBank is the two-row editor for an arrange exercise: the assembled
// sentence on top, the remaining pool below. It mutates the shared
// ArrangeState owned by the progression session.
type WordBank struct {
	Prompt string
	State  *exercise.ArrangeState
	Zone   Zone
	Index  int
}

// NewWordBank creates a word bank over the session's arrange state.
func NewWordBank(prompt string, state *exercise.ArrangeState) WordBank {
	return WordBank{
		Prompt: prompt,
		State:  state,
		Zone:   ZonePool,
	}
}

// Init returns nil.
func (w WordBank) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and word transfer.
func (w WordBank) Update(msg tea.Msg) (WordBank, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if w.Index > 0 {
			w.Index--
		}
	case "right", "l":
		if w.Index < w.rowLen()-1 {
			w.Index++
		}
	case "tab", "up", "down":
		if w.Zone == ZonePool {
			w.Zone = ZoneAssembled
		} else {
			w.Zone = ZonePool
		}
		w.clampIndex()
	case "enter", " ":
		if w.Zone == ZonePool {
			w.State.Take(w.Index)
		} else {
			w.State.Return(w.Index)
		}
		w.clampIndex()
	case "r":
		w.State.Reset()
		w.Zone = ZonePool
		w.Index = 0
	}

	return w, nil
}

func (w WordBank) rowLen() int {
	if w.Zone == ZonePool {
		return len(w.State.Pool)
	}
	return len(w.State.Assembled)
}

func (w *WordBank) clampIndex() {
	if n := w.rowLen(); w.Index >= n {
		w.Index = n - 1
	}
	if w.Index < 0 {
		w.Index = 0
	}
}

// View renders the prompt, the assembled sentence, and the pool.
func (w WordBank) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Prompt))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("Sua frase:"))
	b.WriteString("\n")
	b.WriteString(w.renderRow(w.State.Assembled, w.Zone == ZoneAssembled))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("Palavras disponíveis:"))
	b.WriteString("\n")
	b.WriteString(w.renderRow(w.State.Pool, w.Zone == ZonePool))

	return b.String()
}

func (w WordBank) renderRow(words []string, focused bool) string {
	if len(words) == 0 {
		return theme.Locked.Render("  (vazio)")
	}

	parts := make([]string, 0, len(words))
	for i, word := range words {
		chip := " " + word + " "
		switch {
		case focused && i == w.Index:
			parts = append(parts, theme.ButtonActive.Render(chip))
		default:
			parts = append(parts, theme.ButtonInactive.Render(chip))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
