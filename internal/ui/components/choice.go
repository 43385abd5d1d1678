package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingotutor/lingotutor/internal/ui/theme"
)

// Choice is the option picker for a select exercise. It starts with
// nothing chosen; submitting without a choice is the caller's
// validation case, not this component's.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int // -1 until the learner moves the cursor
}

// NewChoice creates a choice picker with no option selected.
func NewChoice(prompt string, options []string) Choice {
	return Choice{
		Prompt:   prompt,
		Options:  options,
		Selected: -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		} else if c.Selected == -1 {
			c.Selected = 0
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Value returns the chosen option text, or nil when nothing is chosen.
func (c Choice) Value() *string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return nil
	}
	return &c.Options[c.Selected]
}

// View renders the prompt and the option list.
func (c Choice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		line := fmt.Sprintf("  %s", opt)
		if i == c.Selected {
			line = fmt.Sprintf("▸ %s", opt)
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
