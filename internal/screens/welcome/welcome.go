// Package welcome is the splash and language picker shown on startup.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/router"
	"github.com/lingotutor/lingotutor/internal/screen"
	"github.com/lingotutor/lingotutor/internal/ui/components"
	"github.com/lingotutor/lingotutor/internal/ui/layout"
	"github.com/lingotutor/lingotutor/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
)

const mascotArt = `  ╭───────────╮
  │   ◕   ◕   │
  │     ▿     │
  │  ╰─────╯  │
  ╰─────┬─────╯
   olá! │ hi!
        ╰──────`

// sparkle frames cycle around the mascot
var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen shows a short splash animation and then the language
// picker. Choosing a language replaces this screen with the dashboard
// produced by dashboardFactory.
type WelcomeScreen struct {
	dashboardFactory func(lang curriculum.Language) screen.Screen
	menu             components.Menu
	elapsed          time.Duration
	tickCount        int
	picked           bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen over the registered curriculum languages.
func New(dashboardFactory func(lang curriculum.Language) screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{dashboardFactory: dashboardFactory}

	items := make([]components.MenuItem, 0, len(curriculum.Languages()))
	for _, lang := range curriculum.Languages() {
		items = append(items, components.MenuItem{
			Label:  lang.Flag + "  " + lang.Name,
			Action: func() tea.Cmd { return w.pick(lang) },
		})
	}
	w.menu = components.NewMenu(items)
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		// Keep ticking for the sparkle animation while visible.
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// The picker only reacts once the splash has settled.
		if w.elapsed < phase2End {
			w.elapsed = phase2End
			return w, nil
		}
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) pick(lang curriculum.Language) tea.Cmd {
	if w.picked {
		return nil
	}
	w.picked = true
	dash := w.dashboardFactory(lang)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: dash}
	}
}

// KeyHints implements screen.KeyHintProvider.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.elapsed < phase2End {
		return []layout.KeyHint{
			{Key: "Qualquer tecla", Description: "Pular"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Escolher idioma"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	mascotStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	rendered := mascotStyle.Render(mascotArt)

	// Phase 2+: sparkles around the mascot
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 3 {
			lines[3] = s2 + "  " + lines[3] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner, tagline and the language picker
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Aprenda um novo idioma, um exercício por vez.")
		sections = append(sections, tagline, "")

		prompt := theme.Hint.Render("Qual idioma você quer estudar?")
		sections = append(sections, prompt, "")
		sections = append(sections, w.menu.View())
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
