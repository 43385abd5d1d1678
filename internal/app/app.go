// Package app hosts the root Bubble Tea model: the screen router, the
// window frame, and the global key handling.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/lingotutor/lingotutor/internal/chat"
	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/practice"
	"github.com/lingotutor/lingotutor/internal/profile"
	"github.com/lingotutor/lingotutor/internal/progression"
	"github.com/lingotutor/lingotutor/internal/router"
	"github.com/lingotutor/lingotutor/internal/screen"
	"github.com/lingotutor/lingotutor/internal/screens/dashboard"
	"github.com/lingotutor/lingotutor/internal/screens/welcome"
	"github.com/lingotutor/lingotutor/internal/store"
	"github.com/lingotutor/lingotutor/internal/ui/layout"
)

// Options carries the services the screens run on. Generator and Tutor
// are nil when no LLM provider is configured; the UI degrades to the
// curriculum-only experience.
type Options struct {
	Tracker    *profile.Tracker
	Controller *progression.Controller
	Generator  *practice.Generator
	Tutor      *chat.Tutor
	EventRepo  store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome screen. The
// welcome and dashboard factories reference each other so the learner
// can switch languages from the dashboard.
func newAppModel(opts Options) AppModel {
	var welcomeFactory func() screen.Screen

	dashboardFactory := func(lang curriculum.Language) screen.Screen {
		return dashboard.New(
			lang,
			opts.Tracker,
			opts.Controller,
			opts.Generator,
			opts.Tutor,
			opts.EventRepo,
			welcomeFactory,
		)
	}
	welcomeFactory = func() screen.Screen {
		return welcome.New(dashboardFactory)
	}

	return AppModel{
		router: router.New(welcomeFactory()),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: the lesson screen asks for
		// confirmation before abandoning a run.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	languageLabel := ""
	xp := 0
	if p, ok := active.(screen.HeaderInfoProvider); ok {
		languageLabel, xp = p.HeaderInfo()
	}

	header := layout.RenderHeader(title, languageLabel, xp, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := layout.ContentHeight(m.height)
	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
