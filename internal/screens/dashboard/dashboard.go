// Package dashboard is the per-language hub: the lesson map grouped by
// level, the magic practice generator, and the tutor chat entry point.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingotutor/lingotutor/internal/chat"
	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/practice"
	"github.com/lingotutor/lingotutor/internal/profile"
	"github.com/lingotutor/lingotutor/internal/progression"
	"github.com/lingotutor/lingotutor/internal/router"
	"github.com/lingotutor/lingotutor/internal/screen"
	chatscreen "github.com/lingotutor/lingotutor/internal/screens/chat"
	lessonscreen "github.com/lingotutor/lingotutor/internal/screens/lesson"
	"github.com/lingotutor/lingotutor/internal/store"
	"github.com/lingotutor/lingotutor/internal/ui/components"
	"github.com/lingotutor/lingotutor/internal/ui/layout"
	"github.com/lingotutor/lingotutor/internal/ui/theme"
	"github.com/lingotutor/lingotutor/internal/unlock"
)

type practiceReadyMsg struct {
	lesson *curriculum.Lesson
}

type practiceFailedMsg struct {
	err error
}

// DashboardScreen is the hub for one study language.
type DashboardScreen struct {
	language   curriculum.Language
	tracker    *profile.Tracker
	controller *progression.Controller
	generator  *practice.Generator
	tutor      *chat.Tutor
	eventRepo  store.EventRepo

	languagePicker func() screen.Screen

	menu       components.Menu
	generating bool
	status     string
	statusBad  bool
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard for a language. generator and tutor may be
// nil when no LLM provider is configured; the AI entries then explain
// how to enable them instead of acting.
func New(
	language curriculum.Language,
	tracker *profile.Tracker,
	controller *progression.Controller,
	generator *practice.Generator,
	tutor *chat.Tutor,
	eventRepo store.EventRepo,
	languagePicker func() screen.Screen,
) *DashboardScreen {
	d := &DashboardScreen{
		language:       language,
		tracker:        tracker,
		controller:     controller,
		generator:      generator,
		tutor:          tutor,
		eventRepo:      eventRepo,
		languagePicker: languagePicker,
	}
	d.menu = components.NewMenu(d.buildItems())
	return d
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

// HeaderInfo implements screen.HeaderInfoProvider.
func (d *DashboardScreen) HeaderInfo() (string, int) {
	p := d.tracker.Get(d.language.Name)
	return d.language.Flag + " " + d.language.Name, p.XP
}

// KeyHints implements screen.KeyHintProvider.
func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

// buildItems assembles the menu: lessons grouped by level with their
// unlock state, then the AI entries and the language switcher.
func (d *DashboardScreen) buildItems() []components.MenuItem {
	p := d.tracker.Get(d.language.Name)

	var items []components.MenuItem

	levels, err := curriculum.Levels(d.language.Name)
	if err != nil {
		levels = nil
	}
	for _, level := range levels {
		items = append(items, components.MenuItem{
			Label:    "── " + string(level) + " ──",
			Disabled: true,
		})

		lessons, err := curriculum.Lessons(d.language.Name, level)
		if err != nil {
			continue
		}
		for _, lesson := range lessons {
			items = append(items, d.lessonItem(level, lesson, p))
		}

		items = append(items, components.MenuItem{Label: "", Disabled: true})
	}

	items = append(items,
		components.MenuItem{
			Label:  "🚀 Prática Mágica",
			Action: func() tea.Cmd { return d.generatePractice() },
		},
		components.MenuItem{
			Label:  "💬 Tutor IA",
			Action: func() tea.Cmd { return d.openTutor() },
		},
		components.MenuItem{
			Label:  "🌍 Trocar idioma",
			Action: func() tea.Cmd { return d.switchLanguage() },
		},
	)

	return items
}

func (d *DashboardScreen) lessonItem(level curriculum.Level, lesson curriculum.Lesson, p *profile.Profile) components.MenuItem {
	switch {
	case p.Completed(lesson.ID):
		return components.MenuItem{
			Label:  fmt.Sprintf("✅ %s %s · Concluída", lesson.Icon, lesson.Title),
			Action: func() tea.Cmd { return d.startLesson(level, lesson) },
		}
	case unlock.IsUnlocked(d.language.Name, level, lesson.ID, p):
		return components.MenuItem{
			Label:  fmt.Sprintf("▶ %s %s · Disponível", lesson.Icon, lesson.Title),
			Action: func() tea.Cmd { return d.startLesson(level, lesson) },
		}
	default:
		return components.MenuItem{
			Label:    fmt.Sprintf("🔒 %s %s · Bloqueada", lesson.Icon, lesson.Title),
			Disabled: true,
		}
	}
}

func (d *DashboardScreen) startLesson(level curriculum.Level, lesson curriculum.Lesson) tea.Cmd {
	_, err := d.controller.Start(d.language.Name, level, lesson, progression.SourceCurriculum)
	if err != nil {
		d.status = "Não foi possível iniciar a lição: " + err.Error()
		d.statusBad = true
		return nil
	}
	d.status = ""
	ls := lessonscreen.New(d.language, d.controller, d.eventRepo)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: ls}
	}
}

func (d *DashboardScreen) generatePractice() tea.Cmd {
	if d.generator == nil {
		d.status = "Configure uma API key (LINGO_LLM_PROVIDER) para usar a Prática Mágica."
		d.statusBad = true
		return nil
	}
	if d.generating {
		return nil
	}
	d.generating = true
	d.status = "✨ Gerando exercícios mágicos..."
	d.statusBad = false

	gen := d.generator
	language := d.language.Name
	xp := d.tracker.Get(language).XP
	return func() tea.Msg {
		lesson, err := gen.Generate(context.Background(), language, xp)
		if err != nil {
			return practiceFailedMsg{err: err}
		}
		return practiceReadyMsg{lesson: lesson}
	}
}

func (d *DashboardScreen) openTutor() tea.Cmd {
	if d.tutor == nil {
		d.status = "Configure uma API key (LINGO_LLM_PROVIDER) para conversar com o Tutor IA."
		d.statusBad = true
		return nil
	}
	d.status = ""
	cs := chatscreen.New(d.language, d.tracker, d.tutor)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: cs}
	}
}

func (d *DashboardScreen) switchLanguage() tea.Cmd {
	if d.languagePicker == nil {
		return nil
	}
	picker := d.languagePicker()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: picker}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case practiceReadyMsg:
		d.generating = false
		d.status = ""
		_, err := d.controller.Start(d.language.Name, practice.AILevel, *msg.lesson, progression.SourceAI)
		if err != nil {
			d.status = "Não foi possível iniciar a prática: " + err.Error()
			d.statusBad = true
			return d, nil
		}
		ls := lessonscreen.New(d.language, d.controller, d.eventRepo)
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: ls}
		}

	case practiceFailedMsg:
		d.generating = false
		d.statusBad = true
		var unusable *practice.ErrUnusableResponse
		if errors.As(msg.err, &unusable) {
			d.status = "Não entendi o retorno da IA. Tente novamente."
		} else {
			d.status = "Não foi possível gerar exercícios: " + msg.err.Error()
		}
		return d, nil

	case tea.KeyMsg:
		// Unlock states may have changed while a lesson was on top of
		// the stack; rebuild before navigating.
		d.refreshItems()
		var cmd tea.Cmd
		d.menu, cmd = d.menu.Update(msg)
		return d, cmd
	}

	return d, nil
}

// refreshItems rebuilds the menu labels and locks while keeping the
// cursor in place.
func (d *DashboardScreen) refreshItems() {
	selected := d.menu.Selected
	d.menu.Items = d.buildItems()
	if selected >= len(d.menu.Items) {
		selected = len(d.menu.Items) - 1
	}
	for selected > 0 && d.menu.Items[selected].Disabled {
		selected--
	}
	d.menu.Selected = selected
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.tracker.Get(d.language.Name)

	var sections []string

	title := theme.Title.Render(fmt.Sprintf("%s  %s", d.language.Flag, d.language.Name))
	sections = append(sections, title, "")

	total := d.totalLessons()
	done := p.CompletedCount()
	var percent float64
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Lições %d/%d", done, total),
		percent, true, min(width-8, 56),
	)
	sections = append(sections, bar.View(), "")

	sections = append(sections, d.menu.View())

	if d.status != "" {
		style := theme.Hint
		if d.statusBad {
			style = theme.Incorrect
		}
		sections = append(sections, "", style.Render(d.status))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DashboardScreen) totalLessons() int {
	total := 0
	levels, err := curriculum.Levels(d.language.Name)
	if err != nil {
		return 0
	}
	for _, level := range levels {
		lessons, err := curriculum.Lessons(d.language.Name, level)
		if err != nil {
			continue
		}
		total += len(lessons)
	}
	return total
}
