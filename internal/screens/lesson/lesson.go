// Package lesson plays one lesson session exercise by exercise.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/exercise"
	"github.com/lingotutor/lingotutor/internal/progression"
	"github.com/lingotutor/lingotutor/internal/router"
	"github.com/lingotutor/lingotutor/internal/screen"
	"github.com/lingotutor/lingotutor/internal/store"
	"github.com/lingotutor/lingotutor/internal/ui/components"
	"github.com/lingotutor/lingotutor/internal/ui/layout"
	"github.com/lingotutor/lingotutor/internal/ui/theme"
)

type phase int

const (
	phasePlaying phase = iota
	phaseConfirmQuit
	phaseDone
)

// LessonScreen drives the active session of the progression controller.
// It is pushed with a session already started and pops itself when the
// lesson completes or the learner abandons it.
type LessonScreen struct {
	language   curriculum.Language
	controller *progression.Controller
	eventRepo  store.EventRepo

	// Session identity, captured at construction: the controller's
	// session is destroyed before the completion view renders.
	lesson curriculum.Lesson
	level  curriculum.Level
	source progression.Source
	total  int
	// xp shown in the header; frozen at construction so the header
	// doesn't jump before the completion view explains why.
	xpAtStart int

	phase    phase
	index    int
	choice   components.Choice
	bank     components.WordBank
	isSelect bool

	feedback    string
	feedbackBad bool
	xpAwarded   int

	// confirmQuit is the focused button in the abandon dialog: true
	// means "abandonar".
	confirmQuit bool
}

var _ screen.Screen = (*LessonScreen)(nil)

// New wraps the controller's current session. The caller must have
// started a session; a nil session yields a screen that pops on any
// key.
func New(language curriculum.Language, controller *progression.Controller, eventRepo store.EventRepo) *LessonScreen {
	l := &LessonScreen{
		language:   language,
		controller: controller,
		eventRepo:  eventRepo,
	}

	s := controller.Session()
	if s == nil {
		l.phase = phaseDone
		return l
	}
	l.lesson = s.Lesson
	l.level = s.Level
	l.source = s.Source
	l.total = len(s.Lesson.Exercises)
	l.xpAtStart = controller.Tracker().Get(s.Language).XP
	l.syncInput()
	return l
}

func (l *LessonScreen) Title() string {
	return l.lesson.Title
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

// HeaderInfo implements screen.HeaderInfoProvider.
func (l *LessonScreen) HeaderInfo() (string, int) {
	return l.language.Flag + " " + l.language.Name, l.xpAtStart
}

// KeyHints implements screen.KeyHintProvider.
func (l *LessonScreen) KeyHints() []layout.KeyHint {
	switch l.phase {
	case phaseConfirmQuit:
		return []layout.KeyHint{
			{Key: "←→", Description: "Escolher"},
			{Key: "Enter", Description: "Confirmar"},
			{Key: "Esc", Description: "Continuar a lição"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Voltar"},
		}
	}
	if l.isSelect {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Escolher"},
			{Key: "Enter", Description: "Verificar"},
			{Key: "Esc", Description: "Sair da lição"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Mover"},
		{Key: "Tab", Description: "Trocar linha"},
		{Key: "Enter", Description: "Pegar/Devolver"},
		{Key: "V", Description: "Verificar"},
		{Key: "R", Description: "Recomeçar"},
		{Key: "Esc", Description: "Sair da lição"},
	}
}

// syncInput points the input component at the session's current
// exercise.
func (l *LessonScreen) syncInput() {
	s := l.controller.Session()
	if s == nil {
		return
	}
	l.index = s.Index
	ex := s.Current()
	if ex.Kind == exercise.KindSelect {
		l.isSelect = true
		l.choice = components.NewChoice(ex.Prompt, ex.Options)
	} else {
		l.isSelect = false
		l.bank = components.NewWordBank(ex.Prompt, s.Arrange)
	}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch l.phase {
	case phaseDone:
		return l, pop()

	case phaseConfirmQuit:
		switch kmsg.String() {
		case "left", "right", "tab":
			l.confirmQuit = !l.confirmQuit
		case "s":
			l.controller.Abandon()
			return l, pop()
		case "n", "esc":
			l.phase = phasePlaying
		case "enter":
			if l.confirmQuit {
				l.controller.Abandon()
				return l, pop()
			}
			l.phase = phasePlaying
		}
		return l, nil
	}

	switch kmsg.String() {
	case "esc":
		l.phase = phaseConfirmQuit
		l.confirmQuit = false
		return l, nil
	case "enter":
		if l.isSelect {
			return l, l.submitSelect()
		}
	case "v":
		if !l.isSelect {
			return l, l.submitArrange()
		}
	}

	if l.isSelect {
		l.choice, _ = l.choice.Update(msg)
	} else {
		l.bank, _ = l.bank.Update(msg)
	}
	return l, nil
}

func (l *LessonScreen) submitSelect() tea.Cmd {
	outcome, err := l.controller.SubmitSelect(l.choice.Value())
	if err != nil {
		if errors.Is(err, exercise.ErrNoSelection) {
			l.feedback = "Escolha uma opção antes de verificar."
			l.feedbackBad = true
			return nil
		}
		l.feedback = err.Error()
		l.feedbackBad = true
		return nil
	}
	return l.settle(outcome, "Resposta incorreta. Tente novamente.")
}

func (l *LessonScreen) submitArrange() tea.Cmd {
	outcome, err := l.controller.SubmitArrange()
	if err != nil {
		l.feedback = err.Error()
		l.feedbackBad = true
		return nil
	}
	return l.settle(outcome, "Quase! Verifique a ordem das palavras.")
}

func (l *LessonScreen) settle(outcome progression.Outcome, wrongMsg string) tea.Cmd {
	if !outcome.Correct {
		l.feedback = wrongMsg
		l.feedbackBad = true
		return nil
	}

	if outcome.Completed {
		l.phase = phaseDone
		l.xpAwarded = outcome.XPAwarded
		l.feedback = ""
		return l.logCompletion()
	}

	l.feedback = "Resposta correta! 🎯"
	l.feedbackBad = false
	l.syncInput()
	return nil
}

// logCompletion records the finished lesson in the event log.
func (l *LessonScreen) logCompletion() tea.Cmd {
	if l.eventRepo == nil {
		return nil
	}
	data := store.LessonCompletionEventData{
		Language:      l.language.Name,
		Level:         string(l.level),
		LessonID:      l.lesson.ID,
		Title:         l.lesson.Title,
		Source:        string(l.source),
		ExerciseCount: l.total,
		XPAwarded:     l.xpAwarded,
	}
	repo := l.eventRepo
	return func() tea.Msg {
		// Best effort; a failed write never interrupts play.
		_ = repo.AppendLessonCompletion(context.Background(), data)
		return nil
	}
}

func pop() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (l *LessonScreen) View(width, height int) string {
	switch l.phase {
	case phaseDone:
		return l.viewDone(width, height)
	case phaseConfirmQuit:
		return l.viewConfirmQuit(width, height)
	}

	var sections []string

	header := fmt.Sprintf("%s %s", l.lesson.Icon, l.lesson.Title)
	sections = append(sections, theme.Title.Render(header), "")

	bar := components.NewProgressBar(
		fmt.Sprintf("Exercício %d/%d", l.index+1, l.total),
		float64(l.index)/float64(l.total),
		false, min(width-8, 48),
	)
	sections = append(sections, bar.View(), "")

	if l.isSelect {
		sections = append(sections, l.choice.View())
	} else {
		sections = append(sections, l.bank.View())
	}

	if l.feedback != "" {
		style := theme.Correct
		if l.feedbackBad {
			style = theme.Incorrect
		}
		sections = append(sections, "", style.Render(l.feedback))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LessonScreen) viewConfirmQuit(width, height int) string {
	abandon := components.NewButton("Abandonar", l.confirmQuit, nil)
	resume := components.NewButton("Continuar", !l.confirmQuit, nil)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, abandon.View(), "   ", resume.View())

	box := theme.Card.Render(strings.Join([]string{
		theme.Incorrect.Render("Abandonar a lição?"),
		"",
		theme.Body.Render("O progresso desta lição será perdido."),
		"",
		buttons,
	}, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (l *LessonScreen) viewDone(width, height int) string {
	lines := []string{
		theme.Correct.Render("🎉 Lição concluída!"),
		"",
	}
	if l.xpAwarded > 0 {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("+%d XP", l.xpAwarded)),
			"",
		)
	}
	lines = append(lines, theme.Hint.Render("pressione enter para voltar"))

	box := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
