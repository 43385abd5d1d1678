// Package progression drives a lesson play-through: it owns the active
// session, verifies answers, advances through exercises, and settles XP
// and completion against the learner profile when the lesson ends.
package progression

import (
	"errors"
	"fmt"

	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/exercise"
	"github.com/lingotutor/lingotutor/internal/profile"
)

// XPPerExercise is the experience earned per exercise in a completed
// lesson. XP settles all at once on completion, never per answer.
const XPPerExercise = 10

// Source tells where a lesson came from. AI lessons earn XP like
// curriculum lessons but are never marked completed: they are
// ephemeral and take no part in unlocking.
type Source string

const (
	SourceCurriculum Source = "curriculum"
	SourceAI         Source = "ai"
)

var (
	// ErrNoActiveSession is returned when an answer is submitted with
	// no lesson in progress.
	ErrNoActiveSession = errors.New("progression: no active lesson session")

	// ErrWrongKind is returned when the submission form does not match
	// the current exercise's kind.
	ErrWrongKind = errors.New("progression: submission does not match exercise kind")
)

// Outcome is the result of one answer submission.
type Outcome struct {
	// Correct reports whether the answer matched.
	Correct bool

	// Completed is set when the correct answer was the lesson's last.
	Completed bool

	// XPAwarded is the XP settled on completion, zero otherwise.
	XPAwarded int
}

// LessonSession is the state of one lesson in progress.
type LessonSession struct {
	Language string
	Level    curriculum.Level
	Lesson   curriculum.Lesson
	Source   Source

	// Index is the current exercise position. It only advances on a
	// correct answer.
	Index int

	// Arrange is the working state for the current exercise when it is
	// an arrange exercise, nil otherwise.
	Arrange *exercise.ArrangeState

	// arrangeKey identifies the exercise Arrange was derived for, so
	// repeated activation of the same exercise never reshuffles the
	// pool under the learner.
	arrangeKey string
}

// Current returns the exercise at the session's index.
func (s *LessonSession) Current() exercise.Exercise {
	return s.Lesson.Exercises[s.Index]
}

func (s *LessonSession) ensureArrange() {
	ex := s.Current()
	if ex.Kind != exercise.KindArrange {
		s.Arrange = nil
		s.arrangeKey = ""
		return
	}
	key := fmt.Sprintf("%s/%d", s.Lesson.ID, s.Index)
	if s.arrangeKey == key && s.Arrange != nil {
		return
	}
	s.Arrange = exercise.NewArrangeState(ex)
	s.arrangeKey = key
}

// Controller coordinates sessions against a learner profile tracker.
// One controller per user session; not safe for concurrent use.
type Controller struct {
	tracker *profile.Tracker
	session *LessonSession
}

// NewController returns a controller settling progress into tracker.
func NewController(tracker *profile.Tracker) *Controller {
	return &Controller{tracker: tracker}
}

// Session returns the lesson in progress, or nil.
func (c *Controller) Session() *LessonSession {
	return c.session
}

// Tracker returns the profile tracker progress settles into.
func (c *Controller) Tracker() *profile.Tracker {
	return c.tracker
}

// Start begins a lesson at its first exercise, replacing any session in
// progress. Lessons with no exercises are rejected.
func (c *Controller) Start(language string, level curriculum.Level, lesson curriculum.Lesson, source Source) (*LessonSession, error) {
	if len(lesson.Exercises) == 0 {
		return nil, fmt.Errorf("progression: lesson %q has no exercises", lesson.ID)
	}
	c.session = &LessonSession{
		Language: language,
		Level:    level,
		Lesson:   lesson,
		Source:   source,
	}
	c.session.ensureArrange()
	return c.session, nil
}

// SubmitSelect checks the chosen option against the current select
// exercise. A nil choice returns exercise.ErrNoSelection and changes
// nothing. An incorrect answer leaves the index in place for a retry.
func (c *Controller) SubmitSelect(choice *string) (Outcome, error) {
	if c.session == nil {
		return Outcome{}, ErrNoActiveSession
	}
	ex := c.session.Current()
	if ex.Kind != exercise.KindSelect {
		return Outcome{}, ErrWrongKind
	}
	ok, err := exercise.CheckSelect(ex, choice)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return Outcome{}, nil
	}
	return c.advance(), nil
}

// SubmitArrange checks the session's assembled sentence against the
// current arrange exercise. An incorrect ordering leaves the index and
// the assembled words in place.
func (c *Controller) SubmitArrange() (Outcome, error) {
	if c.session == nil {
		return Outcome{}, ErrNoActiveSession
	}
	ex := c.session.Current()
	if ex.Kind != exercise.KindArrange || c.session.Arrange == nil {
		return Outcome{}, ErrWrongKind
	}
	if !exercise.CheckArrange(ex, c.session.Arrange.Assembled) {
		return Outcome{}, nil
	}
	return c.advance(), nil
}

// Abandon discards the session in progress. No XP is earned and
// nothing is marked completed, regardless of how far the lesson got.
func (c *Controller) Abandon() {
	c.session = nil
}

// advance moves past a correct answer. On the last exercise it settles
// the lesson: completion is recorded for curriculum lessons only, XP is
// awarded for both sources, and the session is destroyed.
func (c *Controller) advance() Outcome {
	s := c.session
	s.Index++
	if s.Index < len(s.Lesson.Exercises) {
		s.ensureArrange()
		return Outcome{Correct: true}
	}

	xp := XPPerExercise * len(s.Lesson.Exercises)
	p := c.tracker.Get(s.Language)
	if s.Source == SourceCurriculum {
		p.MarkCompleted(s.Lesson.ID)
	}
	// xp is always positive here, the award cannot fail.
	_ = p.AwardXP(xp)
	c.session = nil
	return Outcome{Correct: true, Completed: true, XPAwarded: xp}
}
