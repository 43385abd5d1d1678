package progression

import (
	"errors"
	"testing"

	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/exercise"
	"github.com/lingotutor/lingotutor/internal/profile"
)

func testLesson() curriculum.Lesson {
	return curriculum.Lesson{
		ID:    "test-1",
		Title: "Saudações",
		Exercises: []exercise.Exercise{
			{
				Kind:    exercise.KindSelect,
				Prompt:  "Como dizer 'Bom dia'?",
				Options: []string{"Good morning", "Good night", "Goodbye"},
				Answer:  "Good morning",
			},
			{
				Kind:   exercise.KindArrange,
				Prompt: "Organize: 'Meu nome é Ana'",
				Words:  []string{"name", "My", "Ana", "is"},
				Order:  []string{"My", "name", "is", "Ana"},
			},
			{
				Kind:    exercise.KindSelect,
				Prompt:  "O que significa 'Thank you'?",
				Options: []string{"Por favor", "Obrigado", "Desculpe"},
				Answer:  "Obrigado",
			},
		},
	}
}

// assembleCorrect drains the pool into the assembled sentence in the
// exercise's correct order.
func assembleCorrect(s *exercise.ArrangeState, order []string) {
	for _, want := range order {
		for i, w := range s.Pool {
			if w == want {
				s.Take(i)
				break
			}
		}
	}
}

func strptr(s string) *string { return &s }

func TestPlayThroughCurriculumLesson(t *testing.T) {
	tr := profile.NewTracker()
	c := NewController(tr)

	sess, err := c.Start("Inglês", curriculum.LevelBasic, testLesson(), SourceCurriculum)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Index != 0 {
		t.Fatalf("session starts at index %d", sess.Index)
	}
	if sess.Arrange != nil {
		t.Error("arrange state derived for a select exercise")
	}

	// No selection: validation error, nothing moves.
	if _, err := c.SubmitSelect(nil); !errors.Is(err, exercise.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if sess.Index != 0 {
		t.Fatal("index advanced on validation error")
	}

	// Wrong answer: retry in place.
	out, err := c.SubmitSelect(strptr("Good night"))
	if err != nil {
		t.Fatal(err)
	}
	if out.Correct || sess.Index != 0 {
		t.Fatalf("wrong answer advanced: %+v index=%d", out, sess.Index)
	}

	out, err = c.SubmitSelect(strptr("Good morning"))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Correct || out.Completed {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if sess.Index != 1 || sess.Arrange == nil {
		t.Fatalf("arrange exercise not activated: index=%d", sess.Index)
	}

	// Wrong ordering keeps the assembled words for editing.
	sess.Arrange.Take(0)
	out, err = c.SubmitArrange()
	if err != nil {
		t.Fatal(err)
	}
	if out.Correct {
		t.Fatal("partial sentence accepted")
	}
	if len(sess.Arrange.Assembled) != 1 {
		t.Fatal("assembled words discarded on wrong answer")
	}

	sess.Arrange.Reset()
	assembleCorrect(sess.Arrange, []string{"My", "name", "is", "Ana"})
	out, err = c.SubmitArrange()
	if err != nil {
		t.Fatal(err)
	}
	if !out.Correct || sess.Index != 2 {
		t.Fatalf("correct arrange did not advance: %+v index=%d", out, sess.Index)
	}
	if sess.Arrange != nil {
		t.Error("arrange state kept past its exercise")
	}

	out, err = c.SubmitSelect(strptr("Obrigado"))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Completed || out.XPAwarded != 30 {
		t.Fatalf("completion outcome %+v, want Completed with 30 XP", out)
	}
	if c.Session() != nil {
		t.Error("session survived completion")
	}

	p := tr.Get("Inglês")
	if p.XP != 30 {
		t.Errorf("profile XP = %d, want 30", p.XP)
	}
	if !p.Completed("test-1") {
		t.Error("curriculum lesson not marked completed")
	}
}

func TestAILessonEarnsXPWithoutCompletion(t *testing.T) {
	tr := profile.NewTracker()
	c := NewController(tr)

	lesson := curriculum.Lesson{
		ID:    "ai-123",
		Title: "Prática Mágica",
		Exercises: []exercise.Exercise{
			{
				Kind:    exercise.KindSelect,
				Prompt:  "Escolha a tradução de 'cat'",
				Options: []string{"gato", "cão"},
				Answer:  "gato",
			},
		},
	}
	if _, err := c.Start("Espanhol", curriculum.LevelBasic, lesson, SourceAI); err != nil {
		t.Fatal(err)
	}
	out, err := c.SubmitSelect(strptr("gato"))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Completed || out.XPAwarded != 10 {
		t.Fatalf("outcome %+v, want Completed with 10 XP", out)
	}

	p := tr.Get("Espanhol")
	if p.XP != 10 {
		t.Errorf("XP = %d, want 10", p.XP)
	}
	if p.Completed("ai-123") {
		t.Error("ephemeral lesson marked completed")
	}
}

// playThrough answers every exercise of testLesson correctly and
// returns the completion outcome.
func playThrough(t *testing.T, c *Controller) Outcome {
	t.Helper()

	sess, err := c.Start("Inglês", curriculum.LevelBasic, testLesson(), SourceCurriculum)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitSelect(strptr("Good morning")); err != nil {
		t.Fatal(err)
	}
	assembleCorrect(sess.Arrange, []string{"My", "name", "is", "Ana"})
	if _, err := c.SubmitArrange(); err != nil {
		t.Fatal(err)
	}
	out, err := c.SubmitSelect(strptr("Obrigado"))
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestReplayCompletedLesson(t *testing.T) {
	tr := profile.NewTracker()
	c := NewController(tr)

	first := playThrough(t, c)
	if !first.Completed || first.XPAwarded != 30 {
		t.Fatalf("first run outcome %+v", first)
	}

	// Replaying a completed lesson settles XP again; completion stays
	// a set membership, not a counter.
	second := playThrough(t, c)
	if !second.Completed || second.XPAwarded != 30 {
		t.Fatalf("replay outcome %+v, want Completed with 30 XP", second)
	}

	p := tr.Get("Inglês")
	if p.XP != 60 {
		t.Errorf("XP after replay = %d, want 60", p.XP)
	}
	if p.CompletedCount() != 1 {
		t.Errorf("CompletedCount = %d, want 1", p.CompletedCount())
	}
	if !p.Completed("test-1") {
		t.Error("lesson no longer marked completed after replay")
	}
}

func TestAbandonDiscardsEverything(t *testing.T) {
	tr := profile.NewTracker()
	c := NewController(tr)

	if _, err := c.Start("Inglês", curriculum.LevelBasic, testLesson(), SourceCurriculum); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitSelect(strptr("Good morning")); err != nil {
		t.Fatal(err)
	}
	c.Abandon()

	if c.Session() != nil {
		t.Fatal("session survived abandon")
	}
	p := tr.Get("Inglês")
	if p.XP != 0 || p.Completed("test-1") {
		t.Errorf("abandoned lesson left progress: xp=%d", p.XP)
	}

	if _, err := c.SubmitSelect(strptr("x")); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestSubmissionKindMismatch(t *testing.T) {
	tr := profile.NewTracker()
	c := NewController(tr)

	if _, err := c.Start("Inglês", curriculum.LevelBasic, testLesson(), SourceCurriculum); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitArrange(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("arrange submission on select exercise: got %v", err)
	}
}

func TestArrangePoolStableAcrossRepeatedActivation(t *testing.T) {
	tr := profile.NewTracker()
	c := NewController(tr)

	lesson := testLesson()
	sess, err := c.Start("Inglês", curriculum.LevelBasic, lesson, SourceCurriculum)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitSelect(strptr("Good morning")); err != nil {
		t.Fatal(err)
	}
	before := sess.Arrange

	// A wrong submission must not rebuild the working state.
	sess.Arrange.Take(0)
	if _, err := c.SubmitArrange(); err != nil {
		t.Fatal(err)
	}
	if sess.Arrange != before {
		t.Error("arrange state rebuilt while the same exercise is active")
	}
}

func TestStartRejectsEmptyLesson(t *testing.T) {
	c := NewController(profile.NewTracker())
	if _, err := c.Start("Inglês", curriculum.LevelBasic, curriculum.Lesson{ID: "empty"}, SourceCurriculum); err == nil {
		t.Fatal("empty lesson accepted")
	}
	if c.Session() != nil {
		t.Error("failed start left a session behind")
	}
}
