// Package curriculum holds the fixed lesson catalog: languages, their
// proficiency levels, and the ordered lessons within each level. The
// catalog is registered at init time by the per-language data packages
// and never mutated afterwards.
package curriculum

import (
	"fmt"

	"github.com/lingotutor/lingotutor/internal/exercise"
)

// Language describes a study language available in LingoTutor.
type Language struct {
	Name string // display name, e.g. "Inglês"
	Flag string // flag emoji shown next to the name
}

// Level is a proficiency tier grouping lessons. Ordering is
// presentation only; unlocking happens within a level, never across.
type Level string

const (
	LevelBasic        Level = "Básico"
	LevelIntermediate Level = "Intermediário"
	LevelAdvanced     Level = "Avançado"
)

// LevelOrder is the fixed display order of levels.
var LevelOrder = []Level{LevelBasic, LevelIntermediate, LevelAdvanced}

// Lesson is an ordered sequence of exercises with a stable identifier.
// The position of a lesson within its level is the unlock order.
type Lesson struct {
	ID          string
	Title       string
	Icon        string
	Description string
	Exercises   []exercise.Exercise
}

// NotFoundError reports a catalog lookup miss. With curated data it
// signals a programming error; callers treat it as fatal to the
// request, not to the process.
type NotFoundError struct {
	Language string
	Level    Level
	LessonID string
}

func (e *NotFoundError) Error() string {
	switch {
	case e.LessonID != "":
		return fmt.Sprintf("curriculum: no lesson %q in %s/%s", e.LessonID, e.Language, e.Level)
	case e.Level != "":
		return fmt.Sprintf("curriculum: no level %q for language %q", e.Level, e.Language)
	default:
		return fmt.Sprintf("curriculum: unknown language %q", e.Language)
	}
}
