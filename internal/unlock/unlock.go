// Package unlock implements the linear lesson gating policy: within a
// level, each lesson opens only once the one before it is completed.
package unlock

import (
	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/profile"
)

// IsUnlocked reports whether the lesson may be started. The first
// lesson of a level is always open; every other lesson requires the
// immediately preceding lesson in the same level to be completed.
// Levels gate independently, so finishing Básico is never required to
// start Intermediário. Unknown lesson ids are locked.
func IsUnlocked(language string, level curriculum.Level, lessonID string, p *profile.Profile) bool {
	ids, err := curriculum.LessonIDs(language, level)
	if err != nil {
		return false
	}
	for i, id := range ids {
		if id != lessonID {
			continue
		}
		if i == 0 {
			return true
		}
		return p.Completed(ids[i-1])
	}
	return false
}
