// Package profile tracks per-language learner progress for the
// lifetime of a run: accumulated XP and the set of completed lessons.
// Nothing here is persisted; a fresh process starts from zero.
package profile

import "errors"

// ErrInvalidAmount is returned by AwardXP for a non-positive amount.
var ErrInvalidAmount = errors.New("profile: xp amount must be positive")

// Profile is the progress record for one language.
type Profile struct {
	// XP is the total experience earned. It only ever grows.
	XP int

	completed map[string]bool
}

// AwardXP adds n experience points. n must be positive; XP never
// decreases.
func (p *Profile) AwardXP(n int) error {
	if n <= 0 {
		return ErrInvalidAmount
	}
	p.XP += n
	return nil
}

// MarkCompleted records a lesson as finished. Marking an already
// completed lesson is a no-op.
func (p *Profile) MarkCompleted(lessonID string) {
	if p.completed == nil {
		p.completed = make(map[string]bool)
	}
	p.completed[lessonID] = true
}

// Completed reports whether the lesson has been finished in this run.
func (p *Profile) Completed(lessonID string) bool {
	return p.completed[lessonID]
}

// CompletedCount returns how many distinct lessons have been finished.
func (p *Profile) CompletedCount() int {
	return len(p.completed)
}

// Tracker holds one Profile per language, created on first access.
// A Tracker belongs to a single user session and is not safe for
// concurrent use.
type Tracker struct {
	profiles map[string]*Profile
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{profiles: make(map[string]*Profile)}
}

// Get returns the profile for the language, creating it if needed.
// Repeated calls return the same instance.
func (t *Tracker) Get(language string) *Profile {
	if t.profiles == nil {
		t.profiles = make(map[string]*Profile)
	}
	p, ok := t.profiles[language]
	if !ok {
		p = &Profile{}
		t.profiles[language] = p
	}
	return p
}
