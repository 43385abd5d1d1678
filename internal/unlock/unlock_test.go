package unlock_test

import (
	"testing"

	"github.com/lingotutor/lingotutor/internal/curriculum"
	_ "github.com/lingotutor/lingotutor/internal/curriculum/english"
	_ "github.com/lingotutor/lingotutor/internal/curriculum/spanish"
	"github.com/lingotutor/lingotutor/internal/profile"
	"github.com/lingotutor/lingotutor/internal/unlock"
)

func TestLinearUnlockWithinLevel(t *testing.T) {
	p := &profile.Profile{}

	if !unlock.IsUnlocked("Inglês", curriculum.LevelBasic, "en-basic-1", p) {
		t.Error("first lesson should start unlocked")
	}
	if unlock.IsUnlocked("Inglês", curriculum.LevelBasic, "en-basic-2", p) {
		t.Error("second lesson unlocked before first completed")
	}

	p.MarkCompleted("en-basic-1")
	if !unlock.IsUnlocked("Inglês", curriculum.LevelBasic, "en-basic-2", p) {
		t.Error("second lesson still locked after first completed")
	}
	if unlock.IsUnlocked("Inglês", curriculum.LevelBasic, "en-basic-3", p) {
		t.Error("third lesson unlocked without second completed")
	}
}

func TestLevelsGateIndependently(t *testing.T) {
	p := &profile.Profile{}

	// No Básico progress is required to open the first lesson of a
	// higher level.
	if !unlock.IsUnlocked("Inglês", curriculum.LevelIntermediate, "en-inter-1", p) {
		t.Error("first intermediate lesson should start unlocked")
	}
	if !unlock.IsUnlocked("Inglês", curriculum.LevelAdvanced, "en-adv-1", p) {
		t.Error("first advanced lesson should start unlocked")
	}

	// Completing a Básico lesson unlocks nothing outside Básico.
	p.MarkCompleted("en-basic-1")
	if unlock.IsUnlocked("Inglês", curriculum.LevelIntermediate, "en-inter-2", p) {
		t.Error("intermediate lesson unlocked by basic progress")
	}
}

func TestUnknownIDsAreLocked(t *testing.T) {
	p := &profile.Profile{}
	p.MarkCompleted("en-basic-1")

	if unlock.IsUnlocked("Inglês", curriculum.LevelBasic, "en-basic-99", p) {
		t.Error("unknown lesson id reported unlocked")
	}
	if unlock.IsUnlocked("Klingon", curriculum.LevelBasic, "en-basic-1", p) {
		t.Error("unknown language reported unlocked")
	}
}
