package practice

import (
	"encoding/json"
	"strings"

	"github.com/lingotutor/lingotutor/internal/exercise"
)

// rawItem is the wire shape of one AI-generated exercise. Answer stays
// raw because its type depends on the exercise kind: a string for
// select, an ordered word list for arrange.
type rawItem struct {
	Type    string          `json:"type"`
	Prompt  string          `json:"prompt"`
	Options []string        `json:"options"`
	Words   []string        `json:"words"`
	Answer  json.RawMessage `json:"answer"`
}

// Normalize funnels a raw model reply into playable exercises. Invalid
// elements are silently dropped, never corrected; anything unusable at
// the top level yields nil. The result is safe to hand straight to the
// progression controller.
func Normalize(raw string) []exercise.Exercise {
	cleaned := stripFences(raw)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil
	}

	var out []exercise.Exercise
	for _, item := range items {
		var ri rawItem
		if err := json.Unmarshal(item, &ri); err != nil {
			continue
		}
		ex, ok := buildExercise(ri)
		if !ok {
			continue
		}
		if err := ex.Validate(); err != nil {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func buildExercise(ri rawItem) (exercise.Exercise, bool) {
	if ri.Prompt == "" || len(ri.Answer) == 0 {
		return exercise.Exercise{}, false
	}

	switch ri.Type {
	case "select":
		if len(ri.Options) == 0 {
			return exercise.Exercise{}, false
		}
		var answer string
		if err := json.Unmarshal(ri.Answer, &answer); err != nil {
			return exercise.Exercise{}, false
		}
		return exercise.Exercise{
			Kind:    exercise.KindSelect,
			Prompt:  ri.Prompt,
			Options: ri.Options,
			Answer:  answer,
		}, true

	case "arrange":
		if len(ri.Words) == 0 {
			return exercise.Exercise{}, false
		}
		var order []string
		if err := json.Unmarshal(ri.Answer, &order); err != nil {
			return exercise.Exercise{}, false
		}
		return exercise.Exercise{
			Kind:   exercise.KindArrange,
			Prompt: ri.Prompt,
			Words:  ri.Words,
			Order:  order,
		}, true

	default:
		return exercise.Exercise{}, false
	}
}

// stripFences removes a markdown code fence and an optional "json"
// language tag from around the payload.
func stripFences(s string) string {
	cleaned := strings.TrimSpace(s)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.Trim(cleaned, "`")
		cleaned = strings.Replace(cleaned, "json", "", 1)
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
