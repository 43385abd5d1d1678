package practice

import "github.com/lingotutor/lingotutor/internal/llm"

// exerciseBatchSchema constrains the model to the exercise array the
// normalizer expects. The schema is intentionally loose about which
// payload fields accompany which type; the normalizer is the single
// place that enforces per-kind requirements.
func exerciseBatchSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "exercise-batch",
		Description: "A batch of short language exercises in the select/arrange format",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"select", "arrange"},
					},
					"prompt": map[string]any{
						"type":        "string",
						"description": "Short instruction in Portuguese",
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"words": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer": map[string]any{
						"description": "The correct option (select) or the ordered word list (arrange)",
					},
				},
				"required": []any{"type", "prompt", "answer"},
			},
		},
	}
}
