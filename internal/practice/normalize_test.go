package practice

import (
	"testing"

	"github.com/lingotutor/lingotutor/internal/exercise"
)

func TestNormalize_ValidBatch(t *testing.T) {
	raw := `[
		{"type": "select", "prompt": "Como dizer 'Olá'?", "options": ["Hello", "Bye"], "answer": "Hello"},
		{"type": "arrange", "prompt": "Organize a frase", "words": ["is", "My", "Ana", "name"], "answer": ["My", "name", "is", "Ana"]}
	]`

	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("got %d exercises, want 2", len(got))
	}
	if got[0].Kind != exercise.KindSelect || got[0].Answer != "Hello" {
		t.Errorf("unexpected select exercise: %+v", got[0])
	}
	if got[1].Kind != exercise.KindArrange || len(got[1].Order) != 4 {
		t.Errorf("unexpected arrange exercise: %+v", got[1])
	}
}

func TestNormalize_StripsCodeFences(t *testing.T) {
	raw := "```json\n" +
		`[{"type": "select", "prompt": "Traduza 'dog'", "options": ["cachorro", "gato"], "answer": "cachorro"}]` +
		"\n```"

	got := Normalize(raw)
	if len(got) != 1 {
		t.Fatalf("got %d exercises, want 1", len(got))
	}

	// Plain fences without a language tag.
	raw = "```\n" +
		`[{"type": "select", "prompt": "Traduza 'cat'", "options": ["gato", "cão"], "answer": "gato"}]` +
		"\n```"
	if got := Normalize(raw); len(got) != 1 {
		t.Fatalf("plain fence: got %d exercises, want 1", len(got))
	}
}

func TestNormalize_DropsInvalidItems(t *testing.T) {
	raw := `[
		{"type": "select", "prompt": "Válido", "options": ["A", "B"], "answer": "A"},
		{"type": "essay", "prompt": "Tipo desconhecido", "answer": "x"},
		{"type": "select", "prompt": "Sem opções", "answer": "A"},
		{"type": "select", "options": ["A"], "answer": "A"},
		{"type": "arrange", "prompt": "Sem palavras", "answer": ["a"]},
		{"type": "arrange", "prompt": "Resposta não é permutação", "words": ["a", "b"], "answer": ["a", "c"]},
		{"type": "select", "prompt": "Resposta fora das opções", "options": ["A", "B"], "answer": "C"},
		"não é um objeto",
		{"type": "arrange", "prompt": "Válido", "words": ["b", "a"], "answer": ["a", "b"]}
	]`

	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("got %d exercises, want 2: %+v", len(got), got)
	}
	if got[0].Prompt != "Válido" || got[1].Kind != exercise.KindArrange {
		t.Errorf("kept the wrong items: %+v", got)
	}
}

func TestNormalize_UnusablePayloads(t *testing.T) {
	cases := map[string]string{
		"not json":          "isso não é JSON",
		"object not array":  `{"type": "select", "prompt": "x", "options": ["A"], "answer": "A"}`,
		"empty array":       `[]`,
		"all items invalid": `[{"type": "essay"}, 42, null]`,
		"empty string":      "",
		"bare fences":       "```json\n```",
	}

	for name, raw := range cases {
		if got := Normalize(raw); got != nil {
			t.Errorf("%s: expected nil, got %+v", name, got)
		}
	}
}

func TestNormalize_MismatchedAnswerTypes(t *testing.T) {
	// Select answer must be a string, arrange answer a word list.
	raw := `[
		{"type": "select", "prompt": "x", "options": ["A"], "answer": ["A"]},
		{"type": "arrange", "prompt": "y", "words": ["a"], "answer": "a"}
	]`
	if got := Normalize(raw); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
