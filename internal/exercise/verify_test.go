package exercise

import (
	"errors"
	"testing"
)

func selectExercise() Exercise {
	return Exercise{
		Kind:    KindSelect,
		Prompt:  "Como dizer 'Bom dia' em inglês?",
		Options: []string{"Good morning", "Good night", "See you later"},
		Answer:  "Good morning",
	}
}

func arrangeExercise() Exercise {
	return Exercise{
		Kind:   KindArrange,
		Prompt: "Monte a frase: Meu nome é Ana.",
		Words:  []string{"name", "is", "My", "Ana"},
		Order:  []string{"My", "name", "is", "Ana"},
	}
}

func TestCheckSelect(t *testing.T) {
	e := selectExercise()

	tests := []struct {
		name    string
		choice  string
		correct bool
	}{
		{"exact match", "Good morning", true},
		{"wrong option", "Good night", false},
		{"case sensitive", "good morning", false},
		{"not an option", "Bonjour", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckSelect(e, &tt.choice)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.correct {
				t.Errorf("CheckSelect(%q) = %v, want %v", tt.choice, got, tt.correct)
			}
		})
	}
}

func TestCheckSelect_NoSelection(t *testing.T) {
	_, err := CheckSelect(selectExercise(), nil)
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestCheckArrange(t *testing.T) {
	e := arrangeExercise()

	tests := []struct {
		name      string
		assembled []string
		correct   bool
	}{
		{"exact order", []string{"My", "name", "is", "Ana"}, true},
		{"swapped words", []string{"My", "is", "name", "Ana"}, false},
		{"incomplete", []string{"My", "name", "is"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckArrange(e, tt.assembled); got != tt.correct {
				t.Errorf("CheckArrange(%v) = %v, want %v", tt.assembled, got, tt.correct)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := selectExercise().Validate(); err != nil {
		t.Errorf("valid select rejected: %v", err)
	}
	if err := arrangeExercise().Validate(); err != nil {
		t.Errorf("valid arrange rejected: %v", err)
	}

	bad := selectExercise()
	bad.Answer = "Bonjour"
	if err := bad.Validate(); err == nil {
		t.Error("select with answer outside options accepted")
	}

	badArr := arrangeExercise()
	badArr.Order = []string{"My", "name", "is", "Bob"}
	if err := badArr.Validate(); err == nil {
		t.Error("arrange with non-permutation order accepted")
	}
}
