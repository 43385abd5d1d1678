package exercise

import "fmt"

// Kind discriminates the two exercise forms.
type Kind string

const (
	// KindSelect is a single-choice-from-options exercise.
	KindSelect Kind = "select"

	// KindArrange is a word-ordering exercise.
	KindArrange Kind = "arrange"
)

// Exercise is a single practice item inside a lesson.
//
// The Kind field selects which payload fields are meaningful:
// Options/Answer for select, Words/Order for arrange. The zero value
// of the unused fields stays empty.
type Exercise struct {
	// Kind selects the exercise form.
	Kind Kind

	// Prompt is the instruction shown to the learner,
	// e.g. "Como dizer 'Bom dia' em inglês?".
	Prompt string

	// Options holds the candidate answers for a select exercise.
	// At least one option; Answer must be among them.
	Options []string

	// Answer is the correct option text for a select exercise.
	Answer string

	// Words holds the scrambled tokens of an arrange exercise.
	Words []string

	// Order is the correct token ordering for an arrange exercise.
	// It is a permutation of Words.
	Order []string
}

// Validate checks the structural invariants of the exercise.
// Curriculum data is validated once in tests; AI-sourced exercises go
// through the normalizer instead.
func (e Exercise) Validate() error {
	if e.Prompt == "" {
		return fmt.Errorf("exercise has empty prompt")
	}

	switch e.Kind {
	case KindSelect:
		if len(e.Options) == 0 {
			return fmt.Errorf("select %q: no options", e.Prompt)
		}
		for _, opt := range e.Options {
			if opt == e.Answer {
				return nil
			}
		}
		return fmt.Errorf("select %q: answer %q not among options", e.Prompt, e.Answer)

	case KindArrange:
		if len(e.Words) == 0 {
			return fmt.Errorf("arrange %q: no words", e.Prompt)
		}
		if !sameMultiset(e.Words, e.Order) {
			return fmt.Errorf("arrange %q: order is not a permutation of words", e.Prompt)
		}
		return nil

	default:
		return fmt.Errorf("exercise %q: unknown kind %q", e.Prompt, e.Kind)
	}
}

// sameMultiset reports whether a and b contain the same tokens with the
// same multiplicities, ignoring order.
func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, w := range a {
		counts[w]++
	}
	for _, w := range b {
		counts[w]--
		if counts[w] < 0 {
			return false
		}
	}
	return true
}
