package exercise

import "errors"

// ErrNoSelection is returned when a select exercise is submitted with
// no option chosen. It is a validation condition, distinct from an
// incorrect answer: the caller must not advance or record anything.
var ErrNoSelection = errors.New("no option selected")

// CheckSelect reports whether choice is the correct option for a
// select exercise. Comparison is an exact, case-sensitive string match.
// A nil choice returns ErrNoSelection.
func CheckSelect(e Exercise, choice *string) (bool, error) {
	if choice == nil {
		return false, ErrNoSelection
	}
	return *choice == e.Answer, nil
}

// CheckArrange reports whether assembled matches the exercise's correct
// ordering exactly, element by element. There is no partial credit.
func CheckArrange(e Exercise, assembled []string) bool {
	if len(assembled) != len(e.Order) {
		return false
	}
	for i, w := range assembled {
		if w != e.Order[i] {
			return false
		}
	}
	return true
}
