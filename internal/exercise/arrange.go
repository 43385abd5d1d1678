package exercise

import "math/rand/v2"

// ArrangeState is the learner's working state for an arrange exercise:
// the remaining shuffled tokens and the sentence assembled so far.
// Pool and Assembled together always hold exactly the exercise's Words
// multiset.
type ArrangeState struct {
	words     []string
	Pool      []string
	Assembled []string
}

// NewArrangeState derives a fresh working state for the exercise with a
// uniformly shuffled pool. Callers derive state once per exercise
// activation; re-deriving on every render would re-scramble the pool
// under the learner.
func NewArrangeState(e Exercise) *ArrangeState {
	s := &ArrangeState{words: e.Words}
	s.Reset()
	return s
}

// Take moves the pool token at index i to the end of the assembled
// sentence. Out-of-range indices are ignored.
func (s *ArrangeState) Take(i int) {
	if i < 0 || i >= len(s.Pool) {
		return
	}
	w := s.Pool[i]
	s.Pool = append(s.Pool[:i], s.Pool[i+1:]...)
	s.Assembled = append(s.Assembled, w)
}

// Return moves the assembled token at index i back to the pool. The
// token is appended at the end of the pool, not restored to its
// original scrambled position; the pool order after a return is
// insertion order.
func (s *ArrangeState) Return(i int) {
	if i < 0 || i >= len(s.Assembled) {
		return
	}
	w := s.Assembled[i]
	s.Assembled = append(s.Assembled[:i], s.Assembled[i+1:]...)
	s.Pool = append(s.Pool, w)
}

// Reset reshuffles the pool from the full word multiset and empties the
// assembled sentence.
func (s *ArrangeState) Reset() {
	s.Pool = make([]string, len(s.words))
	copy(s.Pool, s.words)
	rand.Shuffle(len(s.Pool), func(i, j int) {
		s.Pool[i], s.Pool[j] = s.Pool[j], s.Pool[i]
	})
	s.Assembled = nil
}
