package exercise

import (
	"sort"
	"testing"
)

// multisetEquals ignores order.
func multisetEquals(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func (s *ArrangeState) conserved(words []string) bool {
	all := append(append([]string(nil), s.Pool...), s.Assembled...)
	return multisetEquals(all, words)
}

func TestArrangeState_Conservation(t *testing.T) {
	e := arrangeExercise()
	s := NewArrangeState(e)

	if !s.conserved(e.Words) {
		t.Fatal("fresh state does not conserve word multiset")
	}

	// Drain the pool into the sentence, checking conservation each step.
	for len(s.Pool) > 0 {
		s.Take(0)
		if !s.conserved(e.Words) {
			t.Fatal("conservation broken after Take")
		}
	}
	if len(s.Assembled) != len(e.Words) {
		t.Fatalf("assembled %d words, want %d", len(s.Assembled), len(e.Words))
	}

	// Return everything.
	for len(s.Assembled) > 0 {
		s.Return(0)
		if !s.conserved(e.Words) {
			t.Fatal("conservation broken after Return")
		}
	}
}

func TestArrangeState_ReturnAppendsToPool(t *testing.T) {
	e := arrangeExercise()
	s := NewArrangeState(e)

	s.Take(0)
	s.Take(0)
	returned := s.Assembled[0]
	s.Return(0)

	if got := s.Pool[len(s.Pool)-1]; got != returned {
		t.Errorf("returned token %q not appended at pool end (got %q)", returned, got)
	}
}

func TestArrangeState_Reset(t *testing.T) {
	e := arrangeExercise()
	s := NewArrangeState(e)

	s.Take(0)
	s.Take(0)
	s.Reset()

	if len(s.Assembled) != 0 {
		t.Errorf("reset left %d assembled words", len(s.Assembled))
	}
	if !multisetEquals(s.Pool, e.Words) {
		t.Error("reset pool is not the full word multiset")
	}
}

func TestArrangeState_IgnoresOutOfRange(t *testing.T) {
	e := arrangeExercise()
	s := NewArrangeState(e)

	s.Take(-1)
	s.Take(99)
	s.Return(0)

	if !s.conserved(e.Words) {
		t.Error("out-of-range ops broke conservation")
	}
	if len(s.Assembled) != 0 {
		t.Error("out-of-range Take moved a token")
	}
}
