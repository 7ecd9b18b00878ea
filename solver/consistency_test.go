package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/arbelos/crossfill/puzzle"
)

func domainSizes(s *Solver) int {
	total := 0
	for _, set := range s.domains {
		total += len(set)
	}
	return total
}

func TestNodeConsistencySoundness(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t,
		"___",
		"#_#",
		"#_#",
	)
	s := New(p, []string{"A", "GO", "CAT", "ACE", "FOUR"})
	s.enforceNodeConsistency()
	for _, slot := range p.Slots() {
		for _, w := range s.Domain(slot) {
			is.Equal(len([]rune(w)), slot.Length) // every remaining word fits its slot
		}
	}
}

func TestReviseDropsUnsupportedWords(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t,
		"___",
		"#_#",
		"#_#",
	)
	across := puzzle.Slot{Row: 0, Col: 0, Dir: puzzle.Across, Length: 3}
	down := puzzle.Slot{Row: 0, Col: 1, Dir: puzzle.Down, Length: 3}

	// DOG's middle letter O has no supporting first letter among the
	// down candidates, so revising across against down removes it.
	s := New(p, []string{"DOG", "CAT", "ACE"})
	s.enforceNodeConsistency()
	is.True(s.revise(across, down))
	is.Equal(s.Domain(across), []string{"ACE", "CAT"})

	// A second revision finds nothing more to do.
	is.True(!s.revise(across, down))
}

func TestReviseSelfSupportDoesNotCount(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t,
		"___",
		"#_#",
		"#_#",
	)
	across := puzzle.Slot{Row: 0, Col: 0, Dir: puzzle.Across, Length: 3}
	down := puzzle.Slot{Row: 0, Col: 1, Dir: puzzle.Down, Length: 3}

	// AAA's middle A only lines up with AAA's own first letter; a word
	// may not be its own support, so it is dropped. BAB stays: its
	// middle A is supported by AAA.
	s := New(p, []string{"AAA", "BAB"})
	s.enforceNodeConsistency()
	is.True(s.revise(across, down))
	is.Equal(s.Domain(across), []string{"BAB"})
}

func TestReviseNoOverlapIsNoop(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t,
		"__#__",
	)
	a := puzzle.Slot{Row: 0, Col: 0, Dir: puzzle.Across, Length: 2}
	b := puzzle.Slot{Row: 0, Col: 3, Dir: puzzle.Across, Length: 2}

	s := New(p, []string{"AB", "CD"})
	s.enforceNodeConsistency()
	before := domainSizes(s)
	is.True(!s.revise(a, b)) // non-crossing slots report no revision
	is.Equal(domainSizes(s), before)
}

func TestAC3Soundness(t *testing.T) {
	p := mustPuzzle(t,
		"____",
		"_##_",
		"_##_",
		"____",
	)
	s := New(p, []string{"ABCD", "AEFG", "DHIJ", "GKLJ", "XXXX", "ABCX"})
	s.enforceNodeConsistency()
	if !s.ac3(nil) {
		t.Fatal("ac3 reported failure on a satisfiable puzzle")
	}
	// Every surviving word must have a distinct supporting word in every
	// crossing slot's domain.
	for _, x := range p.Slots() {
		for _, y := range p.Neighbors(x) {
			ov, _ := p.OverlapOf(x, y)
			for _, wx := range s.Domain(x) {
				found := false
				for _, wy := range s.Domain(y) {
					if wx != wy && []rune(wx)[ov.A] == []rune(wy)[ov.B] {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("word %q in %s has no support in %s", wx, x, y)
				}
			}
		}
	}
}

func TestAC3DetectsEmptyDomain(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t,
		"___",
		"#_#",
		"#_#",
	)
	s := New(p, []string{"DOG", "CAT"})
	s.enforceNodeConsistency()
	is.True(!s.ac3(nil)) // no letter agreement is possible at the crossing
}

func TestReviseMonotonic(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t,
		"____",
		"_##_",
		"_##_",
		"____",
	)
	s := New(p, []string{"ABCD", "AEFG", "DHIJ", "GKLJ", "XXXX", "YYYY"})
	s.enforceNodeConsistency()

	// Repeated revisions over all arcs may only shrink the store.
	prev := domainSizes(s)
	for i := 0; i < 3; i++ {
		for _, x := range p.Slots() {
			for _, y := range p.Neighbors(x) {
				s.revise(x, y)
				cur := domainSizes(s)
				is.True(cur <= prev)
				prev = cur
			}
		}
	}
}
