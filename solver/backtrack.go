package solver

import (
	"sort"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/arbelos/crossfill/puzzle"
)

// An Assignment maps slots to the words filled into them. It is partial
// during search and complete in a returned solution. The search engine
// owns it exclusively; a tentative entry is inserted before recursing and
// deleted again when the branch fails.
type Assignment map[puzzle.Slot]string

// backtrack is depth-first search over partial assignments. It returns a
// complete assignment or nil if no candidate for the selected slot leads
// anywhere. Running out of candidates is ordinary control flow, not an
// error.
func (s *Solver) backtrack(a Assignment) Assignment {
	if len(a) == len(s.puz.Slots()) {
		return a
	}
	slot := s.selectSlot(a)
	for _, w := range s.orderValues(slot, a) {
		s.stats.States++
		a[slot] = w
		if s.consistent(a) {
			if result := s.backtrack(a); result != nil {
				return result
			}
		}
		delete(a, slot)
		s.stats.Backtracks++
	}
	return nil
}

// consistent verifies a partial assignment exactly: pairwise-distinct
// words, correct length per slot, and letter agreement at every crossing.
// This is where the global all-different constraint is enforced for real;
// revise only approximates it.
func (s *Solver) consistent(a Assignment) bool {
	seen := make(map[string]struct{}, len(a))
	for slot, w := range a {
		if len(s.wordLetters(w)) != slot.Length {
			return false
		}
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}
	}
	for slot, w := range a {
		for _, n := range s.puz.Neighbors(slot) {
			wn, ok := a[n]
			if !ok {
				continue
			}
			ov, _ := s.puz.OverlapOf(slot, n)
			if s.wordLetters(w)[ov.A] != s.wordLetters(wn)[ov.B] {
				return false
			}
		}
	}
	return true
}

// selectSlot picks the next slot to fill: fewest remaining candidates
// first (MRV), ties broken by most crossings (degree). Slots still tied
// after both criteria are equivalent, so one is picked at random; distinct
// runs can then discover distinct valid fills.
func (s *Solver) selectSlot(a Assignment) puzzle.Slot {
	var best []puzzle.Slot
	bestSize, bestDeg := -1, -1
	for _, slot := range s.puz.Slots() {
		if _, done := a[slot]; done {
			continue
		}
		size := len(s.domains[slot])
		deg := len(s.puz.Neighbors(slot))
		switch {
		case bestSize == -1 || size < bestSize || (size == bestSize && deg > bestDeg):
			best = append(best[:0], slot)
			bestSize, bestDeg = size, deg
		case size == bestSize && deg == bestDeg:
			best = append(best, slot)
		}
	}
	if len(best) == 1 {
		return best[0]
	}
	return best[frand.Intn(len(best))]
}

// orderValues returns the slot's candidates least-constraining first: by
// how many words the candidate would eliminate from unassigned crossing
// slots, counting both overlap mismatches and the candidate itself (which
// all-different rules out everywhere). Equal counts keep lexicographic
// order, so the ordering is stable. The heuristic affects search order
// only, never correctness.
func (s *Solver) orderValues(x puzzle.Slot, a Assignment) []string {
	words := s.domains.words(x)
	if len(words) < 2 {
		return words
	}
	cost := make(map[string]int, len(words))
	for _, w := range words {
		cost[w] = s.eliminated(x, w, a)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return cost[words[i]] < cost[words[j]]
	})
	return words
}

func (s *Solver) eliminated(x puzzle.Slot, w string, a Assignment) int {
	lw := s.letters[w]
	total := 0
	for _, y := range s.puz.Neighbors(x) {
		if _, done := a[y]; done {
			continue
		}
		ov, _ := s.puz.OverlapOf(x, y)
		total += lo.CountBy(lo.Keys(s.domains[y]), func(wy string) bool {
			return wy == w || s.letters[wy][ov.B] != lw[ov.A]
		})
	}
	return total
}
