package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/arbelos/crossfill/puzzle"
)

type arc struct {
	x, y puzzle.Slot
}

// enforceNodeConsistency applies the unary constraint: a slot can only
// hold words of its own length. A single pass with no ordering dependency
// between slots; it cannot fail, though it may leave a domain empty if
// the vocabulary has no word of some slot's length.
func (s *Solver) enforceNodeConsistency() {
	removed := 0
	for slot, set := range s.domains {
		for w := range set {
			if len(s.letters[w]) != slot.Length {
				delete(set, w)
				removed++
			}
		}
	}
	log.Debug().Int("removed", removed).Msg("node consistency")
}

// revise tightens x's domain against y's. A word wx survives only if some
// wy in y's domain is a different word whose letter at the shared cell
// matches. The wx != wy test prunes self-support early; it is not the
// global all-different check, which consistent() re-verifies exactly
// during search. If x and y do not cross, nothing changes and no revision
// is reported.
func (s *Solver) revise(x, y puzzle.Slot) bool {
	ov, ok := s.puz.OverlapOf(x, y)
	if !ok {
		return false
	}
	var drop []string
	for wx := range s.domains[x] {
		if !s.supported(wx, ov, y) {
			drop = append(drop, wx)
		}
	}
	for _, wx := range drop {
		s.domains.remove(x, wx)
	}
	s.stats.Revisions++
	s.stats.Removed += len(drop)
	return len(drop) > 0
}

func (s *Solver) supported(wx string, ov puzzle.Overlap, y puzzle.Slot) bool {
	lx := s.letters[wx]
	for wy := range s.domains[y] {
		if wx == wy {
			continue
		}
		if lx[ov.A] == s.letters[wy][ov.B] {
			return true
		}
	}
	return false
}

// ac3 runs the AC-3 queue algorithm. With a nil queue it starts from every
// ordered pair of crossing slots, both directions. Whenever a revision
// shrinks x, every arc (z, x) for crossing z other than y is re-enqueued,
// since z's support may have just disappeared. Terminates because every
// productive revise removes at least one word and domains are finite.
// Returns false if any domain ends up empty: the puzzle is unsatisfiable
// under the binary constraints alone and search must not be attempted.
func (s *Solver) ac3(queue []arc) bool {
	if queue == nil {
		for _, x := range s.puz.Slots() {
			for _, y := range s.puz.Neighbors(x) {
				queue = append(queue, arc{x, y})
			}
		}
	}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if s.revise(a.x, a.y) {
			for _, z := range s.puz.Neighbors(a.x) {
				if z != a.y {
					queue = append(queue, arc{z, a.x})
				}
			}
		}
	}
	ok := !s.domains.anyEmpty()
	log.Debug().Int("revisions", s.stats.Revisions).Int("removed", s.stats.Removed).
		Bool("consistent", ok).Msg("arc consistency")
	return ok
}
