// Package solver fills a crossword puzzle from a vocabulary. It is a
// constraint-satisfaction solver: slots are the variables, candidate words
// the domains, and the constraints are length (unary), letter agreement at
// crossings (binary), and all-different across the whole fill (global).
//
// Solving runs in three stages: node consistency strips wrong-length
// words, AC-3 propagates the crossing constraints to a fixed point, and
// backtracking search extends a partial assignment slot by slot, checking
// full consistency at every step. Propagation runs once up front; the
// search itself never mutates the domain store.
package solver

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arbelos/crossfill/puzzle"
)

// ErrNoSolution reports that no assignment satisfies the puzzle. It is an
// expected outcome of solving, not a fault; callers match it with
// errors.Is and treat it as a normal result.
var ErrNoSolution = errors.New("no solution")

// Stats describes the work a call to Solve performed.
type Stats struct {
	// States counts tentative slot assignments tried during search.
	States int
	// Backtracks counts tentative assignments undone.
	Backtracks int
	// Revisions counts revise calls made by AC-3.
	Revisions int
	// Removed counts words deleted from domains by AC-3.
	Removed int
	// Duration is the wall time of the whole solve.
	Duration time.Duration
}

// A Solver holds the domain store for one puzzle/vocabulary pair. It is
// single-use: Solve consumes the domains and must only be called once per
// Solver. Everything runs on the calling goroutine.
type Solver struct {
	puz     *puzzle.Puzzle
	domains domains
	letters map[string][]rune
	stats   Stats
}

// New creates a solver with every slot's domain initialized to the full
// vocabulary. Words are assumed normalized (see the wordlist package).
func New(p *puzzle.Puzzle, words []string) *Solver {
	letters := make(map[string][]rune, len(words))
	for _, w := range words {
		letters[w] = []rune(w)
	}
	return &Solver{
		puz:     p,
		domains: newDomains(p.Slots(), words),
		letters: letters,
	}
}

// Solve enforces node and arc consistency, then searches. It returns a
// complete assignment, or ErrNoSolution if the puzzle cannot be filled
// from the vocabulary. An empty domain after propagation short-circuits
// the search entirely.
func (s *Solver) Solve() (Assignment, Stats, error) {
	start := time.Now()
	s.stats = Stats{}

	s.enforceNodeConsistency()
	if s.domains.anyEmpty() {
		s.stats.Duration = time.Since(start)
		log.Debug().Msg("domain emptied by node consistency")
		return nil, s.stats, ErrNoSolution
	}
	if !s.ac3(nil) {
		s.stats.Duration = time.Since(start)
		return nil, s.stats, ErrNoSolution
	}

	a := s.backtrack(Assignment{})
	s.stats.Duration = time.Since(start)
	if a == nil {
		log.Info().Int("states", s.stats.States).Dur("took", s.stats.Duration).
			Msg("search exhausted")
		return nil, s.stats, ErrNoSolution
	}
	log.Info().Int("states", s.stats.States).Int("backtracks", s.stats.Backtracks).
		Dur("took", s.stats.Duration).Msg("solved")
	return a, s.stats, nil
}

// Domain returns a sorted copy of a slot's current candidates. Useful for
// inspecting propagation results.
func (s *Solver) Domain(slot puzzle.Slot) []string {
	return s.domains.words(slot)
}

// wordLetters returns the rune form of w, cached for vocabulary words.
func (s *Solver) wordLetters(w string) []rune {
	if l, ok := s.letters[w]; ok {
		return l
	}
	return []rune(w)
}
