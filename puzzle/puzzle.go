// Package puzzle models the immutable structure of a crossword grid: which
// cells are open, the slots (variables) derived from maximal runs of open
// cells, and the overlap table recording the shared-letter constraint
// between every pair of crossing slots.
package puzzle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

type slotPair struct {
	a, b Slot
}

// A Puzzle is the static description of a grid. It is built once by New
// (or one of the parse helpers) and never mutated afterwards; the solver
// only reads from it.
type Puzzle struct {
	width  int
	height int
	open   [][]bool

	slots     []Slot
	overlaps  map[slotPair]Overlap
	neighbors map[Slot][]Slot
}

// New builds a Puzzle from a fillability grid; open[r][c] is true if the
// cell at row r, column c takes a letter. The grid must be rectangular,
// non-empty, and contain at least one open cell.
func New(open [][]bool) (*Puzzle, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, errors.New("puzzle: empty grid")
	}
	w := len(open[0])
	anyOpen := false
	for r, row := range open {
		if len(row) != w {
			return nil, fmt.Errorf("puzzle: ragged grid: row %d has %d cells, want %d", r, len(row), w)
		}
		for _, o := range row {
			anyOpen = anyOpen || o
		}
	}
	if !anyOpen {
		return nil, errors.New("puzzle: grid has no open cells")
	}

	p := &Puzzle{
		width:  w,
		height: len(open),
		open:   open,
	}
	p.slots = deriveSlots(open)
	p.computeOverlaps()
	if err := p.validate(); err != nil {
		return nil, err
	}
	log.Debug().Int("width", p.width).Int("height", p.height).
		Int("slots", len(p.slots)).Msg("built puzzle")
	return p, nil
}

// deriveSlots scans the grid for maximal runs of open cells. A run of two
// or more cells becomes a slot in its direction. An isolated open cell
// (no open neighbor either way) would otherwise produce no slot at all,
// so it becomes a single across slot of length 1.
func deriveSlots(open [][]bool) []Slot {
	h := len(open)
	w := len(open[0])
	at := func(r, c int) bool {
		return r >= 0 && r < h && c >= 0 && c < w && open[r][c]
	}
	var slots []Slot
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !open[r][c] {
				continue
			}
			if !at(r, c-1) {
				n := 1
				for at(r, c+n) {
					n++
				}
				if n > 1 {
					slots = append(slots, Slot{Row: r, Col: c, Dir: Across, Length: n})
				}
			}
			if !at(r-1, c) {
				n := 1
				for at(r+n, c) {
					n++
				}
				if n > 1 {
					slots = append(slots, Slot{Row: r, Col: c, Dir: Down, Length: n})
				}
			}
			if !at(r, c-1) && !at(r, c+1) && !at(r-1, c) && !at(r+1, c) {
				slots = append(slots, Slot{Row: r, Col: c, Dir: Across, Length: 1})
			}
		}
	}
	return slots
}

// computeOverlaps fills the overlap and neighbor tables. Two distinct
// maximal runs share at most one cell, and only when their directions
// differ, so the first shared cell found is the only one.
func (p *Puzzle) computeOverlaps() {
	p.overlaps = make(map[slotPair]Overlap)
	p.neighbors = make(map[Slot][]Slot)
	for i, a := range p.slots {
		for _, b := range p.slots[i+1:] {
			ov, ok := crossing(a, b)
			if !ok {
				continue
			}
			p.overlaps[slotPair{a, b}] = ov
			p.overlaps[slotPair{b, a}] = ov.flip()
			p.neighbors[a] = append(p.neighbors[a], b)
			p.neighbors[b] = append(p.neighbors[b], a)
		}
	}
	// Deterministic neighbor order makes solver traces reproducible.
	for _, ns := range p.neighbors {
		sort.Slice(ns, func(i, j int) bool {
			return slotLess(ns[i], ns[j])
		})
	}
}

func slotLess(a, b Slot) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.Dir < b.Dir
}

func crossing(a, b Slot) (Overlap, bool) {
	for i := 0; i < a.Length; i++ {
		ar, ac := a.Cell(i)
		for j := 0; j < b.Length; j++ {
			br, bc := b.Cell(j)
			if ar == br && ac == bc {
				return Overlap{A: i, B: j}, true
			}
		}
	}
	return Overlap{}, false
}

func (p *Puzzle) validate() error {
	for _, s := range p.slots {
		if s.Length <= 0 {
			return fmt.Errorf("puzzle: slot %s has non-positive length", s)
		}
		for i := 0; i < s.Length; i++ {
			r, c := s.Cell(i)
			if r < 0 || r >= p.height || c < 0 || c >= p.width || !p.open[r][c] {
				return fmt.Errorf("puzzle: slot %s covers cell (%d,%d) outside the open grid", s, r, c)
			}
		}
	}
	for pair, ov := range p.overlaps {
		if ov.A < 0 || ov.A >= pair.a.Length || ov.B < 0 || ov.B >= pair.b.Length {
			return fmt.Errorf("puzzle: overlap %v between %s and %s out of range", ov, pair.a, pair.b)
		}
	}
	return nil
}

func (p *Puzzle) Width() int  { return p.width }
func (p *Puzzle) Height() int { return p.height }

// OpenAt reports whether the cell at row r, column c takes a letter.
func (p *Puzzle) OpenAt(r, c int) bool {
	return r >= 0 && r < p.height && c >= 0 && c < p.width && p.open[r][c]
}

// Slots returns the derived variables. Callers must not modify the
// returned slice.
func (p *Puzzle) Slots() []Slot {
	return p.slots
}

// Neighbors returns the slots crossing s, in a stable order. The returned
// slice is shared; callers must not modify it.
func (p *Puzzle) Neighbors(s Slot) []Slot {
	return p.neighbors[s]
}

// OverlapOf returns the shared-letter constraint between a and b, if the
// two slots cross.
func (p *Puzzle) OverlapOf(a, b Slot) (Overlap, bool) {
	ov, ok := p.overlaps[slotPair{a, b}]
	return ov, ok
}
