package puzzle

import "fmt"

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Slot is a single variable of the fill problem: a maximal run of open
// cells in one direction, needing exactly one word of the matching length.
// Slots are value types and are used as map keys throughout the solver, so
// equality is structural over all four fields.
type Slot struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d %s %d)", s.Row, s.Col, s.Dir, s.Length)
}

// Cell returns the grid coordinates of the i-th letter of this slot.
func (s Slot) Cell(i int) (int, int) {
	if s.Dir == Across {
		return s.Row, s.Col + i
	}
	return s.Row + i, s.Col
}

// An Overlap records the shared cell between two crossing slots as a pair
// of zero-based letter offsets: any valid fill must place the same letter
// at position A of the first slot and position B of the second.
type Overlap struct {
	A int
	B int
}

// flip returns the overlap as seen from the other slot's point of view.
func (o Overlap) flip() Overlap {
	return Overlap{A: o.B, B: o.A}
}
