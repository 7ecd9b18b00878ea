// Package render projects a solved assignment back onto the grid, for the
// terminal or for a PNG. It reads the puzzle and assignment and never
// touches solver state.
package render

import (
	"strings"

	"github.com/arbelos/crossfill/puzzle"
	"github.com/arbelos/crossfill/solver"
)

// Block is the rune used for non-fillable cells in terminal output.
const Block = '█'

// Letters projects an assignment to a height×width rune grid. Cells not
// covered by any assigned slot hold the zero rune.
func Letters(p *puzzle.Puzzle, a solver.Assignment) [][]rune {
	grid := make([][]rune, p.Height())
	for r := range grid {
		grid[r] = make([]rune, p.Width())
	}
	for slot, word := range a {
		for i, ch := range []rune(word) {
			r, c := slot.Cell(i)
			grid[r][c] = ch
		}
	}
	return grid
}

// Text renders the filled grid for a terminal: letters in open cells,
// solid blocks elsewhere, one line per row.
func Text(p *puzzle.Puzzle, a solver.Assignment) string {
	letters := Letters(p, a)
	var sb strings.Builder
	for r := 0; r < p.Height(); r++ {
		for c := 0; c < p.Width(); c++ {
			switch {
			case !p.OpenAt(r, c):
				sb.WriteRune(Block)
			case letters[r][c] != 0:
				sb.WriteRune(letters[r][c])
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
