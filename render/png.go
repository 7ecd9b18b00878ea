package render

import (
	"fmt"
	"image"
	stddraw "image/draw"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/arbelos/crossfill/puzzle"
	"github.com/arbelos/crossfill/solver"
)

// DefaultCellSize is the rendered size of one grid cell, in pixels.
const DefaultCellSize = 100

const cellBorder = 2

// Image draws the filled grid: a black canvas with white cell interiors
// and black letters. cellSize <= 0 falls back to DefaultCellSize.
func Image(p *puzzle.Puzzle, a solver.Assignment, cellSize int) *image.RGBA {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	img := image.NewRGBA(image.Rect(0, 0, p.Width()*cellSize, p.Height()*cellSize))
	stddraw.Draw(img, img.Bounds(), image.Black, image.Point{}, stddraw.Src)

	letters := Letters(p, a)
	for r := 0; r < p.Height(); r++ {
		for c := 0; c < p.Width(); c++ {
			if !p.OpenAt(r, c) {
				continue
			}
			cell := image.Rect(
				c*cellSize+cellBorder, r*cellSize+cellBorder,
				(c+1)*cellSize-cellBorder, (r+1)*cellSize-cellBorder,
			)
			stddraw.Draw(img, cell, image.White, image.Point{}, stddraw.Src)
			if ch := letters[r][c]; ch != 0 {
				drawLetter(img, cell, ch, cellSize)
			}
		}
	}
	return img
}

// drawLetter rasterizes ch with the basic bitmap face and scales it into
// the middle of the cell, keeping the glyph's aspect ratio.
func drawLetter(dst *image.RGBA, cell image.Rectangle, ch rune, cellSize int) {
	glyph := renderGlyph(ch)
	gb := glyph.Bounds()
	if gb.Dx() == 0 || gb.Dy() == 0 {
		return
	}
	th := cellSize * 3 / 5
	tw := th * gb.Dx() / gb.Dy()
	cx := (cell.Min.X + cell.Max.X) / 2
	cy := (cell.Min.Y + cell.Max.Y) / 2
	box := image.Rect(cx-tw/2, cy-th/2, cx+tw/2+tw%2, cy+th/2+th%2)
	xdraw.NearestNeighbor.Scale(dst, box, glyph, gb, xdraw.Over, nil)
}

func renderGlyph(ch rune) *image.RGBA {
	face := basicfont.Face7x13
	w := font.MeasureString(face, string(ch)).Ceil()
	m := face.Metrics()
	h := m.Height.Ceil()
	if w <= 0 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(string(ch))
	return img
}

// WritePNG encodes the rendered grid as a PNG.
func WritePNG(w io.Writer, p *puzzle.Puzzle, a solver.Assignment, cellSize int) error {
	if err := png.Encode(w, Image(p, a, cellSize)); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered grid to a file.
func SavePNG(path string, p *puzzle.Puzzle, a solver.Assignment, cellSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer f.Close()
	if err := WritePNG(f, p, a, cellSize); err != nil {
		return err
	}
	return f.Close()
}
