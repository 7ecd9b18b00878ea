package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

func TestImage(t *testing.T) {
	const cell = 20
	p := plusPuzzle(t)
	img := Image(p, plusAssignment(), cell)

	assert.Equal(t, 3*cell, img.Bounds().Dx())
	assert.Equal(t, 3*cell, img.Bounds().Dy())

	// Blocked cell stays black; open cell interiors are painted white.
	assert.True(t, isBlack(img.At(cell/2, cell/2)), "block cell")
	assert.True(t, isWhite(img.At(cellBorder+1, cell+cellBorder+1)), "open cell corner")

	// A lettered cell must have ink somewhere near its center.
	inked := false
	for x := cell + cell/4; x < 2*cell-cell/4; x++ {
		for y := cell/4; y < cell-cell/4; y++ {
			if !isWhite(img.At(x, y)) {
				inked = true
			}
		}
	}
	assert.True(t, inked, "letter cell has no glyph pixels")
}

func TestWritePNGRoundTrip(t *testing.T) {
	p := plusPuzzle(t)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, p, plusAssignment(), 10))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 30, decoded.Bounds().Dx())
	assert.Equal(t, 30, decoded.Bounds().Dy())
}
