// Package render draws a grid through a minimal canvas abstraction so the
// same routine serves any windowing backend.
package render

import (
	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/palette"
)

// Canvas is the drawing surface a window backend provides.
type Canvas interface {
	ClearToBackground()
	SetDrawColor(r, g, b, a uint8)
	FillRectangle(x, y, w, h int)
	Present()
}

// DrawGrid fills one cellSize square per cell of the current generation,
// colored from the palette.
func DrawGrid(c Canvas, g *grid.Grid, pal palette.Palette, cellSize int) {
	g.Read(func(b grid.Buffer) {
		DrawBuffer(c, b, pal, cellSize)
	})
}

// DrawBuffer fills one cellSize square per cell of b.
func DrawBuffer(c Canvas, b grid.Buffer, pal palette.Palette, cellSize int) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c.SetDrawColor(pal.Lookup(int(b.At(x, y))).RGBA())
			c.FillRectangle(x*cellSize, y*cellSize, cellSize, cellSize)
		}
	}
}

// Frame clears the canvas, draws the grid and presents it.
func Frame(c Canvas, g *grid.Grid, pal palette.Palette, cellSize int) {
	c.ClearToBackground()
	DrawGrid(c, g, pal, cellSize)
	c.Present()
}
