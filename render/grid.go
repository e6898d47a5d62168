package render

import (
	"strings"

	"github.com/TFMV/ropesim/sim"
)

// Glyphs used for each kind of cell.
const (
	GlyphEmpty   = ' '
	GlyphLink    = '·'
	GlyphPreview = '+'
	GlyphPoint   = 'O'
	GlyphLocked  = '#'
)

// Kind says what occupies a cell, so front ends can style it.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindLink
	KindPreview
	KindPoint
	KindLocked
)

// Cell is one character of a rasterized frame.
type Cell struct {
	Rune rune
	Kind Kind
}

// Grid is a row-major block of cells.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewGrid creates a blank grid.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for i := range g.Cells {
		g.Cells[i] = Cell{Rune: GlyphEmpty}
	}
	return g
}

// At returns the cell at col, row. Out of range cells read as empty.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return Cell{Rune: GlyphEmpty}
	}
	return g.Cells[row*g.Width+col]
}

// Set writes a cell, ignoring positions outside the grid.
func (g *Grid) Set(col, row int, c Cell) {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return
	}
	g.Cells[row*g.Width+col] = c
}

// Lines returns the grid as one string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.Height)
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		b.Reset()
		for col := 0; col < g.Width; col++ {
			b.WriteRune(g.Cells[row*g.Width+col].Rune)
		}
		lines[row] = b.String()
	}
	return lines
}

// Rasterize draws a snapshot into a grid the size of the viewport. Live
// links are drawn first, then the link preview, then points on top. Dead
// links are not drawn.
func Rasterize(snap sim.Snapshot, vp Viewport) *Grid {
	grid := NewGrid(vp.Width, vp.Height)

	for _, l := range snap.Links {
		if l.Dead {
			continue
		}
		x1, y1 := vp.ToCell(l.A)
		x2, y2 := vp.ToCell(l.B)
		drawLine(grid, x1, y1, x2, y2, Cell{Rune: GlyphLink, Kind: KindLink})
	}

	if snap.Preview != nil {
		x1, y1 := vp.ToCell(snap.Preview.From)
		x2, y2 := vp.ToCell(snap.Preview.To)
		drawLine(grid, x1, y1, x2, y2, Cell{Rune: GlyphPreview, Kind: KindPreview})
	}

	for _, p := range snap.Points {
		x, y := vp.ToCell(p.Position)
		c := Cell{Rune: GlyphPoint, Kind: KindPoint}
		if p.Locked {
			c = Cell{Rune: GlyphLocked, Kind: KindLocked}
		}
		grid.Set(x, y, c)
	}

	return grid
}

// Draw a line on the grid using Bresenham's algorithm
func drawLine(grid *Grid, x1, y1, x2, y2 int, c Cell) {
	// Both ends past the same edge: nothing to draw.
	if (x1 < 0 && x2 < 0) || (y1 < 0 && y2 < 0) ||
		(x1 >= grid.Width && x2 >= grid.Width) || (y1 >= grid.Height && y2 >= grid.Height) {
		return
	}

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx + dy

	for {
		// Don't overwrite point glyphs
		if k := grid.At(x1, y1).Kind; k != KindPoint && k != KindLocked {
			grid.Set(x1, y1, c)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 >= dy {
			if x1 == x2 {
				break
			}
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			if y1 == y2 {
				break
			}
			err += dx
			y1 += sy
		}
	}
}

// Absolute value of an integer
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
