package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CellAspect is how many times taller a terminal cell is than it is wide.
const CellAspect = 2.0

// maxCoord bounds projected cell coordinates so far-away points cannot
// overflow the float to int conversion.
const maxCoord = 1 << 20

// Viewport maps world coordinates (y up) onto a grid of cells (row 0 at
// the top).
type Viewport struct {
	Center r2.Vec
	Zoom   float64 // columns per world unit
	Width  int
	Height int
}

// ToCell returns the column and row containing world point p. The result
// may lie outside the viewport.
func (v Viewport) ToCell(p r2.Vec) (int, int) {
	col := float64(v.Width)/2 + (p.X-v.Center.X)*v.Zoom
	row := float64(v.Height)/2 - (p.Y-v.Center.Y)*v.Zoom/CellAspect
	return int(clampf(math.Floor(col))), int(clampf(math.Floor(row)))
}

// ToWorld returns the world position at the centre of a cell.
func (v Viewport) ToWorld(col, row int) r2.Vec {
	return r2.Vec{
		X: v.Center.X + (float64(col)+0.5-float64(v.Width)/2)/v.Zoom,
		Y: v.Center.Y + (float64(v.Height)/2-float64(row)-0.5)*CellAspect/v.Zoom,
	}
}

// Contains reports whether the cell lies inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}

func clampf(f float64) float64 {
	return math.Max(-maxCoord, math.Min(maxCoord, f))
}
