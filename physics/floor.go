package physics

import (
	"github.com/TFMV/ropesim/models"
)

// DefaultFloorY is the height below which falling points are discarded.
const DefaultFloorY = -20.0

// FloorCull removes points that have fallen below Y, together with every
// link attached to them.
type FloorCull struct {
	Y float64

	removed int
}

// NewFloorCull creates a floor check at height y.
func NewFloorCull(y float64) *FloorCull {
	return &FloorCull{Y: y}
}

// Name returns the phase name.
func (f *FloorCull) Name() string {
	return "floor"
}

// Step removes every point below the floor.
func (f *FloorCull) Step(g *models.Graph, _ float64) {
	f.removed = 0
	for i := len(g.Points) - 1; i >= 0; i-- {
		if g.Points[i].Position.Y >= f.Y {
			continue
		}
		if _, err := g.RemovePoint(i); err == nil {
			f.removed++
		}
	}
}

// Removed returns how many points the last Step discarded.
func (f *FloorCull) Removed() int {
	return f.removed
}
