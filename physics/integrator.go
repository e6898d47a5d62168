package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/geom"
	"github.com/TFMV/ropesim/models"
)

// Integrator advances every unlocked point with position Verlet
// integration under constant gravity and an optional wind field.
type Integrator struct {
	Gravity float64
	Wind    *Wind
}

// NewIntegrator creates an integrator with the given gravity.
func NewIntegrator(gravity float64, wind *Wind) *Integrator {
	return &Integrator{Gravity: gravity, Wind: wind}
}

// Name returns the phase name.
func (in *Integrator) Name() string {
	return "integrate"
}

// Step moves each unlocked point by its implied velocity plus the
// acceleration term. Locked points keep both positions untouched.
func (in *Integrator) Step(g *models.Graph, dt float64) {
	dt2 := dt * dt
	gravity := r2.Scale(in.Gravity*dt2, geom.Down)

	for _, p := range g.Points {
		if p.Locked {
			continue
		}

		velocity := r2.Sub(p.Position, p.PrevPosition)
		p.PrevPosition = p.Position
		p.Position = r2.Add(p.Position, r2.Add(velocity, gravity))

		if in.Wind.Enabled() {
			p.Position = r2.Add(p.Position, r2.Scale(dt2, in.Wind.Acceleration(p.PrevPosition)))
		}
	}

	in.Wind.Advance(dt)
}
