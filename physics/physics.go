// Package physics advances a point/link graph through time: Verlet
// integration under gravity, iterative link-length relaxation and the
// floor boundary check.
package physics

import (
	"github.com/TFMV/ropesim/models"
)

// Phase is one stage of a simulated frame.
type Phase interface {
	Name() string
	Step(g *models.Graph, dt float64)
}

// Pipeline runs its phases in order, once per frame.
type Pipeline struct {
	phases []Phase
}

// NewPipeline creates a pipeline from the given phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{phases: phases}
}

// Step advances g by one frame of length dt.
func (p *Pipeline) Step(g *models.Graph, dt float64) {
	for _, phase := range p.phases {
		phase.Step(g, dt)
	}
}

// Phases returns the phase names in execution order.
func (p *Pipeline) Phases() []string {
	names := make([]string, len(p.phases))
	for i, phase := range p.phases {
		names[i] = phase.Name()
	}
	return names
}
