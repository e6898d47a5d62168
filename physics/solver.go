package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/geom"
	"github.com/TFMV/ropesim/models"
)

// DefaultIterations is the number of relaxation sweeps per frame.
const DefaultIterations = 5

// Solver relaxes link lengths toward their rest lengths by repositioning
// endpoints about the link midpoint.
//
// With ConstrainMinLength set every live link is snapped to its rest length
// each sweep. Otherwise links are only pulled in when stretched, so they
// behave like ropes that can go slack.
type Solver struct {
	Iterations         int
	ConstrainMinLength bool

	order *Order
}

// NewSolver creates a solver that shuffles its relaxation order with seed.
func NewSolver(iterations int, constrainMinLength bool, seed int64) *Solver {
	return &Solver{
		Iterations:         iterations,
		ConstrainMinLength: constrainMinLength,
		order:              NewOrder(seed),
	}
}

// Name returns the phase name.
func (s *Solver) Name() string {
	return "constrain"
}

// Order returns the relaxation order the solver sweeps in.
func (s *Solver) Order() *Order {
	return s.order
}

// Step runs Iterations sweeps over the live links in relaxation order.
func (s *Solver) Step(g *models.Graph, _ float64) {
	s.order.Sync(g)
	if len(g.Links) == 0 {
		return
	}

	members := make(map[*models.Point]struct{}, len(g.Points))
	for _, p := range g.Points {
		members[p] = struct{}{}
	}

	for i := 0; i < s.Iterations; i++ {
		for _, idx := range s.order.Indices() {
			if idx < 0 || idx >= len(g.Links) {
				continue
			}
			s.relax(g.Links[idx], members)
		}
	}
}

// relax skips links with an endpoint outside members.
func (s *Solver) relax(l *models.Link, members map[*models.Point]struct{}) {
	if l.Dead() {
		return
	}
	a, b := l.A(), l.B()
	if _, ok := members[a]; !ok {
		return
	}
	if _, ok := members[b]; !ok {
		return
	}

	centre := geom.Midpoint(a.Position, b.Position)
	dir, length := geom.Direction(a.Position, b.Position)
	if !s.ConstrainMinLength && length <= l.Length() {
		return
	}

	half := r2.Scale(l.Length()/2, dir)
	if !a.Locked {
		a.Position = r2.Add(centre, half)
	}
	if !b.Locked {
		b.Position = r2.Sub(centre, half)
	}
}
