// Package sim ties the graph, editor and physics pipeline into a
// frame-driven sandbox: each frame consumes one input snapshot, and if the
// simulation is running integrates, relaxes and culls the scene.
package sim

import (
	"io"
	"log"

	"github.com/TFMV/ropesim/config"
	"github.com/TFMV/ropesim/editor"
	"github.com/TFMV/ropesim/models"
	"github.com/TFMV/ropesim/physics"
)

// Sandbox owns the single graph instance and everything that edits or
// advances it. It is not safe for concurrent use.
type Sandbox struct {
	cfg    *config.Config
	logger *log.Logger

	graph      *models.Graph
	editor     *editor.Editor
	integrator *physics.Integrator
	solver     *physics.Solver
	floor      *physics.FloorCull
	pipeline   *physics.Pipeline

	frames uint64
}

// New creates an empty sandbox. A nil logger discards all output.
func New(cfg *config.Config, logger *log.Logger) *Sandbox {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var wind *physics.Wind
	if cfg.WindStrength != 0 {
		wind = physics.NewWind(cfg.Seed, cfg.WindStrength, cfg.WindScale, cfg.WindSpeed)
	}

	s := &Sandbox{
		cfg:        cfg,
		logger:     logger,
		graph:      models.NewGraph(),
		editor:     editor.New(cfg.PointRadius),
		integrator: physics.NewIntegrator(cfg.Gravity, wind),
		solver:     physics.NewSolver(cfg.SolveIterations, cfg.ConstrainMinLength, cfg.Seed),
		floor:      physics.NewFloorCull(cfg.FloorY),
	}
	s.pipeline = physics.NewPipeline(s.integrator, s.solver, s.floor)
	s.syncOrder()
	return s
}

// Graph returns the scene graph.
func (s *Sandbox) Graph() *models.Graph { return s.graph }

// Editor returns the input state machine.
func (s *Sandbox) Editor() *editor.Editor { return s.editor }

// Order returns the current relaxation order.
func (s *Sandbox) Order() *physics.Order { return s.solver.Order() }

// Running reports whether frames advance the simulation.
func (s *Sandbox) Running() bool { return s.editor.Running() }

// SetRunning starts or pauses the simulation.
func (s *Sandbox) SetRunning(running bool) { s.editor.SetRunning(running) }

// Frames returns how many frames have been processed.
func (s *Sandbox) Frames() uint64 { return s.frames }

// Frame processes one frame: input first, then, while running, the
// integrate, constrain and floor phases.
func (s *Sandbox) Frame(in editor.Input, dt float64) editor.Result {
	s.frames++

	res := s.editor.Update(s.graph, in)
	if res.Toggled {
		s.logger.Printf("frame %d: running=%v", s.frames, s.editor.Running())
	}
	if res.Cut > 0 {
		s.logger.Printf("frame %d: cut %d links", s.frames, res.Cut)
	}
	s.syncOrder()

	if s.editor.Running() {
		s.pipeline.Step(s.graph, dt)
		if n := s.floor.Removed(); n > 0 {
			s.logger.Printf("frame %d: %d points fell below %.1f", s.frames, n, s.floor.Y)
		}
	}
	return res
}

// syncOrder rebuilds the relaxation order after a topology change. Dead
// links are compacted away only at this point so the order never indexes
// a shifted slot.
func (s *Sandbox) syncOrder() {
	order := s.solver.Order()
	if !order.Stale(s.graph) {
		return
	}
	if s.cfg.CompactDeadLinks {
		if n := s.graph.CompactDeadLinks(); n > 0 {
			s.logger.Printf("compacted %d dead links", n)
		}
	}
	order.Sync(s.graph)
	s.logger.Printf("relaxation order rebuilt for %d links", order.Len())
}
