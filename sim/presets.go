package sim

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/config"
)

type presetPoint struct {
	X, Y   float64
	Locked bool
}

// preset is a fixed scene. Scenes with chain set get one link between
// every consecutive pair of points instead of explicit links.
type preset struct {
	name   string
	points []presetPoint
	links  [][2]int
	chain  bool
}

var presets = [config.PresetCount]preset{
	{
		name: "pendulum",
		points: []presetPoint{
			{0, 1, true},
			{0.1, 3, false},
			{0.2, 5, false},
		},
		chain: true,
	},
	{
		name: "swing",
		points: []presetPoint{
			{0, 5, true},
			{-0.3, 4, false},
			{-0.8, 3.2, false},
			{-1.5, 2.5, false},
			{-2.5, 2, false},
			{-3.7, 1.7, false},
		},
		chain: true,
	},
	{
		name: "bridge with weight",
		points: []presetPoint{
			{-4, 5, true},
			{-2.7, 4, false},
			{-1.3, 3.5, false},
			{0, 3.2, false},
			{1.3, 3.5, false},
			{2.7, 4, false},
			{4, 5, true},
			{-1, 1, false},
		},
		links: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {3, 7}},
	},
	{
		name: "kite",
		points: []presetPoint{
			{0, 5, true},
			{-1, 5, false},
			{-2, 5, false},
			{-2.5, 5.5, false},
			{-3, 5, false},
			{-2.5, 4.5, false},
		},
		links: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 2}, {5, 3}},
	},
	{
		name: "three ropes",
		points: []presetPoint{
			{4.5, 5, true},
			{3, 3.5, false},
			{0, 5, true},
			{-1.5, 3.5, false},
			{-3, 2, false},
			{-4.5, 5, true},
			{-6, 3.5, false},
			{-7.5, 2, false},
			{-9, 0.5, false},
		},
		links: [][2]int{{0, 1}, {2, 3}, {3, 4}, {5, 6}, {6, 7}, {7, 8}},
	},
	{
		name: "hanging bridge",
		points: []presetPoint{
			{-4, 2, true},
			{-2.7, 1, false},
			{-1.3, 0.5, false},
			{0, 0.2, false},
			{1.3, 0.5, false},
			{2.7, 1, false},
			{4, 2, true},
			{0, 2.2, true},
			{-2, 3.5, true},
			{2, 3.5, true},
		},
		links: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}},
	},
}

// Presets returns the names of the built-in scenes in order.
func Presets() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// LoadPreset replaces the scene with built-in scene n (1-based).
func (s *Sandbox) LoadPreset(n int) error {
	if n < 1 || n > len(presets) {
		return fmt.Errorf("unknown preset %d (have 1-%d)", n, len(presets))
	}
	p := presets[n-1]

	s.graph.Clear()
	s.editor.Reset()
	for _, pt := range p.points {
		s.graph.AddPoint(r2.Vec{X: pt.X, Y: pt.Y}, pt.Locked)
	}
	for _, l := range p.links {
		if _, err := s.graph.AddLinkByIndex(l[0], l[1]); err != nil {
			return fmt.Errorf("preset %d: %w", n, err)
		}
	}
	s.editor.AutoChain = p.chain
	s.syncOrder()

	s.logger.Printf("loaded preset %d (%s): %d points, %d links", n, p.name, len(s.graph.Points), len(s.graph.Links))
	return nil
}

func (s *Sandbox) mustLoad(n int) {
	if err := s.LoadPreset(n); err != nil {
		s.logger.Printf("preset %d: %v", n, err)
	}
}

// Preset1 loads a three-point pendulum hanging from a locked point.
func (s *Sandbox) Preset1() { s.mustLoad(1) }

// Preset2 loads a six-point rope swinging from a locked point.
func (s *Sandbox) Preset2() { s.mustLoad(2) }

// Preset3 loads a bridge between two locked points with a hanging weight.
func (s *Sandbox) Preset3() { s.mustLoad(3) }

// Preset4 loads a braced kite shape on a tether.
func (s *Sandbox) Preset4() { s.mustLoad(4) }

// Preset5 loads three ropes of increasing length.
func (s *Sandbox) Preset5() { s.mustLoad(5) }

// Preset6 loads a sagging bridge below a row of locked pegs.
func (s *Sandbox) Preset6() { s.mustLoad(6) }
