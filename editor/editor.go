// Package editor turns per-frame user input into graph edits: adding
// points, drawing links, toggling locks, deleting, clearing, chaining and
// cutting links along the pointer's path.
package editor

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/geom"
	"github.com/TFMV/ropesim/models"
)

// DefaultPointRadius is the pick radius used to find the point under the pointer.
const DefaultPointRadius = 0.25

// Input is one frame of user input in world coordinates. The first group
// of flags are edges (true only on the frame the action happened); the
// second group are held states.
type Input struct {
	Pointer r2.Vec
	// OverUI is set when the pointer is over a region owned by the
	// surrounding UI; clicks there never add points.
	OverUI bool

	ToggleRun     bool
	PrimaryDown   bool
	PrimaryUp     bool
	SecondaryDown bool

	Cut    bool
	Delete bool
	Clear  bool
	Chain  bool
}

// Result tallies what one Update changed.
type Result struct {
	Toggled bool
	Added   int
	Linked  int
	Cut     int
	Removed int
	Locked  int
	Cleared bool
	Chained bool
}

// Changed reports whether the update edited the graph.
func (r Result) Changed() bool {
	return r.Added+r.Linked+r.Cut+r.Removed+r.Locked > 0 || r.Cleared || r.Chained
}

// Editor is the input state machine.
//
// Link drawing and cutting are independent: a link can be in progress
// while the cut input is held.
type Editor struct {
	PointRadius float64
	// AutoChain requests a one-shot chain of all points on the next paused
	// update.
	AutoChain bool

	running   bool
	linkStart *models.Point
	cutting   bool
	cutFrom   r2.Vec
	pointer   r2.Vec
}

// New creates an editor with the given pick radius.
func New(pointRadius float64) *Editor {
	if pointRadius <= 0 {
		pointRadius = DefaultPointRadius
	}
	return &Editor{PointRadius: pointRadius}
}

// Running reports whether the simulation is advancing.
func (e *Editor) Running() bool {
	return e.running
}

// SetRunning starts or pauses the simulation.
func (e *Editor) SetRunning(running bool) {
	e.running = running
	if running {
		e.linkStart = nil
	}
}

// Drawing returns the start point of the link being drawn, if any.
func (e *Editor) Drawing() (*models.Point, bool) {
	return e.linkStart, e.linkStart != nil
}

// Pointer returns the pointer position seen by the last Update.
func (e *Editor) Pointer() r2.Vec {
	return e.pointer
}

// Cutting reports whether the cut input is held.
func (e *Editor) Cutting() bool {
	return e.cutting
}

// Reset drops any in-progress link and cut without touching the run state.
func (e *Editor) Reset() {
	e.linkStart = nil
	e.cutting = false
}

// Update applies one frame of input to g.
func (e *Editor) Update(g *models.Graph, in Input) Result {
	var res Result
	e.pointer = in.Pointer

	if in.ToggleRun {
		e.SetRunning(!e.running)
		res.Toggled = true
	}

	res.Cut = e.cut(g, in)

	// No links are added while running; a pending AutoChain waits for
	// the next paused frame.
	if e.running {
		return res
	}

	i := g.PointIndexAt(in.Pointer, e.PointRadius)

	if in.SecondaryDown && i >= 0 {
		g.Points[i].Locked = !g.Points[i].Locked
		res.Locked++
	}

	if in.Delete && i >= 0 {
		if _, err := g.RemovePoint(i); err == nil {
			res.Removed++
		}
		if e.linkStart != nil && !g.Contains(e.linkStart) {
			e.linkStart = nil
		}
		i = g.PointIndexAt(in.Pointer, e.PointRadius)
	}

	if in.Clear {
		g.Clear()
		e.linkStart = nil
		res.Cleared = true
		i = -1
	}

	if in.PrimaryDown {
		if i >= 0 {
			e.linkStart = g.Points[i]
		} else if !in.OverUI {
			g.AddPoint(in.Pointer, false)
			res.Added++
		}
	}

	if in.PrimaryUp {
		if e.linkStart != nil && i >= 0 && g.Points[i] != e.linkStart {
			if _, err := g.AddLink(e.linkStart, g.Points[i]); err == nil {
				res.Linked++
			}
		}
		e.linkStart = nil
	}

	if e.AutoChain || in.Chain {
		e.chain(g, &res)
	}

	return res
}

func (e *Editor) chain(g *models.Graph, res *Result) {
	g.Chain()
	e.AutoChain = false
	res.Chained = true
}

// cut advances the cutting path to the current pointer and kills every
// live link the newest path segment crosses. The press frame only records
// where the path starts.
func (e *Editor) cut(g *models.Graph, in Input) int {
	if !in.Cut {
		e.cutting = false
		return 0
	}
	if !e.cutting {
		e.cutting = true
		e.cutFrom = in.Pointer
		return 0
	}

	n := CutLinks(g, e.cutFrom, in.Pointer)
	e.cutFrom = in.Pointer
	return n
}

// CutLinks marks dead every live link crossing the segment from-to and
// returns how many were cut.
func CutLinks(g *models.Graph, from, to r2.Vec) int {
	n := 0
	for i := len(g.Links) - 1; i >= 0; i-- {
		l := g.Links[i]
		if l.Dead() {
			continue
		}
		if geom.SegmentsIntersect(from, to, l.A().Position, l.B().Position) {
			if err := g.MarkLinkDead(i); err == nil {
				n++
			}
		}
	}
	return n
}
