package sim

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// PointView is the drawable state of one point.
type PointView struct {
	ID       uuid.UUID
	Position r2.Vec
	Locked   bool
}

// LinkView is the drawable state of one link.
type LinkView struct {
	ID   uuid.UUID
	A, B r2.Vec
	Dead bool
}

// Segment is a line from one world position to another.
type Segment struct {
	From, To r2.Vec
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Points     []PointView
	Links      []LinkView
	Preview    *Segment // link being drawn, from its start point to the pointer
	Running    bool
	Generation uint64
	Frame      uint64
}

// LiveLinks returns how many links in the snapshot are not dead.
func (s Snapshot) LiveLinks() int {
	n := 0
	for _, l := range s.Links {
		if !l.Dead {
			n++
		}
	}
	return n
}

// LockedPoints returns how many points in the snapshot are locked.
func (s Snapshot) LockedPoints() int {
	n := 0
	for _, p := range s.Points {
		if p.Locked {
			n++
		}
	}
	return n
}

// Snapshot copies the current scene state.
func (s *Sandbox) Snapshot() Snapshot {
	snap := Snapshot{
		Points:     make([]PointView, len(s.graph.Points)),
		Links:      make([]LinkView, len(s.graph.Links)),
		Running:    s.editor.Running(),
		Generation: s.graph.Generation(),
		Frame:      s.frames,
	}
	for i, p := range s.graph.Points {
		snap.Points[i] = PointView{ID: p.ID, Position: p.Position, Locked: p.Locked}
	}
	for i, l := range s.graph.Links {
		snap.Links[i] = LinkView{ID: l.ID, A: l.A().Position, B: l.B().Position, Dead: l.Dead()}
	}
	if start, ok := s.editor.Drawing(); ok {
		snap.Preview = &Segment{From: start.Position, To: s.editor.Pointer()}
	}
	return snap
}
