package models

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/geom"
)

// NewPoint creates a point at rest at pos.
func NewPoint(pos r2.Vec, locked bool) *Point {
	return &Point{
		ID:           uuid.New(),
		Position:     pos,
		PrevPosition: pos,
		Locked:       locked,
	}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Points: []*Point{},
		Links:  []*Link{},
	}
}

// Generation returns the topology generation counter.
func (g *Graph) Generation() uint64 {
	return g.generation
}

func (g *Graph) touch() {
	g.generation++
}

// AddPoint appends a new point at rest at pos.
func (g *Graph) AddPoint(pos r2.Vec, locked bool) *Point {
	p := NewPoint(pos, locked)
	g.Points = append(g.Points, p)
	return p
}

// AddLink connects a and b with a link whose length is their current distance.
func (g *Graph) AddLink(a, b *Point) (*Link, error) {
	if a == b {
		return nil, ErrSelfLink
	}
	if !g.Contains(a) {
		return nil, fmt.Errorf("link endpoint a: %w", ErrPointNotFound)
	}
	if !g.Contains(b) {
		return nil, fmt.Errorf("link endpoint b: %w", ErrPointNotFound)
	}

	l := &Link{
		ID:     uuid.New(),
		a:      a,
		b:      b,
		length: geom.Distance(a.Position, b.Position),
	}
	g.Links = append(g.Links, l)
	g.touch()
	return l, nil
}

// AddLinkByIndex links the points at indices i and j.
func (g *Graph) AddLinkByIndex(i, j int) (*Link, error) {
	if i < 0 || i >= len(g.Points) || j < 0 || j >= len(g.Points) {
		return nil, fmt.Errorf("link %d-%d with %d points: %w", i, j, len(g.Points), ErrIndexOutOfRange)
	}
	return g.AddLink(g.Points[i], g.Points[j])
}

// RemovePoint deletes the point at index i and retires every link that
// references it. It returns the number of links removed.
func (g *Graph) RemovePoint(i int) (int, error) {
	if i < 0 || i >= len(g.Points) {
		return 0, fmt.Errorf("remove point %d of %d: %w", i, len(g.Points), ErrIndexOutOfRange)
	}

	p := g.Points[i]
	last := len(g.Points) - 1
	copy(g.Points[i:], g.Points[i+1:])
	g.Points[last] = nil
	g.Points = g.Points[:last]

	kept := g.Links[:0]
	removed := 0
	for _, l := range g.Links {
		if l.Touches(p) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	for k := len(kept); k < len(g.Links); k++ {
		g.Links[k] = nil
	}
	g.Links = kept

	g.touch()
	return removed, nil
}

// RemovePointByID deletes the point with the given id, cascading its links.
func (g *Graph) RemovePointByID(id uuid.UUID) (int, error) {
	for i, p := range g.Points {
		if p.ID == id {
			return g.RemovePoint(i)
		}
	}
	return 0, fmt.Errorf("remove point %s: %w", id, ErrPointNotFound)
}

// MarkLinkDead soft-deletes the link at index i. The slot is kept.
func (g *Graph) MarkLinkDead(i int) error {
	if i < 0 || i >= len(g.Links) {
		return fmt.Errorf("mark link %d of %d: %w", i, len(g.Links), ErrIndexOutOfRange)
	}
	g.Links[i].dead = true
	return nil
}

// Clear empties both collections.
func (g *Graph) Clear() {
	g.Points = []*Point{}
	g.Links = []*Link{}
	g.touch()
}

// Chain replaces every link with one link between each consecutive pair
// of points in collection order.
func (g *Graph) Chain() {
	links := make([]*Link, 0, max(len(g.Points)-1, 0))
	for k := 0; k+1 < len(g.Points); k++ {
		a, b := g.Points[k], g.Points[k+1]
		links = append(links, &Link{
			ID:     uuid.New(),
			a:      a,
			b:      b,
			length: geom.Distance(a.Position, b.Position),
		})
	}
	g.Links = links
	g.touch()
}

// CompactDeadLinks drops dead links from the collection and returns how
// many were removed. Only call it when the relaxation order is about to be
// rebuilt anyway.
func (g *Graph) CompactDeadLinks() int {
	kept := make([]*Link, 0, len(g.Links))
	for _, l := range g.Links {
		if !l.dead {
			kept = append(kept, l)
		}
	}
	removed := len(g.Links) - len(kept)
	if removed > 0 {
		g.Links = kept
		g.touch()
	}
	return removed
}
