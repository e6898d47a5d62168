package models

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/geom"
)

// LinkFilter is a function type used to select links in queries
type LinkFilter func(link *Link) bool

// PointIndexAt returns the index of the first point strictly closer than
// radius to pos, or -1 when there is none.
func (g *Graph) PointIndexAt(pos r2.Vec, radius float64) int {
	for i, p := range g.Points {
		if geom.Distance(p.Position, pos) < radius {
			return i
		}
	}
	return -1
}

// FindPoint returns the point with the given id
func (g *Graph) FindPoint(id uuid.UUID) (*Point, error) {
	for _, p := range g.Points {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("point %s: %w", id, ErrPointNotFound)
}

// IndexOf returns the index of p in the point collection, or -1.
func (g *Graph) IndexOf(p *Point) int {
	for i, q := range g.Points {
		if q == p {
			return i
		}
	}
	return -1
}

// Contains reports whether p is a member of the point collection.
func (g *Graph) Contains(p *Point) bool {
	return p != nil && g.IndexOf(p) >= 0
}

// LinksOf returns the indices of all links touching p, dead or alive.
func (g *Graph) LinksOf(p *Point) []int {
	var result []int
	for i, l := range g.Links {
		if l.Touches(p) {
			result = append(result, i)
		}
	}
	return result
}

// FilterLinks returns the indices of links matching filter
func (g *Graph) FilterLinks(filter LinkFilter) []int {
	var result []int
	for i, l := range g.Links {
		if filter(l) {
			result = append(result, i)
		}
	}
	return result
}

// LiveLinkCount returns how many links have not been cut.
func (g *Graph) LiveLinkCount() int {
	return len(g.FilterLinks(func(l *Link) bool { return !l.dead }))
}

// LockedCount returns how many points are locked.
func (g *Graph) LockedCount() int {
	n := 0
	for _, p := range g.Points {
		if p.Locked {
			n++
		}
	}
	return n
}
