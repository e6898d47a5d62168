// Package models provides the point/link graph that the rope solver
// operates on. Points own their positions; links hold non-owning
// references to two points and a rest length fixed at construction.
package models

import (
	"errors"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrPointNotFound is returned when a point is not a member of the graph.
	ErrPointNotFound = errors.New("point not found in graph")
	// ErrSelfLink is returned when both link endpoints are the same point.
	ErrSelfLink = errors.New("link endpoints must be distinct points")
	// ErrIndexOutOfRange is returned for point or link indices outside the collection.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Point is a point mass. Velocity is implicit: Position - PrevPosition.
type Point struct {
	ID           uuid.UUID
	Position     r2.Vec
	PrevPosition r2.Vec
	Locked       bool
}

// Link is a rigid-length connection between two points. A dead link stays
// in the collection so indices held by the relaxation order remain valid.
type Link struct {
	ID     uuid.UUID
	a, b   *Point
	length float64
	dead   bool
}

// A returns the first endpoint.
func (l *Link) A() *Point { return l.a }

// B returns the second endpoint.
func (l *Link) B() *Point { return l.b }

// Length returns the rest length the link was built with.
func (l *Link) Length() float64 { return l.length }

// Dead reports whether the link has been cut.
func (l *Link) Dead() bool { return l.dead }

// Touches reports whether p is one of the link's endpoints.
func (l *Link) Touches(p *Point) bool {
	return l.a == p || l.b == p
}

// Graph is the ordered point and link collections of a scene.
//
// Generation increases every time the link count changes or a point is
// removed. Consumers that index into Links (the relaxation order) compare
// generations to know when their view is stale.
type Graph struct {
	Points []*Point
	Links  []*Link

	generation uint64
}
