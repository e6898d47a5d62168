// Package geom provides the 2D primitives used by the rope solver:
// distances, midpoints, safe directions and the segment intersection
// test that drives link cutting.
package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Down is the unit vector gravity pulls along. World y grows upward.
var Down = r2.Vec{X: 0, Y: -1}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q r2.Vec) float64 {
	return r2.Norm(r2.Sub(p, q))
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q r2.Vec) r2.Vec {
	return r2.Scale(0.5, r2.Add(p, q))
}

// Direction returns the unit vector pointing from `to` toward `from`
// together with the distance between them. Coincident points yield the
// zero vector and a length of zero.
func Direction(from, to r2.Vec) (r2.Vec, float64) {
	d := r2.Sub(from, to)
	length := r2.Norm(d)
	if length == 0 {
		return r2.Vec{}, 0
	}
	return r2.Scale(1/length, d), length
}

// SegmentsIntersect reports whether segment a1-a2 crosses segment b1-b2.
// Touching endpoints count as an intersection. Parallel segments never
// intersect, including collinear overlapping ones.
func SegmentsIntersect(a1, a2, b1, b2 r2.Vec) bool {
	d := (b2.X-b1.X)*(a1.Y-a2.Y) - (a1.X-a2.X)*(b2.Y-b1.Y)
	if d == 0 {
		return false
	}
	t := ((b1.Y-b2.Y)*(a1.X-b1.X) + (b2.X-b1.X)*(a1.Y-b1.Y)) / d
	u := ((a1.Y-a2.Y)*(a1.X-b1.X) + (a2.X-a1.X)*(a1.Y-b1.Y)) / d

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
