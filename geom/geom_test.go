package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func v(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

func TestDistance(t *testing.T) {
	if got := Distance(v(0, 0), v(3, 4)); got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
	if got := Distance(v(1, 1), v(1, 1)); got != 0 {
		t.Fatalf("Distance of coincident points = %v, want 0", got)
	}
}

func TestMidpoint(t *testing.T) {
	if got := Midpoint(v(-2, 4), v(2, 0)); got != v(0, 2) {
		t.Fatalf("Midpoint = %v, want (0,2)", got)
	}
}

func TestDirection(t *testing.T) {
	dir, length := Direction(v(0, 0), v(0, 2))
	if length != 2 {
		t.Fatalf("length = %v, want 2", length)
	}
	if dir != v(0, -1) {
		t.Fatalf("dir = %v, want (0,-1)", dir)
	}

	dir, length = Direction(v(1, 1), v(1, 1))
	if length != 0 || dir != (r2.Vec{}) {
		t.Fatalf("degenerate direction = %v (len %v), want zero vector", dir, length)
	}
	if math.IsNaN(dir.X) || math.IsNaN(dir.Y) {
		t.Fatalf("degenerate direction contains NaN: %v", dir)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 r2.Vec
		want           bool
	}{
		{"interior crossing", v(0, 0), v(2, 2), v(0, 2), v(2, 0), true},
		{"perpendicular crossing", v(-1, 0), v(1, 0), v(0, -1), v(0, 1), true},
		{"parallel apart", v(0, 0), v(1, 0), v(0, 1), v(1, 1), false},
		{"collinear overlapping", v(0, 0), v(2, 0), v(1, 0), v(3, 0), false},
		{"shared endpoint", v(0, 0), v(1, 0), v(1, 0), v(1, 1), true},
		{"T junction", v(0, 0), v(2, 0), v(1, 0), v(1, 3), true},
		{"disjoint non parallel", v(0, 0), v(1, 0), v(3, -1), v(3, 1), false},
		{"zero length cut", v(1, 1), v(1, 1), v(0, 0), v(2, 2), false},
		{"lines cross outside segments", v(0, 0), v(1, 1), v(3, 0), v(2, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersectSymmetric(t *testing.T) {
	cases := [][4]r2.Vec{
		{v(0, 0), v(2, 2), v(0, 2), v(2, 0)},
		{v(0, 0), v(1, 0), v(1, 0), v(1, 1)},
		{v(0, 0), v(1, 0), v(0, 1), v(1, 1)},
		{v(0, 0), v(4, 1), v(2, -3), v(2, 5)},
		{v(0, 0), v(1, 0), v(3, -1), v(3, 1)},
	}

	for i, c := range cases {
		want := SegmentsIntersect(c[0], c[1], c[2], c[3])
		variants := [][4]r2.Vec{
			{c[1], c[0], c[2], c[3]},
			{c[0], c[1], c[3], c[2]},
			{c[1], c[0], c[3], c[2]},
		}
		for j, s := range variants {
			if got := SegmentsIntersect(s[0], s[1], s[2], s[3]); got != want {
				t.Errorf("case %d variant %d: got %v, want %v", i, j, got, want)
			}
		}
	}
}
