// Package point defines the 2D unit-domain point type shared by every
// bluenoise sampler, together with the shape predicates that bound
// generated distributions.
//
// A Point is a plain value: samplers emit copies, and a point is immutable
// once it has been appended to an output sequence. The Valid flag marks a
// real sample; the zero value (Valid=false) doubles as the empty-cell
// sentinel inside the Poisson-disk spatial grid and must never appear in
// a generator's output.
package point

import "math"

// Point is a 2D coordinate in the unit domain with a validity flag.
// Equality is by value.
type Point struct {
	X, Y  float64
	Valid bool
}

// New returns a valid Point at (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y, Valid: true}
}

// Add returns the componentwise sum p+q as a valid Point.
// Used to recentre generated points around a caller-supplied center.
func (p Point) Add(q Point) Point {
	return New(p.X+q.X, p.Y+q.Y)
}

// Sub returns the componentwise difference p−q as a valid Point.
func (p Point) Sub(q Point) Point {
	return New(p.X-q.X, p.Y-q.Y)
}

// InUnitSquare reports whether p lies in the closed unit square [0,1]².
// Complexity: O(1).
func (p Point) InUnitSquare() bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// InUnitCircle reports whether p lies in the circle of radius 0.5 centered
// at (0.5, 0.5) — the circle inscribed in the unit square.
// Complexity: O(1).
func (p Point) InUnitCircle() bool {
	fx := p.X - 0.5
	fy := p.Y - 0.5

	return fx*fx+fy*fy <= 0.25
}

// Dist returns the Euclidean distance between a and b.
// Complexity: O(1).
func Dist(a, b Point) float64 {
	return math.Sqrt(DistSq(a, b))
}

// DistSq returns the squared Euclidean distance between a and b.
// Hot paths compare squared distances against squared thresholds to skip
// the square root; the accept/reject decision is unchanged.
// Complexity: O(1).
func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}
