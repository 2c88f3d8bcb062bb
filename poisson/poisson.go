package poisson

import (
	"math"

	"github.com/katalvlaran/bluenoise/point"
	"github.com/katalvlaran/bluenoise/prng"
)

// quarterPi is the area ratio of the inscribed circle to the unit square;
// square-mode targets scale by it because the spacing estimator assumes
// circular packing density.
const quarterPi = math.Pi / 4

// Generate produces an ordered sequence of Poisson-disk samples in the
// unit domain. Points are emitted in acceptance order; every pair of
// points in the result is at least the working minimum distance apart.
//
// src is owned by the caller and advanced in place, so a reused source
// continues its random stream across calls; a nil src falls back to a
// fresh prng.NewLCG(prng.DefaultSeed) stream. The result length is not
// clipped to count — see the package documentation for count semantics.
//
// Complexity: O(n·k) expected (n emitted points, k = opts.Attempts).
func Generate(count uint32, src prng.Source, opts Options) []point.Point {
	if src == nil {
		src = prng.NewLCG(prng.DefaultSeed)
	}

	// Compensate for boundary rejection, then for square-mode area.
	target := uint64(count) * 2
	if !opts.Circle {
		target = uint64(quarterPi * float64(target))
	}

	var samples []point.Point
	if target == 0 {
		return samples
	}

	minDist := opts.MinDistance
	if minDist <= 0 {
		minDist = math.Sqrt(float64(target)) / float64(target)
	}

	inside := insideFunc(opts.Circle)
	cells := newGrid(minDist)

	// Seed the frontier with a uniform point inside the active shape.
	first := point.New(src.RandomFloat(), src.RandomFloat())
	for !inside(first) {
		first = point.New(src.RandomFloat(), src.RandomFloat())
	}

	frontier := []point.Point{first}
	samples = append(samples, first)
	cells.insert(first)

	for len(frontier) > 0 && uint64(len(samples)) <= target {
		parent := popRandom(&frontier, src)

		for i := uint32(0); i < opts.Attempts; i++ {
			candidate := randomPointAround(parent, minDist, src)
			if inside(candidate) && !cells.hasNeighborWithin(candidate, minDist) {
				frontier = append(frontier, candidate)
				samples = append(samples, candidate)
				cells.insert(candidate)
			}
		}
	}

	return samples
}

// insideFunc selects the active shape predicate.
func insideFunc(circle bool) func(point.Point) bool {
	if circle {
		return point.Point.InUnitCircle
	}

	return point.Point.InUnitSquare
}

// popRandom removes and returns a uniformly chosen element of *pts by
// swapping the last element into the vacated slot and shrinking the slice.
// Selection is exactly uniform over the remaining elements; order within
// the frontier is immaterial.
// Complexity: O(1).
func popRandom(pts *[]point.Point, src prng.Source) point.Point {
	s := *pts
	last := len(s) - 1
	i := src.RandomInt(uint32(last))

	p := s[i]
	s[i] = s[last]
	*pts = s[:last]

	return p
}

// randomPointAround draws a polar offset child of center: radius uniform
// in [minDist, 2·minDist), angle uniform in [0, 2π). The radius draw
// precedes the angle draw; the order is part of stream reproducibility.
// Complexity: O(1).
func randomPointAround(center point.Point, minDist float64, src prng.Source) point.Point {
	radius := minDist * (1 + src.RandomFloat())
	angle := 2 * math.Pi * src.RandomFloat()

	return point.New(
		center.X+radius*math.Cos(angle),
		center.Y+radius*math.Sin(angle),
	)
}
