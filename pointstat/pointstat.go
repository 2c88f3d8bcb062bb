// Package pointstat measures the spacing guarantees of generated point
// sets: nearest-neighbor distances and their summary statistics.
//
// What:
//
//   - NearestNeighborDistances — per-point distance to the closest other
//     valid point, in input order.
//   - MinPairwiseDistance — the global spacing floor of a set; the witness
//     for the Poisson-disk minimum-distance invariant.
//   - Summary — min/max/mean/standard deviation of the nearest-neighbor
//     distances.
//
// Why:
//
//   - Blue-noise quality is a statistical claim; this package makes it
//     checkable by callers (and by this module's own tests) without a
//     rendering step.
//
// Complexity:
//
//   - All functions are O(n²) reference implementations over the valid
//     points; generator outputs are small enough that an index-accelerated
//     variant has not been needed.
//
// Errors:
//
//   - ErrTooFewPoints: statistics require at least two valid points.
package pointstat

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bluenoise/point"
)

// ErrTooFewPoints indicates the input holds fewer than two valid points,
// so no pairwise distance exists.
var ErrTooFewPoints = errors.New("pointstat: need at least two valid points")

// Spacing summarizes the nearest-neighbor distance distribution of a set.
type Spacing struct {
	// Min is the smallest nearest-neighbor distance — for a Poisson-disk
	// output this must be ≥ the sampler's working minimum distance.
	Min float64
	// Max is the largest nearest-neighbor distance (the emptiest spot).
	Max float64
	// Mean is the average nearest-neighbor distance.
	Mean float64
	// StdDev is the sample standard deviation of the distances; low values
	// indicate even, blue-noise-like spacing.
	StdDev float64
}

// NearestNeighborDistances returns, for each valid point, the distance to
// its closest other valid point, in input order. Invalid points are
// skipped entirely. Fewer than two valid points yield nil.
// Complexity: O(n²).
func NearestNeighborDistances(pts []point.Point) []float64 {
	valid := keepValid(pts)
	if len(valid) < 2 {
		return nil
	}

	out := make([]float64, len(valid))
	for i, p := range valid {
		best := math.Inf(1)
		for j, q := range valid {
			if i == j {
				continue
			}
			if d := point.DistSq(p, q); d < best {
				best = d
			}
		}
		out[i] = math.Sqrt(best)
	}

	return out
}

// MinPairwiseDistance returns the smallest distance between any two valid
// points, or +Inf when fewer than two valid points exist.
// Complexity: O(n²).
func MinPairwiseDistance(pts []point.Point) float64 {
	valid := keepValid(pts)
	best := math.Inf(1)
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			if d := point.DistSq(valid[i], valid[j]); d < best {
				best = d
			}
		}
	}

	return math.Sqrt(best)
}

// Summary computes spacing statistics over the nearest-neighbor distances
// of pts. Returns ErrTooFewPoints when fewer than two valid points exist.
// Complexity: O(n²).
func Summary(pts []point.Point) (Spacing, error) {
	nn := NearestNeighborDistances(pts)
	if nn == nil {
		return Spacing{}, ErrTooFewPoints
	}

	return Spacing{
		Min:    floats.Min(nn),
		Max:    floats.Max(nn),
		Mean:   stat.Mean(nn, nil),
		StdDev: stat.StdDev(nn, nil),
	}, nil
}

// keepValid filters pts down to the valid samples, preserving order.
func keepValid(pts []point.Point) []point.Point {
	valid := make([]point.Point, 0, len(pts))
	for _, p := range pts {
		if p.Valid {
			valid = append(valid, p)
		}
	}

	return valid
}
