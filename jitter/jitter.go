// Package jitter stratifies the unit square into a regular grid and
// perturbs each cell center by a small random polar offset.
//
// What:
//
//   - A ⌊√count⌋ × ⌊√count⌋ grid of cells, each contributing one point at
//     its corner plus a jitter offset of magnitude [jr, 2·jr).
//   - Offsets are redrawn until the point lies in the unit square; there
//     is no retry cap — for any jitter radius < 0.5 and the default
//     center, the loop terminates almost surely.
//   - Circle mode drops (not retries) points outside the inscribed unit
//     circle, so the output may hold fewer than gridSize² points.
//
// Why:
//
//   - Jittered grids trade blue-noise quality for strict stratification:
//     exactly one sample per cell, cheap and deterministic per seed.
//     See the Poisson-disk vs jittered-grid comparison at
//     https://www.redblobgames.com/x/1830-jittered-grid/.
//
// Complexity: O(gridSize²) expected. No error paths.
package jitter

import (
	"math"

	"github.com/katalvlaran/bluenoise/point"
	"github.com/katalvlaran/bluenoise/prng"
)

// DefaultJitterRadius keeps perturbations small relative to the unit cell.
const DefaultJitterRadius = 0.004

// Options contains tunable parameters for jittered-grid generation.
type Options struct {
	// Circle drops points outside the inscribed unit circle.
	Circle bool

	// JitterRadius scales the polar perturbation; the offset magnitude is
	// uniform in [JitterRadius, 2·JitterRadius). Values approaching 0.5
	// degrade to long retry loops rather than erroring.
	JitterRadius float64

	// Center recentres the jitter: offsets are shifted by (0.5,0.5)−Center.
	Center point.Point
}

// DefaultOptions returns the canonical configuration: square domain,
// 0.004 jitter radius, unit-domain center.
func DefaultOptions() Options {
	return Options{
		Circle:       false,
		JitterRadius: DefaultJitterRadius,
		Center:       point.New(0.5, 0.5),
	}
}

// Generate returns one jittered point per grid cell, in row-major cell
// order (outer x, inner y). Output length is gridSize², minus circle-mode
// drops. A nil src falls back to prng.NewLCG(prng.DefaultSeed).
// Complexity: O(gridSize²) expected.
func Generate(count uint32, src prng.Source, opts Options) []point.Point {
	if src == nil {
		src = prng.NewLCG(prng.DefaultSeed)
	}

	gridSize := uint32(math.Sqrt(float64(count)))
	samples := make([]point.Point, 0, count)
	if gridSize == 0 {
		return samples
	}

	recentre := point.New(0.5, 0.5).Sub(opts.Center)

	for x := uint32(0); x < gridSize; x++ {
		for y := uint32(0); y < gridSize; y++ {
			cell := point.New(
				float64(x)/float64(gridSize),
				float64(y)/float64(gridSize),
			)

			var p point.Point
			for {
				p = cell.Add(jitterOffset(opts.JitterRadius, src)).Add(recentre)
				if p.InUnitSquare() {
					break
				}
			}

			if opts.Circle && !p.InUnitCircle() {
				continue
			}
			samples = append(samples, p)
		}
	}

	return samples
}

// jitterOffset draws a polar offset around the origin: magnitude uniform
// in [jr, 2·jr), angle uniform in [0, 2π). The magnitude draw precedes the
// angle draw; the order is part of stream reproducibility.
// Complexity: O(1).
func jitterOffset(jr float64, src prng.Source) point.Point {
	radius := jr * (1 + src.RandomFloat())
	angle := 2 * math.Pi * src.RandomFloat()

	return point.New(radius*math.Cos(angle), radius*math.Sin(angle))
}
