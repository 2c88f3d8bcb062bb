// Package vogel places points along a golden-angle spiral (Vogel's
// phyllotaxis model), the pattern sunflower seeds grow in.
//
// The sampler is fully deterministic and closed-form: point i sits at
// radius √(i+0.5)/√(sampleCount) and angle i·2.4 (the golden angle in
// radians) plus a caller offset, recentred on the configured center. It
// always emits exactly count points in index order; no shape clipping is
// applied. Circle mode oversamples the internal position count by 4× as a
// density compensation heuristic, not a coverage guarantee.
//
// Complexity: O(count) time, O(count) memory. No error paths.
package vogel

import (
	"math"

	"github.com/katalvlaran/bluenoise/point"
)

// goldenAngle approximates the golden angle (π(3−√5) ≈ 2.39996) in radians.
const goldenAngle = 2.4

// circleOversample multiplies the internal position count in circle mode.
const circleOversample = 4

// Options contains tunable parameters for spiral generation.
type Options struct {
	// Circle enables the 4× internal oversampling used when the spiral
	// should read as a filled disk.
	Circle bool

	// AngleOffsetDegrees rotates the whole spiral.
	AngleOffsetDegrees float64

	// Center is added to every generated point.
	Center point.Point
}

// DefaultOptions returns the canonical configuration: circle mode, no
// rotation, centered in the unit domain.
func DefaultOptions() Options {
	return Options{
		Circle: true,
		Center: point.New(0.5, 0.5),
	}
}

// Generate returns exactly count spiral points in index order.
// Complexity: O(count).
func Generate(count uint32, opts Options) []point.Point {
	samples := make([]point.Point, 0, count)

	sampleCount := count
	if opts.Circle {
		sampleCount = circleOversample * count
	}
	offset := opts.AngleOffsetDegrees * math.Pi / 180

	for i := uint32(0); i < count; i++ {
		samples = append(samples, sampleDisk(i, sampleCount, offset).Add(opts.Center))
	}

	return samples
}

// sampleDisk computes the i-th spiral position around the origin.
// Complexity: O(1).
func sampleDisk(index, sampleCount uint32, angleOffset float64) point.Point {
	radius := math.Sqrt(float64(index)+0.5) / math.Sqrt(float64(sampleCount))
	angle := float64(index)*goldenAngle + angleOffset

	return point.New(radius*math.Cos(angle), radius*math.Sin(angle))
}
