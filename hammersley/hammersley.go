// Package hammersley generates the 2D Hammersley low-discrepancy point
// set: x runs evenly through [0,1) and y is the van der Corput radical
// inverse in base 2, computed by 32-bit bit reversal.
//
// The set is fully deterministic, needs no PRNG, applies no shape
// clipping, and always emits exactly count points in index order. The
// y-coordinate of index i depends only on i, never on count.
//
// Complexity: O(count) time, O(count) memory. No error paths.
//
// Reference: holger.dammertz.org/stuff/notes_HammersleyOnHemisphere.html
package hammersley

import (
	"math/bits"

	"github.com/katalvlaran/bluenoise/point"
)

// Generate returns the count-point Hammersley set over the unit square.
// Complexity: O(count).
func Generate(count uint32) []point.Point {
	samples := make([]point.Point, 0, count)

	for i := uint32(0); i < count; i++ {
		samples = append(samples, point.New(
			float64(i)/float64(count),
			radicalInverse(i),
		))
	}

	return samples
}

// radicalInverse mirrors the bits of i around the radix point: the
// reversed 32-bit integer scaled by 2⁻³² lands in [0,1).
// Complexity: O(1).
func radicalInverse(i uint32) float64 {
	return float64(bits.Reverse32(i)) * 0x1p-32
}
