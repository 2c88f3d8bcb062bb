package prng

import "math"

// lcgMultiplier advances the LCG state on every draw. Changing it changes
// every seed's stream, so it is part of the determinism contract.
const lcgMultiplier uint32 = 521167

const (
	// mantissaMask keeps the low 23 bits of state as a float32 mantissa.
	mantissaMask uint32 = 0x007fffff
	// exponentTwo is the float32 bit pattern of 2.0; OR-ing the mantissa in
	// yields a value in [2, 4), which remaps linearly to [0, 1).
	exponentTwo uint32 = 0x40000000
)

// LCG is the reference multiplicative congruential source.
//
// The state is a single 32-bit unsigned integer that wraps on overflow.
// A zero seed is valid but degenerates to a constant stream of zeros
// (0 · lcgMultiplier == 0); that is the documented behavior, not a defect
// to correct silently.
type LCG struct {
	seed uint32
}

var _ Source = (*LCG)(nil)

// NewLCG returns an LCG starting from the given seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{seed: seed}
}

// RandomFloat advances the state once and returns the next value in [0, 1).
//
// The mapping packs the low 23 state bits into a float32 mantissa under an
// exponent of 2.0, producing f ∈ [2, 4), then returns 0.5·(f−2). The result
// equals (state & mantissaMask) / 2²³ exactly.
// Complexity: O(1).
func (g *LCG) RandomFloat() float64 {
	g.seed *= lcgMultiplier
	f := math.Float32frombits(g.seed&mantissaMask | exponentTwo)

	return float64(0.5 * (f - 2.0))
}

// RandomInt returns an integer in [0, max] via the contract's
// scaled-float-floor mapping. Complexity: O(1).
func (g *LCG) RandomInt(max uint32) uint32 {
	return uint32(g.RandomFloat() * (float64(max) + 1))
}

// Seed exposes the current state for diagnostics.
func (g *LCG) Seed() uint32 {
	return g.seed
}
