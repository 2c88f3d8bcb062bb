// Package prng defines the random-source contract and its default seed.
package prng

// DefaultSeed is the fixed seed used when callers do not provide one
// (samplers treat a nil Source as NewLCG(DefaultSeed)). The value is
// arbitrary but stable to keep reproducible defaults.
const DefaultSeed uint32 = 7133167

// Source is the contract every randomized sampler draws from.
//
// Implementations advance a single private state on every draw; they hold
// no global state and are not safe for concurrent use.
type Source interface {
	// RandomFloat returns the next value in [0, 1), deterministic given
	// prior state.
	RandomFloat() float64

	// RandomInt returns an integer in [0, max] using scaled-float-floor
	// semantics: floor(RandomFloat() · (max+1)). The mapping is only
	// approximately uniform; callers must tolerate the rare boundary
	// off-by-one this implies. The exact mapping is part of the
	// seed-reproducibility contract — do not "improve" it per source.
	RandomInt(max uint32) uint32
}
