// Package poisson defines tunable options for the Poisson-disk sampler.
package poisson

// DefaultAttempts is the per-expansion candidate budget — the "k" of
// Bridson's algorithm (bridson-siggraph07-poissondisk.pdf).
const DefaultAttempts uint32 = 30

// Options contains tunable parameters for Poisson-disk generation.
type Options struct {
	// Circle selects the sampling domain: the circle inscribed in the unit
	// square (true) or the unit square itself (false).
	Circle bool

	// Attempts is the number of candidate children generated per frontier
	// expansion. Zero is honored literally and degenerates to a single
	// seed point.
	Attempts uint32

	// MinDistance is the spacing floor between any two accepted points.
	// Non-positive values select the automatic estimate
	// √(adjustedCount)/adjustedCount derived from the working target.
	// Values larger than the domain diagonal yield a single point.
	MinDistance float64
}

// DefaultOptions returns the canonical configuration:
// circle domain, 30 attempts per expansion, automatic spacing.
func DefaultOptions() Options {
	return Options{
		Circle:      true,
		Attempts:    DefaultAttempts,
		MinDistance: -1,
	}
}
