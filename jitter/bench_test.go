package jitter_test

import (
	"testing"

	"github.com/katalvlaran/bluenoise/jitter"
	"github.com/katalvlaran/bluenoise/prng"
)

// BenchmarkGenerate measures jittered-grid generation at 100×100 cells.
func BenchmarkGenerate(b *testing.B) {
	opts := jitter.DefaultOptions()
	opts.JitterRadius = 0.015

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = jitter.Generate(10000, prng.NewLCG(prng.DefaultSeed), opts)
	}
}

// BenchmarkGenerate_Circle includes the circle-predicate drop path.
func BenchmarkGenerate_Circle(b *testing.B) {
	opts := jitter.DefaultOptions()
	opts.Circle = true
	opts.JitterRadius = 0.015

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = jitter.Generate(10000, prng.NewLCG(prng.DefaultSeed), opts)
	}
}
