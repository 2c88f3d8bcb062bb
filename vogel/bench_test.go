package vogel_test

import (
	"testing"

	"github.com/katalvlaran/bluenoise/vogel"
)

// BenchmarkGenerate measures closed-form spiral generation.
func BenchmarkGenerate(b *testing.B) {
	opts := vogel.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = vogel.Generate(10000, opts)
	}
}
