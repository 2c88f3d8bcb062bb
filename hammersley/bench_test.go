package hammersley_test

import (
	"testing"

	"github.com/katalvlaran/bluenoise/hammersley"
)

// BenchmarkGenerate measures closed-form set generation.
func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = hammersley.Generate(10000)
	}
}
