package integrate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hydrostat/integrate"
)

// BenchmarkIntegrate_Uniform measures the composite Simpson path over a
// dense uniform sine curve.
func BenchmarkIntegrate_Uniform(b *testing.B) {
	xs, ys := sampleUniform(0, math.Pi, 1000, math.Sin)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := integrate.Integrate(xs, ys); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIntegrate_NonUniform measures the quadratic-fit path on a
// geometrically stretched grid.
func BenchmarkIntegrate_NonUniform(b *testing.B) {
	n := 1000
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		xs[i] = math.Pow(float64(i)/float64(n), 1.5) * math.Pi
		ys[i] = math.Sin(xs[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := integrate.Integrate(xs, ys); err != nil {
			b.Fatal(err)
		}
	}
}
