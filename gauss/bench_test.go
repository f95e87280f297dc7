package gauss_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/vbayes/probkit/gauss"
)

// benchmarkMahalanobis runs Mahalanobis on deterministic n×d data against a
// well-conditioned SPD weight. Mixture E-steps evaluate this once per
// cluster per iteration, so the factorize-once/solve-all path is the hot one.
func benchmarkMahalanobis(b *testing.B, n, d int) {
	X := randomDense(n, d, 42)
	mu := mat.NewVecDense(d, nil)
	A := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		A.SetSym(i, i, 2)
		if i+1 < d {
			A.SetSym(i, i+1, 0.5)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gauss.Mahalanobis(X, mu, A); err != nil {
			b.Fatalf("Mahalanobis failed: %v", err)
		}
	}
}

// BenchmarkMahalanobis_SmallDim benchmarks 1000 observations in 4 dimensions.
func BenchmarkMahalanobis_SmallDim(b *testing.B) {
	benchmarkMahalanobis(b, 1000, 4)
}

// BenchmarkMahalanobis_MediumDim benchmarks 1000 observations in 32 dimensions.
func BenchmarkMahalanobis_MediumDim(b *testing.B) {
	benchmarkMahalanobis(b, 1000, 32)
}
