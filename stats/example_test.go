package stats_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vbayes/probkit/stats"
)

// ExampleMean summarizes a tiny 3×2 dataset: three observations of two
// features. The stdevs use the unbiased N−1 denominator, so their squares
// equal the covariance diagonal.
func ExampleMean() {
	X := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	m, _ := stats.Mean(X)
	s, _ := stats.Stdev(X)
	c, _ := stats.Cov(X)

	fmt.Printf("mean  = [%g %g]\n", m.AtVec(0), m.AtVec(1))
	fmt.Printf("stdev = [%g %g]\n", s.AtVec(0), s.AtVec(1))
	fmt.Printf("cov   = [%g %g; %g %g]\n", c.At(0, 0), c.At(0, 1), c.At(1, 0), c.At(1, 1))
	// Output:
	// mean  = [3 4]
	// stdev = [2 2]
	// cov   = [4 4; 4 4]
}

// ExamplePooledCov pools a 1-row group with a 2-row group; the result is the
// covariance of the vertical concatenation, because every group is centered
// about the single pooled mean.
func ExamplePooledCov() {
	a := mat.NewDense(1, 2, []float64{1, 2})
	b := mat.NewDense(2, 2, []float64{3, 4, 5, 6})

	pooled, _ := stats.PooledCov([]mat.Matrix{a, b})

	fmt.Printf("[%g %g; %g %g]\n", pooled.At(0, 0), pooled.At(0, 1), pooled.At(1, 0), pooled.At(1, 1))
	// Output:
	// [4 4; 4 4]
}
