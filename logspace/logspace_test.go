package logspace_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/vbayes/probkit"
	"github.com/vbayes/probkit/logspace"
)

// zeroRows is a minimal mat.Matrix with no rows; gonum's constructors panic
// on zero-length data, so the empty-matrix guard needs a hand-rolled type.
type zeroRows struct{ cols int }

func (z zeroRows) Dims() (int, int)    { return 0, z.cols }
func (z zeroRows) At(_, _ int) float64 { panic("logspace_test: zeroRows has no elements") }
func (z zeroRows) T() mat.Matrix       { return mat.Transpose{Matrix: z} }

// randomDense builds a deterministic pseudo-random r×c matrix.
func randomDense(r, c int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}

// TestLogSumExp_UniformRow checks log(Σ exp(0)) over three entries = log 3.
func TestLogSumExp_UniformRow(t *testing.T) {
	r, err := logspace.LogSumExp(mat.NewDense(1, 3, []float64{0, 0, 0}))
	require.NoError(t, err)
	assert.InDelta(t, math.Log(3), r.AtVec(0), 1e-12)
}

// TestLogSumExp_NoOverflow verifies the max-shift: a row of two 1000s gives
// exactly 1000 + log 2 instead of overflowing exp.
func TestLogSumExp_NoOverflow(t *testing.T) {
	r, err := logspace.LogSumExp(mat.NewDense(1, 2, []float64{1000, 1000}))
	require.NoError(t, err)
	assert.InDelta(t, 1000+math.Log(2), r.AtVec(0), 1e-9)
	assert.False(t, math.IsInf(r.AtVec(0), 1), "finite inputs must not overflow")
}

// TestLogSumExp_InfRows verifies the ±∞ row contracts: all −∞ reduces to
// −∞, and any +∞ dominates to +∞.
func TestLogSumExp_InfRows(t *testing.T) {
	negInf := math.Inf(-1)
	posInf := math.Inf(1)

	r, err := logspace.LogSumExp(mat.NewDense(2, 2, []float64{
		negInf, negInf,
		negInf, posInf,
	}))
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.AtVec(0), -1), "all −∞ row")
	assert.True(t, math.IsInf(r.AtVec(1), 1), "row containing +∞")
}

// TestLogSumExp_Bounds verifies rowmax ≤ logsumexp ≤ rowmax + log K.
func TestLogSumExp_Bounds(t *testing.T) {
	X := randomDense(25, 6, 13)

	r, err := logspace.LogSumExp(X)
	require.NoError(t, err)

	row := make([]float64, 6)
	for i := 0; i < 25; i++ {
		mat.Row(row, i, X)
		rowMax := math.Inf(-1)
		for _, v := range row {
			rowMax = math.Max(rowMax, v)
		}
		assert.GreaterOrEqual(t, r.AtVec(i)+1e-12, rowMax, "lower bound, row %d", i)
		assert.LessOrEqual(t, r.AtVec(i), rowMax+math.Log(6)+1e-12, "upper bound, row %d", i)
	}
}

// TestLogSumExp_ShiftEquivariance verifies logsumexp(X + c) = logsumexp(X) + c.
func TestLogSumExp_ShiftEquivariance(t *testing.T) {
	X := randomDense(10, 4, 17)
	const shift = 123.25

	base, err := logspace.LogSumExp(X)
	require.NoError(t, err)

	var shifted mat.Dense
	shifted.Apply(func(_, _ int, v float64) float64 { return v + shift }, X)
	moved, err := logspace.LogSumExp(&shifted)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.InDelta(t, base.AtVec(i)+shift, moved.AtVec(i), 1e-10, "row %d", i)
	}
}

// TestLogSumExp_Empty verifies the empty-matrix guard.
func TestLogSumExp_Empty(t *testing.T) {
	_, err := logspace.LogSumExp(zeroRows{cols: 3})
	assert.ErrorIs(t, err, logspace.ErrEmptyMatrix)
	assert.ErrorIs(t, err, probkit.ErrInvalidArgument)
}

// TestLogDet_Diagonal checks logdet(diag(1,2,4)) = log 8.
func TestLogDet_Diagonal(t *testing.T) {
	A := mat.NewSymDense(3, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 4,
	})

	ld, err := logspace.LogDet(A)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(8), ld, 1e-12)
}

// TestLogDet_MatchesEigenSum cross-checks against Σ log(eigvals) on a
// random SPD matrix built as BᵀB + I.
func TestLogDet_MatchesEigenSum(t *testing.T) {
	B := randomDense(6, 4, 19)
	var A mat.SymDense
	A.SymOuterK(1, B.T())
	for i := 0; i < 4; i++ {
		A.SetSym(i, i, A.At(i, i)+1)
	}

	ld, err := logspace.LogDet(&A)
	require.NoError(t, err)

	var eig mat.EigenSym
	require.True(t, eig.Factorize(&A, false))
	want := 0.0
	for _, v := range eig.Values(nil) {
		want += math.Log(v)
	}
	assert.InEpsilon(t, want, ld, 1e-8)
}

// TestLogDet_Errors covers the non-square and non-PSD failures, including
// the PSD-but-singular all-zero matrix.
func TestLogDet_Errors(t *testing.T) {
	_, err := logspace.LogDet(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, logspace.ErrNotSquare, "non-square")

	_, err = logspace.LogDet(mat.NewSymDense(2, []float64{-1, 0, 0, -1}))
	assert.ErrorIs(t, err, logspace.ErrNotPSD, "negative definite")

	_, err = logspace.LogDet(mat.NewSymDense(2, nil))
	assert.ErrorIs(t, err, logspace.ErrNotPSD, "all-zero (singular)")
	assert.ErrorIs(t, err, probkit.ErrInvalidArgument)
}
