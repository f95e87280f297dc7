package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CSeparation returns the squared c-separation of two Gaussian components:
//
//	C²_{k,l} = ‖μ_k − μ_l‖² / (D · max(λ_k, λ_l))
//
// where λ_k, λ_l are the principal eigenvalues of the two covariances
// (eigen.Power supplies them) and D is the common mean length. Larger
// values mean better-separated, more identifiable components.
//
// The division is performed unchecked: if both eigenvalues are zero the
// result is ±Inf or NaN, by caller contract.
//
// Errors:
//   - ErrDimMismatch if the two means differ in length.
func CSeparation(eigK, eigL float64, muK, muL mat.Vector) (float64, error) {
	d := muK.Len()
	if muL.Len() != d {
		return 0, fmt.Errorf("%w (means have lengths %d and %d)", ErrDimMismatch, d, muL.Len())
	}

	var diff mat.VecDense
	diff.SubVec(muK, muL)

	return mat.Dot(&diff, &diff) / (float64(d) * math.Max(eigK, eigL)), nil
}
