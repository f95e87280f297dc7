// Package gauss compares points and Gaussian components: batch Mahalanobis
// distances against a weight matrix, and the squared c-separation between
// two Gaussians.
//
// What:
//
//   - Mahalanobis: d[i] = (X[i,:] − μ) · A⁻¹ · (X[i,:] − μ)ᵀ for every row
//     of an N×D observation matrix, without ever forming A⁻¹ — a single
//     Cholesky factorization of A feeds a multi-RHS triangular solve.
//   - CSeparation: ‖μ_k − μ_l‖² / (D · max(λ_k, λ_l)), the identifiability
//     measure for how well two mixture components are separated, fed by
//     the principal eigenvalues of their covariances (see package eigen).
//
// Why:
//
//   - Gaussian log-likelihoods are Mahalanobis distances plus a log-det
//     term; evaluating them N-at-a-time amortizes the O(D³) factorization
//     across all observations.
//   - The Cholesky doubles as the PSD check: a weight matrix that fails to
//     factor (including the singular all-zero matrix) is rejected rather
//     than silently producing garbage distances.
//
// Complexity:
//
//   - Mahalanobis: O(D³) factorization + O(N·D²) solve, O(N·D) extra memory.
//   - CSeparation: O(D).
//
// Errors:
//
//   - ErrNotSquare:   the weight matrix A is not square.
//   - ErrDimMismatch: μ or A disagree with the column count of X, or the
//     two mean vectors of CSeparation differ in length.
//   - ErrNotPSD:      the Cholesky factorization of A failed.
//
// Every sentinel wraps probkit.ErrInvalidArgument. CSeparation with both
// eigenvalues zero divides unchecked — guarding that is the caller's job.
package gauss
