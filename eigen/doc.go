// Package eigen extracts the principal eigenpair of a dense square matrix
// by power iteration.
//
// What:
//
//   - Power: the dominant-magnitude eigenvalue and its unit eigenvector,
//     iterating x ← A·x/‖A·x‖₂ from a deterministic all-ones start until
//     the iterate moves less than Tol in the ∞-norm or MaxIter is hit.
//     The eigenvalue is the Rayleigh quotient xᵀ·A·x of the final iterate.
//
// Why:
//
//   - c-separation (package gauss) only needs the largest eigenvalue of
//     each covariance. Power iteration delivers it in O(D²) per step,
//     versus O(D³) for a full eigendecomposition that would compute D−1
//     eigenpairs nobody reads.
//   - The deterministic start vector makes repeated calls on the same
//     matrix bit-identical — no hidden randomness in cluster seeding.
//
// Behavior on hard inputs:
//
//   - Slow convergence (tight eigenvalue gaps, alternating signs from a
//     negative dominant eigenvalue) is not an error: the loop stops at
//     MaxIter and returns the current estimate, per the silent-cap policy.
//   - A matrix with a repeated dominant eigenvalue returns some valid
//     eigenpair of that eigenvalue; which one is unspecified.
//
// Complexity: O(D²) per iteration, O(D) extra memory.
//
// Errors:
//
//   - ErrNotSquare:  A is not square.
//   - ErrBadOptions: non-positive Tol or MaxIter below one.
//
// Every sentinel wraps probkit.ErrInvalidArgument.
package eigen
