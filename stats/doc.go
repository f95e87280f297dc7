// Package stats computes column-wise summary statistics of dense
// observation matrices: means, standard deviations, and covariances,
// for a single matrix or pooled over an ordered group of matrices.
//
// What:
//
//   - Mean / PooledMean: column means of an N×D matrix, or of a group
//     {X_j} of N_j×D matrices pooled as if vertically concatenated.
//   - Stdev: unbiased (N−1 denominator) column standard deviations.
//   - Cov / PooledCov: covariance CᵀC/(N−1) of the column-centered
//     matrix; the pooled form centers every group about the single
//     pooled mean, giving the total covariance of the concatenation.
//
// Why:
//
//   - Mixture-model priors are seeded from the total statistics of the
//     whole dataset, even when the data arrives split into groups —
//     hence pooling the mean rather than centering each group on its own.
//   - Gaussian cluster updates need covariances that stay symmetric and
//     positive semi-definite; Cov returns *mat.SymDense so symmetry is
//     a type-level guarantee.
//
// Conventions:
//
//   - Observations in rows, features in columns; results are length-D
//     vectors (*mat.VecDense) or D×D symmetric matrices (*mat.SymDense).
//   - Double precision throughout; NaN/Inf in the input propagate.
//
// Complexity:
//
//   - Mean/Stdev:   O(N·D) time, O(D) extra memory.
//   - Cov:          O(N·D²) time, O(N·D) extra memory (centered copy).
//
// Errors:
//
//   - ErrEmptyMatrix:      a matrix with no rows (or no columns) was passed
//     where at least one observation is required.
//   - ErrFewObservations:  Stdev/Cov need at least two observations.
//   - ErrEmptyGroup:       a pooled form received an empty group.
//   - ErrDimMismatch:      group members disagree on the column count.
//
// Every sentinel wraps probkit.ErrInvalidArgument.
package stats
