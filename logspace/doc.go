// Package logspace holds the two log-domain workhorses of Gaussian
// bookkeeping: row-wise log-sum-exp and the log-determinant of a PSD matrix.
//
// What:
//
//   - LogSumExp: r[i] = log(Σ_k exp(X[i,k])) per row of an N×K matrix,
//     computed with the max-shift trick so no finite input can overflow.
//     A row of all −∞ yields −∞; a row containing +∞ yields +∞.
//   - LogDet: log(det(A)) of a symmetric positive-definite D×D matrix via
//     its Cholesky factor, 2·Σ_k log(L[k,k]) — one O(D³) factorization,
//     no catastrophic cancellation, no overflow from the raw determinant.
//
// Why:
//
//   - Responsibilities in a mixture model are normalized in the log domain;
//     log-sum-exp is the marginalization primitive that keeps weights of
//     wildly different magnitude representable.
//   - Gaussian log-likelihoods carry a −½·log|Σ| term; going through the
//     determinant itself would overflow long before the log-likelihood does.
//
// Complexity:
//
//   - LogSumExp: O(N·K) time, O(K) extra memory.
//   - LogDet:    O(D³) time, O(D²) extra memory for the factor.
//
// Errors:
//
//   - ErrEmptyMatrix: LogSumExp of a matrix with no rows or no columns.
//   - ErrNotSquare:   LogDet of a non-square matrix.
//   - ErrNotPSD:      LogDet of a matrix whose Cholesky fails.
//
// Every sentinel wraps probkit.ErrInvalidArgument.
package logspace
