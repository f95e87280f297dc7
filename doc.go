// Package probkit is a small toolbox of numerically stable primitives for
// evaluating, manipulating, and comparing multivariate Gaussians and
// log-probability expressions.
//
// 🚀 What is probkit?
//
//	A flat collection of pure functions over dense real matrices that
//	higher-level probabilistic code (mixture models, variational Bayesian
//	clustering) leans on:
//		• Summary statistics: column means, stdevs, covariance — single
//		  matrices or pooled over groups of matrices
//		• Distances: batch Mahalanobis distance, squared c-separation
//		• Log-domain ops: row-wise log-sum-exp, log-determinant of a PSD
//		  matrix via Cholesky
//		• Decompositions & specials: principal eigenpair by power
//		  iteration, element-wise digamma and log-gamma
//
// ✨ Why choose probkit?
//
//   - Stability first — every routine is written for its degenerate inputs:
//     single-sample data, singular matrices, rows of −∞ in the log domain
//   - No hidden state — every function is pure; concurrent calls are safe
//     as long as inputs are not mutated underneath them
//   - One error kind — every precondition failure wraps ErrInvalidArgument,
//     so callers match the whole surface with a single errors.Is
//   - gonum under the hood — matrices, Cholesky factorizations, and slice
//     reductions come from gonum.org/v1/gonum; nothing is reinvented
//
// Everything is organized under five subpackages:
//
//	stats/    — Mean, PooledMean, Stdev, Cov, PooledCov
//	gauss/    — Mahalanobis, CSeparation
//	logspace/ — LogSumExp, LogDet
//	eigen/    — Power (principal eigenpair) + Options
//	specfunc/ — element-wise Digamma, Lgamma
//
// Conventions: observations sit in rows, features in columns; means are
// length-D vectors; per-row results (Mahalanobis, LogSumExp) are length-N
// vectors. Double precision throughout.
//
//	go get github.com/vbayes/probkit
package probkit
