// Package specfunc applies the gamma-family special functions element-wise
// to dense matrices: digamma ψ(x) and log-gamma log Γ(x).
//
// Variational updates for Dirichlet and Wishart distributions evaluate
// ψ and log Γ over whole matrices of pseudo-counts at once; these wrappers
// keep that a one-liner while preserving the input shape.
//
// Digamma comes from gonum's mathext (series plus asymptotic expansion with
// downward recurrence, better than 1e-10 relative accuracy for x ≥ 1);
// log-gamma is the standard library's math.Lgamma. The domain of interest
// is x > 0; non-positive arguments follow whatever the underlying
// implementations do (poles at the non-positive integers), unguarded.
//
// There are no error returns: the output shape is inherited from the input,
// so no precondition can fail.
package specfunc
