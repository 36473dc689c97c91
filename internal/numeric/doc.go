// Package numeric provides the shared vocabulary of the numkit kernels.
//
// The package defines the small set of types the kernels exchange:
//
//   - [Vector]: ordered sample points (x-values or a time grid)
//   - [Table]: rows indexed by degree, columns by sample index
//   - [Trajectory]: time points and state values produced by a stepper
//   - [Derivative]: right-hand side f(t, y) of a scalar ODE
//   - [Stepper]: single-step integrator interface
//
// # Errors
//
// Kernels report failures through the sentinels [ErrInvalidArgument],
// [ErrDivisionByZero] and [ErrNotConverged]. Match them with errors.Is:
//
//	_, err := sqroot.Approximate(a, n, x0, eps)
//	if errors.Is(err, numeric.ErrNotConverged) {
//	    // raise the iteration cap or pick a closer x0
//	}
//
// # Thread Safety
//
// Every value is created fresh per call. Kernels hold no shared state and
// may be called from any number of goroutines.
package numeric
