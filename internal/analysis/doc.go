// Package analysis measures how the fixed-step integrators converge.
//
// [Convergence] integrates a problem with a known closed-form solution at a
// sequence of step counts and records the global error at the final time.
// Halving h divides the error by 2^p for a method of order p, so
// [ObservedOrder] recovers p from two consecutive errors and their step ratio:
//
//	points, _ := analysis.Convergence(analysis.RK4(), f, exact, 1, 1, []int{10, 20, 40})
//	p := analysis.EstimateOrder(points) // ~4 for RK4, ~1 for Euler
package analysis
