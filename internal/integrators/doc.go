// Package integrators provides fixed-step solvers for scalar ODEs
// y' = f(t, y) on the grid t_n = n*T/N.
//
//   - [Euler]: explicit Euler seeded with two values
//   - [RK4]: classical fourth-order Runge-Kutta
//
// Both implement [numeric.Stepper] for single steps and expose Integrate for
// whole trajectories.
//
// # Two-seed Euler
//
// [Euler.Integrate] takes y1 from the caller instead of computing it, and
// applies the Euler update from the second grid point onwards:
//
//	y[0] = y0
//	y[1] = y1
//	y[n+1] = y[n] + h*f(t[n], y[n])   for n = 1..N-1
package integrators
