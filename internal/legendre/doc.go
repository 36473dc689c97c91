// Package legendre evaluates Legendre polynomials with the Bonnet
// three-term recurrence
//
//	(n) P_n(x) = (2n-1) x P_{n-1}(x) - (n-1) P_{n-2}(x)
//
// starting from P_0 = 1 and P_1 = x. [Evaluate] returns the full table of
// degrees 0..p, [At] a single value, and [EvaluateParallel] splits the
// sample columns across goroutines.
//
// Samples outside [-1, 1] are accepted; the recurrence is valid there, the
// polynomials just stop being orthogonal.
package legendre
