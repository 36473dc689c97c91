// Package sqroot approximates square roots with a truncated binomial-series
// correction.
//
// Each iteration expands sqrt(a) around the current estimate x:
//
//	sqrt(a) = x * sqrt(1 + delta/x^2),  delta = a - x^2
//
// and multiplies x by the first N+1 terms of the binomial series of
// sqrt(1 + r). With N = 1 this is Newton's iteration; larger N buys a better
// correction per pass at the cost of more terms.
//
// [Approximate] stops once |x^2 - a| <= eps. Unlike a bare loop it is
// bounded: the iteration cap (default [DefaultMaxIterations]) turns a
// non-contracting run into [numeric.ErrNotConverged].
package sqroot
