package sqroot

import (
	"math"

	"github.com/san-kum/numkit/internal/numeric"
)

const DefaultMaxIterations = 1000

type Result struct {
	Value      float64
	Iterations int
	Residual   float64
}

// Observer sees every estimate, starting with x0 at iteration 0.
type Observer func(iteration int, x, residual float64)

type options struct {
	maxIterations int
	observer      Observer
}

type Option func(*options)

// WithMaxIterations caps the number of correction passes.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// Approximate iterates x <- x * Correction(n, a - x^2, x) from x0 until
// |x^2 - a| <= eps.
func Approximate(a float64, n int, x0, eps float64, opts ...Option) (Result, error) {
	o := options{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(a, n, x0, eps, o.maxIterations); err != nil {
		return Result{}, err
	}

	x := x0
	iterations := 0
	residual := math.Abs(x*x - a)
	if o.observer != nil {
		o.observer(0, x, residual)
	}

	for residual > eps {
		if x == 0 {
			return Result{}, &numeric.IterationError{Iteration: iterations, Estimate: x, Wrapped: numeric.ErrDivisionByZero}
		}
		if iterations == o.maxIterations {
			return Result{}, &numeric.IterationError{Iteration: iterations, Estimate: x, Wrapped: numeric.ErrNotConverged}
		}

		delta := a - x*x
		x *= Correction(n, delta, x)
		iterations++
		residual = math.Abs(x*x - a)

		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Result{}, &numeric.IterationError{Iteration: iterations, Estimate: x, Wrapped: numeric.ErrNotConverged}
		}
		if o.observer != nil {
			o.observer(iterations, x, residual)
		}
	}

	return Result{Value: x, Iterations: iterations, Residual: residual}, nil
}

func validate(a float64, n int, x0, eps float64, maxIter int) error {
	switch {
	case !(a > 0) || math.IsInf(a, 0):
		return numeric.Invalid("sqroot: target must be positive and finite, got %g", a)
	case n < 0:
		return numeric.Invalid("sqroot: term count must be non-negative, got %d", n)
	case !(eps > 0):
		return numeric.Invalid("sqroot: tolerance must be positive, got %g", eps)
	case math.IsNaN(x0) || math.IsInf(x0, 0):
		return numeric.Invalid("sqroot: initial guess must be finite, got %g", x0)
	case maxIter < 0:
		return numeric.Invalid("sqroot: iteration cap must be non-negative, got %d", maxIter)
	}
	return nil
}

// RelativeError returns |approx - sqrt(a)| / sqrt(a).
func RelativeError(approx, a float64) float64 {
	exact := math.Sqrt(a)
	return math.Abs(approx-exact) / exact
}
