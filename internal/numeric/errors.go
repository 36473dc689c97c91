package numeric

import (
	"errors"
	"fmt"
)

// Domain errors for kernel calls.
var (
	// ErrInvalidArgument indicates an argument outside the domain the
	// mathematics requires (negative degree, non-positive tolerance, ...).
	ErrInvalidArgument = errors.New("numeric: invalid argument")

	// ErrDivisionByZero indicates an iterate reached exactly zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrNotConverged indicates an iteration exhausted its bound without
	// meeting the tolerance.
	ErrNotConverged = errors.New("numeric: iteration did not converge")
)

// IterationError wraps an error with the iteration it happened at.
type IterationError struct {
	Iteration int
	Estimate  float64
	Wrapped   error
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("iteration %d (x=%g): %v", e.Iteration, e.Estimate, e.Wrapped)
}

func (e *IterationError) Unwrap() error {
	return e.Wrapped
}

// Invalid returns an ErrInvalidArgument wrapped with a formatted reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}
