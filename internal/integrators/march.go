package integrators

import "github.com/san-kum/numkit/internal/numeric"

func checkProblem(f numeric.Derivative, grid numeric.Grid) error {
	if f == nil {
		return numeric.Invalid("integrators: derivative is nil")
	}
	return grid.Validate()
}

// march copies the seeds into the head of the trajectory and advances the
// last seed with s until the grid is filled.
func march(s numeric.Stepper, f numeric.Derivative, grid numeric.Grid, seeds []float64) *numeric.Trajectory {
	times := grid.Times()
	values := make(numeric.Vector, len(times))
	n := copy(values, seeds)
	h := grid.StepSize()

	for i := n - 1; i < grid.Steps; i++ {
		values[i+1] = s.Step(f, times[i], values[i], h)
	}

	return &numeric.Trajectory{Times: times, Values: values}
}
