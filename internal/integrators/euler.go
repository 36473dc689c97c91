package integrators

import "github.com/san-kum/numkit/internal/numeric"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f numeric.Derivative, t, y, h float64) float64 {
	return y + h*f(t, y)
}

// Integrate returns the trajectory over grid with y0 and y1 used verbatim
// as the first two values.
func (e *Euler) Integrate(f numeric.Derivative, grid numeric.Grid, y0, y1 float64) (*numeric.Trajectory, error) {
	if err := checkProblem(f, grid); err != nil {
		return nil, err
	}
	return march(e, f, grid, []float64{y0, y1}), nil
}
