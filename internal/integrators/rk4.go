package integrators

import "github.com/san-kum/numkit/internal/numeric"

type RK4 struct {
	// Refinement is accepted for signature parity with other steppers and
	// is not used by the computation.
	Refinement int
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) WithRefinement(m int) *RK4 {
	r.Refinement = m
	return r
}

func (r *RK4) Step(f numeric.Derivative, t, y, h float64) float64 {
	k1 := h * f(t, y)
	k2 := h * f(t+h/2, y+k1/2)
	k3 := h * f(t+h/2, y+k2/2)
	k4 := h * f(t+h, y+k3)
	return y + (k1+2*k2+2*k3+k4)/6
}

func (r *RK4) Integrate(f numeric.Derivative, grid numeric.Grid, y0 float64) (*numeric.Trajectory, error) {
	if err := checkProblem(f, grid); err != nil {
		return nil, err
	}
	return march(r, f, grid, []float64{y0}), nil
}
