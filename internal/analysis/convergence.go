package analysis

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/san-kum/numkit/internal/integrators"
	"github.com/san-kum/numkit/internal/numeric"
)

// Solver integrates f over grid from y0. exact supplies any additional
// seed a solver needs.
type Solver func(f numeric.Derivative, exact func(float64) float64, grid numeric.Grid, y0 float64) (*numeric.Trajectory, error)

// Euler seeds the second grid point from the exact solution.
func Euler() Solver {
	e := integrators.NewEuler()
	return func(f numeric.Derivative, exact func(float64) float64, grid numeric.Grid, y0 float64) (*numeric.Trajectory, error) {
		return e.Integrate(f, grid, y0, exact(grid.StepSize()))
	}
}

func RK4() Solver {
	r := integrators.NewRK4()
	return func(f numeric.Derivative, _ func(float64) float64, grid numeric.Grid, y0 float64) (*numeric.Trajectory, error) {
		return r.Integrate(f, grid, y0)
	}
}

type ConvergencePoint struct {
	Steps int
	H     float64
	Error float64
	// Order is the observed order against the previous point; NaN for the
	// first one.
	Order float64
}

// ObservedOrder returns log(coarse/fine) / log(ratio), the order implied by
// two errors whose step sizes differ by ratio = h_coarse/h_fine.
func ObservedOrder(coarse, fine, ratio float64) float64 {
	return math.Log(coarse/fine) / math.Log(ratio)
}

// Convergence integrates y' = f on [0, duration] once per step count and
// compares the final value with exact(duration).
func Convergence(solve Solver, f numeric.Derivative, exact func(float64) float64, duration, y0 float64, steps []int) ([]ConvergencePoint, error) {
	if solve == nil || exact == nil {
		return nil, numeric.Invalid("analysis: solver and exact solution are required")
	}
	want := exact(duration)
	points := make([]ConvergencePoint, 0, len(steps))

	for i, n := range steps {
		grid := numeric.Grid{Duration: duration, Steps: n}
		traj, err := solve(f, exact, grid, y0)
		if err != nil {
			return points, fmt.Errorf("steps=%d: %w", n, err)
		}
		_, y := traj.Final()

		p := ConvergencePoint{
			Steps: n,
			H:     grid.StepSize(),
			Error: math.Abs(y - want),
			Order: math.NaN(),
		}
		if i > 0 {
			prev := points[i-1]
			p.Order = ObservedOrder(prev.Error, p.Error, prev.H/p.H)
		}
		points = append(points, p)
	}

	return points, nil
}

// EstimateOrder averages the observed orders, skipping undefined ones.
func EstimateOrder(points []ConvergencePoint) float64 {
	sum, n := 0.0, 0
	for _, p := range points {
		if math.IsNaN(p.Order) || math.IsInf(p.Order, 0) {
			continue
		}
		sum += p.Order
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Halvings returns n0, 2*n0, ... with count entries.
func Halvings(n0, count int) ([]int, error) {
	if n0 < 1 {
		return nil, numeric.Invalid("analysis: initial step count must be at least 1, got %d", n0)
	}
	if count < 0 {
		return nil, numeric.Invalid("analysis: refinement count must be non-negative, got %d", count)
	}
	if count > 0 && bits.Len(uint(n0))+count-1 > 62 {
		return nil, numeric.Invalid("analysis: %d refinements of %d steps overflow", count, n0)
	}
	steps := make([]int, count)
	for i := range steps {
		steps[i] = n0 << i
	}
	return steps, nil
}
