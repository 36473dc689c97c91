package numeric

import "math"

type Vector []float64

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Linspace returns n evenly spaced points over [start, stop]. The last point
// is pinned to stop so the endpoint carries no rounding error.
func Linspace(start, stop float64, n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	v := make(Vector, n)
	if n == 1 {
		v[0] = start
		return v
	}
	step := (stop - start) / float64(n-1)
	for i := range v {
		v[i] = start + float64(i)*step
	}
	v[n-1] = stop
	return v
}

// Table holds one row per degree and one column per sample.
type Table [][]float64

func NewTable(rows, cols int) Table {
	t := make(Table, rows)
	for i := range t {
		t[i] = make([]float64, cols)
	}
	return t
}

func (t Table) Rows() int { return len(t) }

func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Column copies column j across all rows.
func (t Table) Column(j int) Vector {
	c := make(Vector, len(t))
	for i := range t {
		c[i] = t[i][j]
	}
	return c
}

// Derivative is the right-hand side of y' = f(t, y).
type Derivative func(t, y float64) float64

// Stepper advances a scalar state by one step of size h.
type Stepper interface {
	Step(f Derivative, t, y, h float64) float64
}

// Grid describes N equal steps over [0, T].
type Grid struct {
	Duration float64
	Steps    int
}

func (g Grid) Validate() error {
	if !(g.Duration > 0) || math.IsInf(g.Duration, 0) {
		return Invalid("duration must be positive, got %g", g.Duration)
	}
	if g.Steps < 1 {
		return Invalid("steps must be at least 1, got %d", g.Steps)
	}
	return nil
}

// StepSize returns T/N.
func (g Grid) StepSize() float64 {
	return g.Duration / float64(g.Steps)
}

// Times returns the N+1 grid points.
func (g Grid) Times() Vector {
	return Linspace(0, g.Duration, g.Steps+1)
}

type Trajectory struct {
	Times  Vector
	Values Vector
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) IsValid() bool {
	return tr.Times.IsValid() && tr.Values.IsValid()
}

// Final returns the last time point and value.
func (tr *Trajectory) Final() (float64, float64) {
	n := len(tr.Values)
	if n == 0 {
		return 0, 0
	}
	return tr.Times[n-1], tr.Values[n-1]
}
