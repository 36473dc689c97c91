package experiment

import (
	"fmt"
	"math"

	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/integrators"
	"github.com/san-kum/numkit/internal/legendre"
	"github.com/san-kum/numkit/internal/metrics"
	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/sqroot"
)

// samples beyond this magnitude count against the stability metric
const divergenceBound = 1e12

// Kernel runs one configured computation.
type Kernel func(r *Registry, cfg *config.Config) (*Result, error)

func runLegendre(_ *Registry, cfg *config.Config) (*Result, error) {
	lc := cfg.Legendre
	if lc.Points < 1 {
		return nil, numeric.Invalid("legendre: points must be at least 1, got %d", lc.Points)
	}
	x := numeric.Linspace(lc.Min, lc.Max, lc.Points)
	var (
		table numeric.Table
		err   error
	)
	if lc.Workers > 1 {
		table, err = legendre.EvaluateParallel(x, lc.Degree, lc.Workers)
	} else {
		table, err = legendre.Evaluate(x, lc.Degree)
	}
	if err != nil {
		return nil, err
	}

	columns := []string{"x"}
	for n := 0; n <= lc.Degree; n++ {
		columns = append(columns, fmt.Sprintf("L%d", n))
	}
	rows := make([][]float64, len(x))
	for j, v := range x {
		rows[j] = append([]float64{v}, table.Column(j)...)
	}

	return &Result{
		Kernel: "legendre",
		Params: map[string]float64{
			"degree": float64(lc.Degree),
			"points": float64(lc.Points),
			"min":    lc.Min,
			"max":    lc.Max,
		},
		Columns: columns,
		Rows:    rows,
		Scalars: map[string]float64{},
	}, nil
}

func runSqrt(_ *Registry, cfg *config.Config) (*Result, error) {
	sc := cfg.Sqrt
	rows := make([][]float64, 0)
	obs := func(i int, x, residual float64) {
		rows = append(rows, []float64{float64(i), x, residual})
	}

	opts := []sqroot.Option{sqroot.WithObserver(obs)}
	if sc.MaxIterations > 0 {
		opts = append(opts, sqroot.WithMaxIterations(sc.MaxIterations))
	}
	res, err := sqroot.Approximate(sc.Target, sc.Terms, sc.Guess, sc.Tolerance, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{
		Kernel: "sqrt",
		Params: map[string]float64{
			"target":         sc.Target,
			"terms":          float64(sc.Terms),
			"guess":          sc.Guess,
			"tolerance":      sc.Tolerance,
			"max_iterations": float64(sc.MaxIterations),
		},
		Columns: []string{"iteration", "estimate", "residual"},
		Rows:    rows,
		Scalars: map[string]float64{
			"value":          res.Value,
			"iterations":     float64(res.Iterations),
			"residual":       res.Residual,
			"relative_error": sqroot.RelativeError(res.Value, sc.Target),
		},
	}, nil
}

func runEuler(r *Registry, cfg *config.Config) (*Result, error) {
	sc := cfg.Stepper
	rhs, err := r.GetRHS(sc.RHS)
	if err != nil {
		return nil, err
	}
	traj, err := integrators.NewEuler().Integrate(rhs.F, grid(sc), sc.Y0, sc.Y1)
	if err != nil {
		return nil, err
	}
	res := trajectoryResult("euler", sc, rhs, traj)
	res.Params["y1"] = sc.Y1
	return res, nil
}

func runRK4(r *Registry, cfg *config.Config) (*Result, error) {
	sc := cfg.Stepper
	rhs, err := r.GetRHS(sc.RHS)
	if err != nil {
		return nil, err
	}
	traj, err := integrators.NewRK4().WithRefinement(sc.Refinement).Integrate(rhs.F, grid(sc), sc.Y0)
	if err != nil {
		return nil, err
	}
	res := trajectoryResult("rk4", sc, rhs, traj)
	res.Params["refinement"] = float64(sc.Refinement)
	return res, nil
}

func grid(sc config.StepperConfig) numeric.Grid {
	return numeric.Grid{Duration: sc.Duration, Steps: sc.Steps}
}

func trajectoryResult(kernel string, sc config.StepperConfig, rhs RHS, traj *numeric.Trajectory) *Result {
	rows := make([][]float64, traj.Len())
	for i := range rows {
		rows[i] = []float64{traj.Times[i], traj.Values[i]}
	}

	ms := []metrics.Metric{metrics.NewStability(divergenceBound)}
	// the closed form only applies to its own initial value
	exact := rhs.Exact != nil && sc.Y0 == rhs.Y0
	if exact {
		ms = append(ms, metrics.NewMaxError(rhs.Exact), metrics.NewRMSError(rhs.Exact))
	}
	scalars := metrics.Observe(traj.Times, traj.Values, ms...)

	tEnd, yEnd := traj.Final()
	scalars["final"] = yEnd
	if exact {
		scalars["global_error"] = math.Abs(yEnd - rhs.Exact(tEnd))
	}

	return &Result{
		Kernel: kernel,
		Params: map[string]float64{
			"duration": sc.Duration,
			"steps":    float64(sc.Steps),
			"y0":       sc.Y0,
		},
		Columns: []string{"t", "y"},
		Rows:    rows,
		Scalars: scalars,
	}
}
