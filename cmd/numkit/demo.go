package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/integrators"
	"github.com/san-kum/numkit/internal/legendre"
	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/sqroot"
	"github.com/san-kum/numkit/internal/viz"
)

// printDemo runs every kernel on its reference problem.
func printDemo(w io.Writer) error {
	s := viz.Default

	x := numeric.Linspace(-1, 1, 5)
	table, err := legendre.Evaluate(x, 3)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s.Heading("Legendre Polynomials up to Degree 3"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "x\t")
	for _, v := range x {
		fmt.Fprintf(tw, "%g\t", v)
	}
	fmt.Fprintln(tw)
	for n, row := range table {
		fmt.Fprintf(tw, "L%d\t", n)
		for _, v := range row {
			fmt.Fprintf(tw, "%g\t", v)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Heading("Square Root by Binomial Series"))
	for _, job := range []struct {
		a float64
		n int
	}{{25, 2}, {10, 3}} {
		res, err := sqroot.Approximate(job.a, job.n, config.DefaultGuess, config.DefaultTolerance)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  sqrt(%g) N=%d  %s  %s\n", job.a, job.n,
			s.Value.Render(fmt.Sprintf("%.15f", res.Value)),
			s.Muted.Render(fmt.Sprintf("%d iterations, residual %.1e", res.Iterations, res.Residual)))
	}

	f := func(t, y float64) float64 { return 1 / (1 + y) }
	exact := func(t float64) float64 { return -1 + math.Sqrt(2*t+4) }
	grid := numeric.Grid{Duration: config.DefaultDuration, Steps: config.DefaultSteps}

	euler, err := integrators.NewEuler().Integrate(f, grid, config.DefaultY0, config.DefaultY1)
	if err != nil {
		return err
	}
	rk4, err := integrators.NewRK4().WithRefinement(config.DefaultRefinement).Integrate(f, grid, config.DefaultY0)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Heading("y' = 1/(1+y), y(0) = 1"))
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "t\teuler\trk4\texact\t")
	for i, t := range euler.Times {
		fmt.Fprintf(tw, "%g\t%.10f\t%.10f\t%.10f\t\n", t, euler.Values[i], rk4.Values[i], exact(t))
	}
	return tw.Flush()
}
