package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/analysis"
	"github.com/san-kum/numkit/internal/automation"
	"github.com/san-kum/numkit/internal/batch"
	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/experiment"
	"github.com/san-kum/numkit/internal/export"
	"github.com/san-kum/numkit/internal/sqroot"
	"github.com/san-kum/numkit/internal/storage"
	"github.com/san-kum/numkit/internal/viz"
)

// tables wider than this are summarised instead of printed
const maxPrintedRows = 25

func runLegendre(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Kernel = "legendre"
	cfg.Legendre = config.LegendreConfig{Degree: degree, Points: points, Min: xMin, Max: xMax, Workers: workers}

	result, err := execute(cfg)
	if err != nil {
		return err
	}
	x, table := legendreTable(result)

	fmt.Println(viz.Default.Heading(fmt.Sprintf("Legendre Polynomials up to Degree %d", degree)))
	printRows(result)

	if plot {
		fmt.Println()
		fmt.Println(viz.LegendreChart(x, table, viz.DefaultSize))
	}
	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.LegendreFigure(x, table).SVG()), 0644); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", viz.Default.Label.Render("svg:"), svgFile)
	}
	return nil
}

func sqrtConfig(a float64) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Kernel = "sqrt"
	cfg.Sqrt = config.SqrtConfig{Target: a, Terms: terms, Guess: guess, Tolerance: tolerance, MaxIterations: maxIter}
	return cfg
}

func runSqrt(cmd *cobra.Command, args []string) error {
	targets, err := parseTargets(args)
	if err != nil {
		return err
	}
	result, err := execute(sqrtConfig(targets[0]))
	if err != nil {
		return err
	}

	fmt.Println(viz.Default.Heading(fmt.Sprintf("sqrt(%g), N=%d, x0=%g", targets[0], terms, guess)))
	if trace {
		printRows(result)
		fmt.Println()
	}
	fmt.Print(viz.Default.KV(result.Scalars))

	if plot {
		fmt.Println()
		fmt.Println(viz.ResultChart(result, viz.DefaultSize))
	}
	return nil
}

func runSqrtBatch(cmd *cobra.Command, args []string) error {
	targets, err := parseTargets(args)
	if err != nil {
		return err
	}
	jobs := batch.Jobs(targets, terms, guess, tolerance, maxIter)
	results, err := batch.Sqrt(context.Background(), jobs, batchWorkers)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "A\tSQRT\tITER\tREL ERR")
	for i, res := range results {
		fmt.Fprintf(w, "%g\t%.16g\t%d\t%.3e\n",
			targets[i], res.Value, res.Iterations, sqroot.RelativeError(res.Value, targets[i]))
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	targets, err := parseTargets(args)
	if err != nil {
		return err
	}
	a := targets[0]
	points, err := sqroot.Sweep(a, guess, tolerance, termsList, sqroot.WithMaxIterations(maxIter))
	if err != nil {
		return err
	}

	fmt.Println(viz.Default.Heading(fmt.Sprintf("sqrt(%g): error vs series length", a)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tVALUE\tITER\tREL ERR")
	for _, p := range points {
		fmt.Fprintf(w, "%d\t%.16g\t%d\t%.3e\n", p.Terms, p.Value, p.Iterations, p.RelativeError)
	}
	return w.Flush()
}

func runStepper(cmd *cobra.Command, kernel string) error {
	registry := experiment.NewRegistry()
	rhs, err := registry.GetRHS(rhsName)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Kernel = kernel
	cfg.Stepper = config.StepperConfig{
		RHS:        rhsName,
		Duration:   duration,
		Steps:      steps,
		Refinement: refinement,
		Y0:         y0,
		Y1:         y1,
	}
	if kernel == "euler" && !cmd.Flags().Changed("y1") {
		cfg.Stepper.Y1 = secondSeed(rhs, duration, steps, y0)
	}

	result, err := execute(cfg)
	if err != nil {
		return err
	}

	fmt.Println(viz.Default.Heading(fmt.Sprintf("%s: %s on [0, %g], N=%d", kernel, rhsName, duration, steps)))
	printRows(result)
	fmt.Println()
	fmt.Print(viz.Default.KV(result.Scalars))

	if plot {
		fmt.Println()
		fmt.Println(viz.TrajectoryChart(trajectory(result), kernel+" y(t)", viz.DefaultSize))
	}
	return nil
}

// secondSeed picks y(h) for the two-seed Euler scheme: the closed form
// when it applies, else one forward Euler step.
func secondSeed(rhs experiment.RHS, t float64, n int, y float64) float64 {
	if n < 1 {
		return y
	}
	h := t / float64(n)
	if rhs.Exact != nil && y == rhs.Y0 {
		return rhs.Exact(h)
	}
	return y + h*rhs.F(0, y)
}

func runConvergence(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"euler", "rk4"}
	}
	rhs, err := experiment.NewRegistry().GetRHS("growth")
	if err != nil {
		return err
	}
	stepCounts, err := analysis.Halvings(steps, halvings)
	if err != nil {
		return err
	}

	for _, name := range args {
		var solver analysis.Solver
		switch name {
		case "euler":
			solver = analysis.Euler()
		case "rk4":
			solver = analysis.RK4()
		default:
			return fmt.Errorf("unknown stepper: %s", name)
		}

		pts, err := analysis.Convergence(solver, rhs.F, rhs.Exact, convDuration, rhs.Y0, stepCounts)
		if err != nil {
			return err
		}

		fmt.Println(viz.Default.Heading(name + ": y' = y, y(0) = 1"))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "N\tH\tERROR\tORDER")
		for _, p := range pts {
			order := "-"
			if !math.IsNaN(p.Order) {
				order = fmt.Sprintf("%.3f", p.Order)
			}
			fmt.Fprintf(w, "%d\t%.3e\t%.3e\t%s\n", p.Steps, p.H, p.Error, order)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("%s %s\n\n", viz.Default.Label.Render("estimated order:"),
			viz.Default.Value.Render(fmt.Sprintf("%.3f", analysis.EstimateOrder(pts))))
	}
	return nil
}

func runConfigured(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(""))
		}
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config
	if cmd.Flags().Changed("rhs") {
		cfg.Stepper.RHS = rhsName
	}
	if cmd.Flags().Changed("steps") {
		cfg.Stepper.Steps = steps
	}
	if cmd.Flags().Changed("degree") {
		cfg.Legendre.Degree = degree
	}
	if cmd.Flags().Changed("terms") {
		cfg.Sqrt.Terms = terms
	}

	result, err := execute(cfg)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	sink := func(name string, res *experiment.Result) error {
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, res)
		if err != nil {
			return err
		}
		fmt.Printf("  %s %s\n", viz.Default.Label.Render("saved:"), runID)
		return nil
	}

	fmt.Println(viz.Default.Heading("scenario: " + scenario.Name))
	if scenario.Description != "" {
		fmt.Println(viz.Default.Muted.Render(scenario.Description))
	}

	results, err := automation.RunScenario(context.Background(), scenario, experiment.NewRegistry(), sink)
	for _, r := range results {
		fmt.Printf("\n%s (%s)\n", viz.Default.Title.Render(r.Step), r.Result.Kernel)
		fmt.Print(viz.Default.KV(r.Result.Scalars))
	}
	return err
}

func saveResult(result *experiment.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	runID, err := st.Save(label, result)
	if err != nil {
		return "", err
	}
	fmt.Printf("%s %s\n", viz.Default.Label.Render("run id:"), runID)
	return runID, nil
}

func printResult(result *experiment.Result) {
	fmt.Println(viz.Default.Heading(result.Kernel))
	fmt.Println(viz.Default.Muted.Render("params"))
	fmt.Print(viz.Default.KV(result.Params))
	if len(result.Scalars) > 0 {
		fmt.Println(viz.Default.Muted.Render("results"))
		fmt.Print(viz.Default.KV(result.Scalars))
	}
	if plot {
		fmt.Println()
		fmt.Println(resultChart(result))
	}
}

// printRows writes the result table, or a one-line summary when it is long.
func printRows(result *experiment.Result) {
	if len(result.Rows) > maxPrintedRows {
		fmt.Println(viz.Default.Muted.Render(fmt.Sprintf("%d rows x %d columns (use --plot or --save)", len(result.Rows), len(result.Columns))))
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, c := range result.Columns {
		fmt.Fprintf(w, "%s\t", c)
	}
	fmt.Fprintln(w)
	for _, row := range result.Rows {
		for _, v := range row {
			fmt.Fprintf(w, "%.10g\t", v)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
