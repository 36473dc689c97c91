package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/experiment"
	"github.com/san-kum/numkit/internal/viz"
)

var (
	dataDir string
	// legendre
	degree   int
	points   int
	xMin     float64
	xMax     float64
	workers  int
	svgFile  string
	// sqrt
	terms     int
	guess     float64
	tolerance float64
	maxIter   int
	trace     bool
	termsList []int
	// steppers
	rhsName    string
	duration   float64
	steps      int
	y0         float64
	y1         float64
	refinement int
	halvings   int
	// batch / study
	batchWorkers int
	convDuration float64
	tuneParams   []string
	tuneScalar   string
	// shared
	plot       bool
	save       bool
	label      string
	configFile string
	preset     string
)

// main wires the numkit command tree. With no subcommand it prints the
// demonstration results of every kernel.
func main() {
	rootCmd := &cobra.Command{
		Use:           "numkit",
		Short:         "numerical kernels: legendre, sqrt, ode steppers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDemo(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numkit", "data directory")

	legendreCmd := &cobra.Command{
		Use:   "legendre",
		Short: "evaluate Legendre polynomials on a uniform grid",
		Args:  cobra.NoArgs,
		RunE:  runLegendre,
	}
	legendreCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "maximum degree p")
	legendreCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of sample points")
	legendreCmd.Flags().Float64Var(&xMin, "min", -1, "first sample")
	legendreCmd.Flags().Float64Var(&xMax, "max", 1, "last sample")
	legendreCmd.Flags().IntVar(&workers, "workers", 1, "goroutines for column evaluation")
	legendreCmd.Flags().StringVar(&svgFile, "svg", "", "write an SVG chart to this file")
	addOutputFlags(legendreCmd)

	sqrtCmd := &cobra.Command{
		Use:   "sqrt [a]",
		Short: "approximate sqrt(a) with the binomial-series correction",
		Args:  cobra.ExactArgs(1),
		RunE:  runSqrt,
	}
	sqrtCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "series terms N")
	addSqrtFlags(sqrtCmd)
	sqrtCmd.Flags().BoolVar(&trace, "trace", false, "print every iterate")
	addOutputFlags(sqrtCmd)

	sqrtBatchCmd := &cobra.Command{
		Use:   "sqrt-batch [a...]",
		Short: "approximate several square roots concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSqrtBatch,
	}
	sqrtBatchCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "series terms N")
	addSqrtFlags(sqrtBatchCmd)
	sqrtBatchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "concurrent jobs")

	sweepCmd := &cobra.Command{
		Use:   "sweep [a]",
		Short: "relative error of sqrt(a) for several series lengths",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addSqrtFlags(sweepCmd)
	sweepCmd.Flags().IntSliceVar(&termsList, "terms", []int{1, 2, 3, 4, 5}, "series lengths to compare")

	eulerCmd := &cobra.Command{
		Use:   "euler",
		Short: "integrate y' = f(t, y) with the two-seed Euler scheme",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return runStepper(cmd, "euler") },
	}
	addStepperFlags(eulerCmd)
	eulerCmd.Flags().Float64Var(&y1, "y1", config.DefaultY1, "second seed y(h)")

	rk4Cmd := &cobra.Command{
		Use:   "rk4",
		Short: "integrate y' = f(t, y) with classical Runge-Kutta",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return runStepper(cmd, "rk4") },
	}
	addStepperFlags(rk4Cmd)
	rk4Cmd.Flags().IntVar(&refinement, "refine", config.DefaultRefinement, "refinement factor (accepted, has no effect)")

	convergenceCmd := &cobra.Command{
		Use:   "convergence [stepper...]",
		Short: "observed order of accuracy on y' = y",
		RunE:  runConvergence,
	}
	convergenceCmd.Flags().Float64Var(&convDuration, "time", 1, "integration interval")
	convergenceCmd.Flags().IntVar(&steps, "steps", 10, "coarsest step count")
	convergenceCmd.Flags().IntVar(&halvings, "halvings", 5, "number of refinements")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive Legendre explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer(degree)
		},
	}
	exploreCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "initial degree")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a kernel from a config file or preset",
		Args:  cobra.NoArgs,
		RunE:  runConfigured,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&rhsName, "rhs", config.DefaultRHS, "right-hand side (stepper kernels)")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count (stepper kernels)")
	runCmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "maximum degree (legendre)")
	runCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "series terms (sqrt)")
	addOutputFlags(runCmd)

	tuneCmd := &cobra.Command{
		Use:     "tune",
		Short:   "grid search kernel parameters for the smallest result scalar",
		Example: "  numkit tune --preset demo-sqrt25 --param sqrt.terms=1:5:5 --param sqrt.guess=1,3,6",
		Args:    cobra.NoArgs,
		RunE:    runTune,
	}
	tuneCmd.Flags().StringVar(&preset, "preset", "", "base preset")
	tuneCmd.Flags().StringArrayVar(&tuneParams, "param", nil, "name=lo:hi:n or name=v1,v2,...")
	tuneCmd.Flags().StringVar(&tuneScalar, "minimize", "iterations", "result scalar to minimise")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata and scalars",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run chart to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgFile, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [kernel]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kernel := ""
			if len(args) > 0 {
				kernel = args[0]
			}
			presets := config.ListPresets(kernel)
			if len(presets) == 0 {
				fmt.Printf("no presets for kernel: %s\n", kernel)
				return nil
			}
			for _, p := range presets {
				fmt.Printf("  %-16s %s\n", p, viz.Default.Muted.Render(config.Presets[p].Kernel))
			}
			return nil
		},
	}

	rootCmd.AddCommand(legendreCmd, sqrtCmd, sqrtBatchCmd, sweepCmd, eulerCmd, rk4Cmd, convergenceCmd,
		exploreCmd, runCmd, tuneCmd, scenarioCmd, listCmd, showCmd, plotCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.Default.Error.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&plot, "plot", false, "draw an ascii chart")
	cmd.Flags().BoolVar(&save, "save", false, "store the run under --data")
	cmd.Flags().StringVar(&label, "label", "", "label for a saved run")
}

func addSqrtFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&guess, "x0", config.DefaultGuess, "initial estimate")
	cmd.Flags().Float64Var(&tolerance, "eps", config.DefaultTolerance, "stop when |x^2 - a| < eps")
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration cap")
}

func addStepperFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rhsName, "rhs", config.DefaultRHS, "right-hand side: "+strings.Join(experiment.NewRegistry().ListRHS(), ", "))
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "integration interval T")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count N")
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial value")
	addOutputFlags(cmd)
}

func parseTargets(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

// execute runs cfg and saves the result when --save is set.
func execute(cfg *config.Config) (*experiment.Result, error) {
	result, err := experiment.New(cfg, nil).Run(context.Background())
	if err != nil {
		return nil, err
	}
	if save {
		if _, err := saveResult(result); err != nil {
			return nil, err
		}
	}
	return result, nil
}
