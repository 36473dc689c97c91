package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/optim"
	"github.com/san-kum/numkit/internal/viz"
)

func runTune(cmd *cobra.Command, args []string) error {
	base := config.DefaultConfig()
	if preset != "" {
		base = config.GetPreset(preset)
		if base == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(""))
		}
	}
	if len(tuneParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}

	names := make([]string, len(tuneParams))
	ranges := make([][]float64, len(tuneParams))
	for i, spec := range tuneParams {
		name, values, err := parseParamRange(spec)
		if err != nil {
			return err
		}
		names[i], ranges[i] = name, values
	}

	out, err := optim.NewGridSearch(names, ranges).Search(context.Background(), base, nil, tuneScalar)
	if err != nil {
		return err
	}

	fmt.Println(viz.Default.Heading(fmt.Sprintf("%s: minimise %s over %d runs", base.Kernel, tuneScalar, len(out.Trials))))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(names, "\t"))+"\t"+strings.ToUpper(tuneScalar))
	for _, tr := range out.Trials {
		for _, n := range names {
			fmt.Fprintf(w, "%g\t", tr.Params[n])
		}
		if tr.Err != nil {
			fmt.Fprintln(w, viz.Default.Error.Render("failed"))
			continue
		}
		fmt.Fprintf(w, "%g\n", tr.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(viz.Default.KV(out.Best))
	fmt.Printf("  %s %s\n", viz.Default.Label.Render(tuneScalar), viz.Default.Value.Render(fmt.Sprintf("%g", out.Value)))
	return nil
}

// parseParamRange accepts "name=lo:hi:n" (n evenly spaced values) or
// "name=v1,v2,...".
func parseParamRange(spec string) (string, []float64, error) {
	name, rest, ok := strings.Cut(spec, "=")
	if !ok || name == "" || rest == "" {
		return "", nil, fmt.Errorf("invalid --param %q: want name=lo:hi:n or name=v1,v2", spec)
	}

	if parts := strings.Split(rest, ":"); len(parts) == 3 {
		lo, err1 := strconv.ParseFloat(parts[0], 64)
		hi, err2 := strconv.ParseFloat(parts[1], 64)
		n, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || n < 1 {
			return "", nil, fmt.Errorf("invalid range in --param %q", spec)
		}
		return name, numeric.Linspace(lo, hi, n), nil
	}

	var values []float64
	for _, f := range strings.Split(rest, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid value in --param %q: %w", spec, err)
		}
		values = append(values, v)
	}
	sort.Float64s(values)
	return name, values, nil
}
