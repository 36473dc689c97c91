// Package optim searches kernel parameters for the configuration that
// minimises a result scalar.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/experiment"
)

// GridSearch evaluates the cartesian product of Ranges, one axis per
// entry of Params.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// ErrNoFiniteScalar is returned when runs succeed but none of them yields
// a finite value for the minimised scalar.
var ErrNoFiniteScalar = errors.New("optim: no run produced a finite scalar")

// Trial is one evaluated grid point. Comparable is false for failed runs
// and for runs whose scalar is NaN or ±Inf.
type Trial struct {
	Params     map[string]float64
	Value      float64
	Comparable bool
	Err        error
}

type Outcome struct {
	Best   map[string]float64
	Value  float64
	Trials []Trial
}

// Search runs base with every parameter combination applied and returns
// the combination with the smallest scalar. Failed runs and non-finite
// scalars are recorded but never win. It fails if no run is comparable or
// ctx is cancelled.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, registry *experiment.Registry, scalar string) (*Outcome, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, fmt.Errorf("grid search: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}
	if registry == nil {
		registry = experiment.NewRegistry()
	}

	out := &Outcome{Value: math.Inf(1)}
	err := g.searchRecursive(ctx, 0, map[string]float64{}, func(params map[string]float64) error {
		trial := Trial{Params: params, Value: math.NaN()}

		cfg := base.Clone()
		for name, v := range params {
			if err := cfg.SetParam(name, v); err != nil {
				return err
			}
		}

		result, err := experiment.New(cfg, registry).Run(ctx)
		switch {
		case err != nil:
			trial.Err = err
		default:
			v, ok := result.Scalars[scalar]
			if !ok {
				return fmt.Errorf("grid search: kernel %s has no scalar %q", result.Kernel, scalar)
			}
			trial.Value = v
			trial.Comparable = !math.IsNaN(v) && !math.IsInf(v, 0)
			if trial.Comparable && (out.Best == nil || v < out.Value) {
				out.Value, out.Best = v, params
			}
		}
		out.Trials = append(out.Trials, trial)
		return ctx.Err()
	})
	if err != nil {
		return out, err
	}
	if out.Best == nil {
		failed := 0
		for _, tr := range out.Trials {
			if tr.Err != nil {
				failed++
			}
		}
		if failed == len(out.Trials) {
			return out, fmt.Errorf("grid search: all %d runs failed", failed)
		}
		return out, fmt.Errorf("grid search: %s over %d successful runs (%d failed): %w",
			scalar, len(out.Trials)-failed, failed, ErrNoFiniteScalar)
	}
	return out, nil
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, visit func(map[string]float64) error) error {
	if depth == len(g.paramNames) {
		return visit(current)
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, visit); err != nil {
			return err
		}
	}
	return nil
}
