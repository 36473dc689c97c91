package experiment

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/numkit/internal/numeric"
)

// RHS is a named right-hand side with an optional closed-form solution
// for y(0) = Y0.
type RHS struct {
	F     numeric.Derivative
	Exact func(t float64) float64
	Y0    float64
}

type Registry struct {
	rhs     map[string]RHS
	kernels map[string]Kernel
}

func NewRegistry() *Registry {
	r := &Registry{
		rhs:     make(map[string]RHS),
		kernels: make(map[string]Kernel),
	}

	r.rhs["inverse"] = RHS{
		F:     func(t, y float64) float64 { return 1 / (1 + y) },
		Exact: func(t float64) float64 { return -1 + math.Sqrt(2*t+4) },
		Y0:    1,
	}
	r.rhs["growth"] = RHS{
		F:     func(t, y float64) float64 { return y },
		Exact: math.Exp,
		Y0:    1,
	}
	r.rhs["decay"] = RHS{
		F:     func(t, y float64) float64 { return -y },
		Exact: func(t float64) float64 { return math.Exp(-t) },
		Y0:    1,
	}
	r.rhs["logistic"] = RHS{
		F:     func(t, y float64) float64 { return y * (1 - y) },
		Exact: func(t float64) float64 { return 1 / (1 + math.Exp(-t)) },
		Y0:    0.5,
	}

	r.kernels["legendre"] = runLegendre
	r.kernels["sqrt"] = runSqrt
	r.kernels["euler"] = runEuler
	r.kernels["rk4"] = runRK4

	return r
}

func (r *Registry) GetRHS(name string) (RHS, error) {
	rhs, ok := r.rhs[name]
	if !ok {
		return RHS{}, fmt.Errorf("unknown rhs: %s", name)
	}
	return rhs, nil
}

// RegisterRHS adds or replaces a right-hand side.
func (r *Registry) RegisterRHS(name string, rhs RHS) {
	r.rhs[name] = rhs
}

func (r *Registry) GetKernel(name string) (Kernel, error) {
	k, ok := r.kernels[name]
	if !ok {
		return nil, fmt.Errorf("unknown kernel: %s", name)
	}
	return k, nil
}

func (r *Registry) ListRHS() []string {
	return sortedKeys(r.rhs)
}

func (r *Registry) ListKernels() []string {
	return sortedKeys(r.kernels)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
