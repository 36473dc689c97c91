package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"demo-legendre": {
		Kernel:   "legendre",
		Legendre: LegendreConfig{Degree: 3, Points: 5, Min: -1, Max: 1},
	},
	"plot-legendre": {
		Kernel:   "legendre",
		Legendre: LegendreConfig{Degree: 5, Points: 500, Min: -1, Max: 1},
	},
	"demo-sqrt25": {
		Kernel: "sqrt",
		Sqrt:   SqrtConfig{Target: 25, Terms: 2, Guess: 3, Tolerance: 1e-13, MaxIterations: DefaultMaxIter},
	},
	"demo-sqrt10": {
		Kernel: "sqrt",
		Sqrt:   SqrtConfig{Target: 10, Terms: 3, Guess: 3, Tolerance: 1e-13, MaxIterations: DefaultMaxIter},
	},
	"demo-sqrt16": {
		Kernel: "sqrt",
		Sqrt:   SqrtConfig{Target: 16, Terms: 5, Guess: 3, Tolerance: 1e-6, MaxIterations: DefaultMaxIter},
	},
	"demo-euler": {
		Kernel:  "euler",
		Stepper: StepperConfig{RHS: "inverse", Duration: 5, Steps: 10, Y0: 1, Y1: -1 + math.Sqrt(5)},
	},
	"demo-rk4": {
		Kernel:  "rk4",
		Stepper: StepperConfig{RHS: "inverse", Duration: 5, Steps: 10, Refinement: 5, Y0: 1},
	},
	"growth-rk4": {
		Kernel:  "rk4",
		Stepper: StepperConfig{RHS: "growth", Duration: 1, Steps: 20, Y0: 1},
	},
	"growth-euler": {
		Kernel:  "euler",
		Stepper: StepperConfig{RHS: "growth", Duration: 1, Steps: 20, Y0: 1, Y1: math.Exp(0.05)},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns preset names, sorted. A non-empty kernel filters the
// list to presets for that kernel.
func ListPresets(kernel string) []string {
	names := make([]string, 0, len(Presets))
	for name, cfg := range Presets {
		if kernel != "" && cfg.Kernel != kernel {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
