package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultKernel     = "legendre"
	DefaultDegree     = 3
	DefaultPoints     = 5
	DefaultTarget     = 25.0
	DefaultTerms      = 2
	DefaultGuess      = 3.0
	DefaultTolerance  = 1e-13
	DefaultMaxIter    = 1000
	DefaultRHS        = "inverse"
	DefaultDuration   = 5.0
	DefaultSteps      = 10
	DefaultRefinement = 5
	DefaultY0         = 1.0
)

// DefaultY1 is the exact value of y' = 1/(1+y), y(0) = 1 at t = 0.5.
var DefaultY1 = -1 + math.Sqrt(5)

type Config struct {
	Kernel   string         `yaml:"kernel"`
	Legendre LegendreConfig `yaml:"legendre"`
	Sqrt     SqrtConfig     `yaml:"sqrt"`
	Stepper  StepperConfig  `yaml:"stepper"`
}

type LegendreConfig struct {
	Degree int     `yaml:"degree"`
	Points int     `yaml:"points"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	// Workers > 1 splits the sample columns across goroutines.
	Workers int `yaml:"workers,omitempty"`
}

type SqrtConfig struct {
	Target        float64 `yaml:"target"`
	Terms         int     `yaml:"terms"`
	Guess         float64 `yaml:"guess"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

type StepperConfig struct {
	RHS        string  `yaml:"rhs"`
	Duration   float64 `yaml:"duration"`
	Steps      int     `yaml:"steps"`
	Refinement int     `yaml:"refinement"`
	Y0         float64 `yaml:"y0"`
	Y1         float64 `yaml:"y1"`
}

func DefaultConfig() *Config {
	return &Config{
		Kernel: DefaultKernel,
		Legendre: LegendreConfig{
			Degree: DefaultDegree,
			Points: DefaultPoints,
			Min:    -1,
			Max:    1,
		},
		Sqrt: SqrtConfig{
			Target:        DefaultTarget,
			Terms:         DefaultTerms,
			Guess:         DefaultGuess,
			Tolerance:     DefaultTolerance,
			MaxIterations: DefaultMaxIter,
		},
		Stepper: StepperConfig{
			RHS:        DefaultRHS,
			Duration:   DefaultDuration,
			Steps:      DefaultSteps,
			Refinement: DefaultRefinement,
			Y0:         DefaultY0,
			Y1:         DefaultY1,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy; presets are shared and must not be mutated.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// SetParam assigns a numeric field by its dotted yaml path, e.g.
// "sqrt.guess" or "stepper.steps". Integer fields are rounded.
func (c *Config) SetParam(name string, v float64) error {
	n := int(math.Round(v))
	switch name {
	case "legendre.degree":
		c.Legendre.Degree = n
	case "legendre.points":
		c.Legendre.Points = n
	case "legendre.min":
		c.Legendre.Min = v
	case "legendre.max":
		c.Legendre.Max = v
	case "sqrt.target":
		c.Sqrt.Target = v
	case "sqrt.terms":
		c.Sqrt.Terms = n
	case "sqrt.guess":
		c.Sqrt.Guess = v
	case "sqrt.tolerance":
		c.Sqrt.Tolerance = v
	case "sqrt.max_iterations":
		c.Sqrt.MaxIterations = n
	case "stepper.duration":
		c.Stepper.Duration = v
	case "stepper.steps":
		c.Stepper.Steps = n
	case "stepper.y0":
		c.Stepper.Y0 = v
	case "stepper.y1":
		c.Stepper.Y1 = v
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
