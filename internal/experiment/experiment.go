package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/numkit/internal/config"
)

type Experiment struct {
	cfg      *config.Config
	registry *Registry
}

func New(cfg *config.Config, registry *Registry) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry}
}

// Run executes the configured kernel. The kernels themselves are not
// interruptible; ctx is checked before starting.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.cfg == nil {
		return nil, fmt.Errorf("experiment not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	kernel, err := e.registry.GetKernel(e.cfg.Kernel)
	if err != nil {
		return nil, err
	}
	return kernel(e.registry, e.cfg)
}
