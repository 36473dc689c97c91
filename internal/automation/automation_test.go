package automation

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/numkit/internal/experiment"
	"github.com/san-kum/numkit/internal/numeric"
)

const scenarioYAML = `
name: demo
description: every kernel once
steps:
  - name: table
    preset: demo-legendre
    config:
      legendre:
        degree: 4
  - name: root
    config:
      kernel: sqrt
      sqrt:
        target: 10
        terms: 3
    save: true
  - preset: demo-rk4
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)
	require.Equal(t, "demo", sc.Name)
	require.Len(t, sc.Steps, 3)

	cfg, err := sc.Steps[0].Resolve()
	require.NoError(t, err)
	require.Equal(t, "legendre", cfg.Kernel)
	require.Equal(t, 4, cfg.Legendre.Degree)
	require.Equal(t, 5, cfg.Legendre.Points)

	cfg, err = sc.Steps[1].Resolve()
	require.NoError(t, err)
	require.Equal(t, 3.0, cfg.Sqrt.Guess)
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	var saved []string
	sink := func(label string, res *experiment.Result) error {
		saved = append(saved, label)
		return nil
	}

	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), sink)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, []string{"root"}, saved)

	require.Equal(t, "table", results[0].Step)
	require.Len(t, results[0].Result.Columns, 6)
	require.InDelta(t, math.Sqrt(10), results[1].Result.Scalars["value"], 1e-13)
	require.Equal(t, "step-3", results[2].Step)
	require.Equal(t, "rk4", results[2].Result.Kernel)
}

func TestRunScenarioStopsOnFailure(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Name: "ok", Preset: "demo-sqrt25"},
		{Name: "bad", Preset: "missing"},
		{Name: "never", Preset: "demo-rk4"},
	}}
	results, err := RunScenario(context.Background(), sc, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad")
	require.Len(t, results, 1)
}

func TestRunScenarioKernelError(t *testing.T) {
	sc, err := ParseScenario([]byte(`
steps:
  - name: degree
    config:
      kernel: legendre
      legendre:
        degree: -1
`))
	require.NoError(t, err)
	_, err = RunScenario(context.Background(), sc, nil, nil)
	require.ErrorIs(t, err, numeric.ErrInvalidArgument)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.Len(t, sc.Steps, 3)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
