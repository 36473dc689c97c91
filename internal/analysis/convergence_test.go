package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/numkit/internal/numeric"
)

func growth(t, y float64) float64 { return y }

func TestConvergenceRK4IsFourthOrder(t *testing.T) {
	points, err := Convergence(RK4(), growth, math.Exp, 1, 1, halvings(t, 8, 5))
	require.NoError(t, err)
	require.Len(t, points, 5)
	require.True(t, math.IsNaN(points[0].Order))

	for i := 1; i < len(points); i++ {
		require.Less(t, points[i].Error, points[i-1].Error)
		require.InDelta(t, 4.0, points[i].Order, 0.15)
	}
	require.InDelta(t, 4.0, EstimateOrder(points), 0.1)
}

func TestConvergenceEulerIsFirstOrder(t *testing.T) {
	points, err := Convergence(Euler(), growth, math.Exp, 1, 1, halvings(t, 64, 5))
	require.NoError(t, err)

	for i := 1; i < len(points); i++ {
		require.InDelta(t, 1.0, points[i].Order, 0.1)
	}
	require.InDelta(t, 1.0, EstimateOrder(points), 0.05)
}

func TestConvergenceRK4BeatsEuler(t *testing.T) {
	steps := []int{32}
	e, err := Convergence(Euler(), growth, math.Exp, 1, 1, steps)
	require.NoError(t, err)
	r, err := Convergence(RK4(), growth, math.Exp, 1, 1, steps)
	require.NoError(t, err)
	require.Less(t, r[0].Error, e[0].Error)
}

func TestConvergenceErrors(t *testing.T) {
	_, err := Convergence(nil, growth, math.Exp, 1, 1, []int{4})
	require.ErrorIs(t, err, numeric.ErrInvalidArgument)

	points, err := Convergence(RK4(), growth, math.Exp, 1, 1, []int{4, 0})
	require.ErrorIs(t, err, numeric.ErrInvalidArgument)
	require.Len(t, points, 1)
}

func TestObservedOrder(t *testing.T) {
	require.InDelta(t, 4.0, ObservedOrder(16e-8, 1e-8, 2), 1e-12)
	require.InDelta(t, 1.0, ObservedOrder(0.2, 0.1, 2), 1e-12)
	require.InDelta(t, 2.0, ObservedOrder(9e-2, 1e-2, 3), 1e-12)
}

func TestEstimateOrderUndefined(t *testing.T) {
	require.True(t, math.IsNaN(EstimateOrder(nil)))
	require.True(t, math.IsNaN(EstimateOrder([]ConvergencePoint{{Order: math.NaN()}})))
}

func TestConvergenceUsesStepRatio(t *testing.T) {
	// tripling N must still report first order for Euler
	points, err := Convergence(Euler(), growth, math.Exp, 1, 1, []int{100, 300, 900})
	require.NoError(t, err)
	for _, p := range points[1:] {
		require.InDelta(t, 1.0, p.Order, 0.05)
	}
}

func halvings(t *testing.T, n0, count int) []int {
	t.Helper()
	steps, err := Halvings(n0, count)
	require.NoError(t, err)
	return steps
}

func TestHalvings(t *testing.T) {
	require.Equal(t, []int{5, 10, 20, 40}, halvings(t, 5, 4))
	require.Empty(t, halvings(t, 5, 0))

	tests := []struct {
		name      string
		n0, count int
	}{
		{"negative count", 10, -1},
		{"zero start", 0, 3},
		{"negative start", -4, 3},
		{"overflow", 10, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Halvings(tt.n0, tt.count)
			require.ErrorIs(t, err, numeric.ErrInvalidArgument)
		})
	}
}
