package batch

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/sqroot"
)

func TestSqrtPreservesOrder(t *testing.T) {
	targets := []float64{2, 3, 5, 7, 10, 11, 13, 17, 19, 23}
	jobs := Jobs(targets, 3, 3, 1e-12, 0)

	results, err := Sqrt(context.Background(), jobs, 3)
	require.NoError(t, err)
	require.Len(t, results, len(targets))
	for i, a := range targets {
		require.InDelta(t, math.Sqrt(a), results[i].Value, 1e-12, "a=%v", a)
	}
}

func TestSqrtMatchesSerial(t *testing.T) {
	jobs := Jobs([]float64{4, 9, 30}, 2, 3, 1e-13, 0)
	results, err := Sqrt(context.Background(), jobs, 0)
	require.NoError(t, err)

	for i, job := range jobs {
		want, err := sqroot.Approximate(job.Target, job.Terms, job.Guess, job.Tolerance)
		require.NoError(t, err)
		require.Equal(t, want, results[i])
	}
}

func TestSqrtFailure(t *testing.T) {
	jobs := []SqrtJob{
		{Target: 4, Terms: 2, Guess: 3, Tolerance: 1e-10},
		{Target: 4, Terms: 2, Guess: 0, Tolerance: 1e-10},
	}
	_, err := Sqrt(context.Background(), jobs, 1)
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)
	require.Contains(t, err.Error(), "job 1")
}

func TestSqrtIterationCap(t *testing.T) {
	jobs := Jobs([]float64{2}, 0, 1, 1e-10, 5)
	_, err := Sqrt(context.Background(), jobs, 1)
	require.ErrorIs(t, err, numeric.ErrNotConverged)
}

func TestSqrtCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sqrt(ctx, Jobs([]float64{2, 3}, 2, 1, 1e-10, 0), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSqrtEmpty(t *testing.T) {
	results, err := Sqrt(context.Background(), nil, 4)
	require.NoError(t, err)
	require.Empty(t, results)
}
