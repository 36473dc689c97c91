package numeric

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"
)

func TestVector_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		valid bool
	}{
		{"empty", Vector{}, true},
		{"normal", Vector{1.0, 2.0, 3.0}, true},
		{"with NaN", Vector{1.0, math.NaN()}, false},
		{"with +Inf", Vector{1.0, math.Inf(1)}, false},
		{"with -Inf", Vector{math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestLinspace(t *testing.T) {
	v := Linspace(-1, 1, 5)
	want := Vector{-1, -0.5, 0, 0.5, 1}
	if len(v) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(v))
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, v[i], want[i])
		}
	}

	if got := Linspace(0, 3, 1); len(got) != 1 || got[0] != 0 {
		t.Errorf("single point linspace: got %v", got)
	}
	if got := Linspace(0, 3, 0); len(got) != 0 {
		t.Errorf("empty linspace: got %v", got)
	}

	// endpoint is exact even when the step is not representable
	v = Linspace(0, 1, 11)
	if v[10] != 1 {
		t.Errorf("endpoint not pinned: %v", v[10])
	}
}

func TestGrid(t *testing.T) {
	g := Grid{Duration: 5, Steps: 10}
	if err := g.Validate(); err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
	if g.StepSize() != 0.5 {
		t.Errorf("step size: got %v", g.StepSize())
	}
	times := g.Times()
	if len(times) != 11 {
		t.Fatalf("expected 11 times, got %d", len(times))
	}
	if times[0] != 0 || times[10] != 5 {
		t.Errorf("grid bounds: %v .. %v", times[0], times[10])
	}

	bad := []Grid{
		{Duration: 0, Steps: 10},
		{Duration: -1, Steps: 10},
		{Duration: math.NaN(), Steps: 10},
		{Duration: math.Inf(1), Steps: 10},
		{Duration: 1, Steps: 0},
	}
	for _, g := range bad {
		if err := g.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("grid %+v: expected ErrInvalidArgument, got %v", g, err)
		}
	}
}

func TestTable(t *testing.T) {
	tab := NewTable(3, 4)
	if tab.Rows() != 3 || tab.Cols() != 4 {
		t.Fatalf("shape: %dx%d", tab.Rows(), tab.Cols())
	}
	tab[2][1] = 7
	col := tab.Column(1)
	if col[2] != 7 {
		t.Errorf("column copy: got %v", col)
	}
	col[2] = 0
	if tab[2][1] != 7 {
		t.Error("Column did not copy")
	}
	if (Table{}).Cols() != 0 {
		t.Error("empty table should have zero columns")
	}
}

func TestTrajectoryFinal(t *testing.T) {
	tr := &Trajectory{Times: Vector{0, 1}, Values: Vector{3, 4}}
	tt, y := tr.Final()
	if tt != 1 || y != 4 {
		t.Errorf("Final() = %v, %v", tt, y)
	}
	if !tr.IsValid() {
		t.Error("expected valid trajectory")
	}
}

func TestIterationError(t *testing.T) {
	err := &IterationError{Iteration: 12, Estimate: 0.5, Wrapped: ErrNotConverged}
	want := "iteration 12 (x=0.5): numeric: iteration did not converge"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrNotConverged) {
		t.Error("IterationError does not unwrap")
	}
	if !errors.Is(Invalid("p=%d", -1), ErrInvalidArgument) {
		t.Error("Invalid does not wrap ErrInvalidArgument")
	}
}

func TestParallelFor(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8} {
		var covered int64
		seen := make([]int32, 1000)
		ParallelFor(len(seen), 16, workers, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
			atomic.AddInt64(&covered, int64(end-start))
		})
		if covered != int64(len(seen)) {
			t.Errorf("workers=%d: covered %d of %d", workers, covered, len(seen))
		}
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("workers=%d: index %d visited %d times", workers, i, c)
			}
		}
	}
}
