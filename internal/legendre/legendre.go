package legendre

import "github.com/san-kum/numkit/internal/numeric"

// Evaluate returns a (p+1) x len(x) table whose row n holds P_n at every
// sample of x.
func Evaluate(x []float64, p int) (numeric.Table, error) {
	if p < 0 {
		return nil, numeric.Invalid("legendre: degree must be non-negative, got %d", p)
	}
	table := numeric.NewTable(p+1, len(x))
	fill(table, x, 0, len(x))
	return table, nil
}

// EvaluateParallel computes the same table as Evaluate with the sample
// columns split across workers. workers <= 0 uses GOMAXPROCS.
func EvaluateParallel(x []float64, p, workers int) (numeric.Table, error) {
	if p < 0 {
		return nil, numeric.Invalid("legendre: degree must be non-negative, got %d", p)
	}
	table := numeric.NewTable(p+1, len(x))
	numeric.ParallelFor(len(x), minChunk, workers, func(start, end int) {
		fill(table, x, start, end)
	})
	return table, nil
}

const minChunk = 256

// fill runs the recurrence over columns [start, end).
func fill(table numeric.Table, x []float64, start, end int) {
	p := len(table) - 1
	for j := start; j < end; j++ {
		table[0][j] = 1
	}
	if p >= 1 {
		copy(table[1][start:end], x[start:end])
	}
	for n := 2; n <= p; n++ {
		a := float64(2*n - 1)
		b := float64(n - 1)
		d := float64(n)
		prev, prev2, row := table[n-1], table[n-2], table[n]
		for j := start; j < end; j++ {
			// conversions stop the products being fused into an FMA
			row[j] = (float64(a*x[j]*prev[j]) - float64(b*prev2[j])) / d
		}
	}
}

// At returns P_n(x) keeping only the last two degrees.
func At(x float64, n int) (float64, error) {
	if n < 0 {
		return 0, numeric.Invalid("legendre: degree must be non-negative, got %d", n)
	}
	if n == 0 {
		return 1, nil
	}
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		p0, p1 = p1, (float64(float64(2*k-1)*x*p1)-float64(float64(k-1)*p0))/float64(k)
	}
	return p1, nil
}
