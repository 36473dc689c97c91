package sqroot

import "fmt"

type SweepPoint struct {
	Terms         int
	Value         float64
	Iterations    int
	RelativeError float64
}

// Sweep runs Approximate once per term count so the accuracy and
// iteration count of different truncations can be compared.
func Sweep(a, x0, eps float64, terms []int, opts ...Option) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(terms))
	for _, n := range terms {
		res, err := Approximate(a, n, x0, eps, opts...)
		if err != nil {
			return points, fmt.Errorf("terms=%d: %w", n, err)
		}
		points = append(points, SweepPoint{
			Terms:         n,
			Value:         res.Value,
			Iterations:    res.Iterations,
			RelativeError: RelativeError(res.Value, a),
		})
	}
	return points, nil
}
