// Package metrics accumulates per-sample statistics over a trajectory.
package metrics

import "math"

// Metric observes (t, y) samples one at a time.
type Metric interface {
	Name() string
	Observe(t, y float64)
	Value() float64
	Reset()
}

// Observe feeds every sample of ts/ys to each metric and returns the
// values by name.
func Observe(ts, ys []float64, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i := range ts {
			m.Observe(ts[i], ys[i])
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// MaxError is the largest |y - exact(t)| seen.
type MaxError struct {
	exact func(float64) float64
	max   float64
}

func NewMaxError(exact func(float64) float64) *MaxError {
	return &MaxError{exact: exact}
}

func (m *MaxError) Name() string { return "max_error" }

func (m *MaxError) Observe(t, y float64) {
	if e := math.Abs(y - m.exact(t)); e > m.max || math.IsNaN(e) {
		m.max = e
	}
}

func (m *MaxError) Value() float64 { return m.max }

func (m *MaxError) Reset() { m.max = 0 }

// RMSError is the root mean square of y - exact(t).
type RMSError struct {
	exact   func(float64) float64
	sumSq   float64
	samples int
}

func NewRMSError(exact func(float64) float64) *RMSError {
	return &RMSError{exact: exact}
}

func (r *RMSError) Name() string { return "rms_error" }

func (r *RMSError) Observe(t, y float64) {
	d := y - r.exact(t)
	r.sumSq += d * d
	r.samples++
}

func (r *RMSError) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMSError) Reset() {
	r.sumSq = 0
	r.samples = 0
}

// Stability is the fraction of samples that stay finite with
// |y| <= threshold.
type Stability struct {
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{threshold: threshold}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(t, y float64) {
	s.samples++
	if !(math.Abs(y) <= s.threshold) {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
