package legendre

import (
	"testing"

	"github.com/san-kum/numkit/internal/numeric"
)

func BenchmarkEvaluate(b *testing.B) {
	x := numeric.Linspace(-1, 1, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Evaluate(x, 20)
	}
}

func BenchmarkEvaluateParallel(b *testing.B) {
	x := numeric.Linspace(-1, 1, 100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EvaluateParallel(x, 20, 0)
	}
}
