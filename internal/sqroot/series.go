package sqroot

import (
	"math"
	"math/big"
)

// Coefficient returns the k-th binomial-series coefficient of sqrt(1+r),
//
//	(-1)^k / ((1-2k) 4^k) * C(2k, k)
//
// C(2k, k) is computed exactly and rounded once.
func Coefficient(k int) float64 {
	if k == 0 {
		return 1
	}
	sign := 1.0
	if k%2 == 1 {
		sign = -1.0
	}
	coeff := sign / (float64(1-2*k) * math.Pow(4, float64(k)))
	return coeff * centralBinomial(k)
}

func centralBinomial(k int) float64 {
	b := new(big.Int).Binomial(int64(2*k), int64(k))
	f, _ := new(big.Float).SetInt(b).Float64()
	return f
}

// Term returns the k-th term of the correction factor at estimate x.
func Term(k int, delta, x float64) float64 {
	if k == 0 {
		return 1
	}
	return Coefficient(k) * math.Pow(delta/(x*x), float64(k))
}

// Correction sums terms 0..n.
func Correction(n int, delta, x float64) float64 {
	sum := 0.0
	for k := 0; k <= n; k++ {
		sum += Term(k, delta, x)
	}
	return sum
}
