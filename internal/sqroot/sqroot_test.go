package sqroot_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/sqroot"
)

var _ = Describe("Coefficient", func() {
	DescribeTable("matches the binomial series of sqrt(1+r)",
		func(k int, want float64) {
			Expect(sqroot.Coefficient(k)).To(Equal(want))
		},
		Entry("k=0", 0, 1.0),
		Entry("k=1", 1, 0.5),
		Entry("k=2", 2, -0.125),
		Entry("k=3", 3, 0.0625),
		Entry("k=4", 4, -0.0390625),
	)

	It("sums to sqrt(1+r) for small r", func() {
		r := 0.1
		Expect(sqroot.Correction(12, r, 1)).To(BeNumerically("~", math.Sqrt(1+r), 1e-15))
	})

	It("has a zeroth term of one regardless of the estimate", func() {
		Expect(sqroot.Term(0, 123, 0.5)).To(Equal(1.0))
	})

	It("scales the k-th term by (delta/x^2)^k", func() {
		Expect(sqroot.Term(2, 8, 2)).To(BeNumerically("~", -0.125*4, 1e-15))
	})
})

var _ = Describe("Approximate", func() {
	It("converges to 5 for a=25, N=2, x0=3", func() {
		res, err := sqroot.Approximate(25, 2, 3, 1e-13)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.Abs(res.Value*res.Value - 25)).To(BeNumerically("<=", 1e-13))
		Expect(res.Value).To(BeNumerically("~", 5, 1e-14))
		Expect(res.Iterations).To(Equal(4))
	})

	It("converges to 4 for a=16, N=5, x0=3", func() {
		res, err := sqroot.Approximate(16, 5, 3, 1e-6)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(BeNumerically("~", 4, 1e-6))
		Expect(res.Residual).To(BeNumerically("<=", 1e-6))
		Expect(res.Iterations).To(Equal(2))
	})

	It("converges to sqrt(10) for N=3", func() {
		res, err := sqroot.Approximate(10, 3, 3, 1e-13)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(BeNumerically("~", math.Sqrt(10), 1e-13))
		Expect(res.Iterations).To(Equal(2))
	})

	It("returns immediately when x0 is already exact", func() {
		res, err := sqroot.Approximate(16, 3, 4, 1e-12)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(Equal(4.0))
		Expect(res.Iterations).To(Equal(0))
	})

	It("converges to the negative root from a negative guess", func() {
		res, err := sqroot.Approximate(9, 2, -2, 1e-12)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(BeNumerically("~", -3, 1e-12))
	})

	It("needs fewer passes with more terms", func() {
		newton, err := sqroot.Approximate(25, 1, 3, 1e-13)
		Expect(err).NotTo(HaveOccurred())
		higher, err := sqroot.Approximate(25, 6, 3, 1e-13)
		Expect(err).NotTo(HaveOccurred())
		Expect(higher.Iterations).To(BeNumerically("<", newton.Iterations))
	})

	It("reports every estimate to the observer", func() {
		var seen []int
		var last float64
		res, err := sqroot.Approximate(25, 2, 3, 1e-13, sqroot.WithObserver(func(i int, x, residual float64) {
			seen = append(seen, i)
			last = x
		}))
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(HaveLen(res.Iterations + 1))
		Expect(seen[0]).To(Equal(0))
		Expect(last).To(Equal(res.Value))
	})

	Context("failures", func() {
		It("fails with division by zero for a zero guess", func() {
			_, err := sqroot.Approximate(4, 2, 0, 1e-8)
			Expect(err).To(MatchError(numeric.ErrDivisionByZero))

			var iterErr *numeric.IterationError
			Expect(err).To(BeAssignableToTypeOf(iterErr))
		})

		It("fails with not converged when the cap is hit", func() {
			_, err := sqroot.Approximate(25, 1, 3, 1e-13, sqroot.WithMaxIterations(2))
			Expect(err).To(MatchError(numeric.ErrNotConverged))
		})

		It("never moves with zero terms", func() {
			_, err := sqroot.Approximate(2, 0, 1, 1e-6, sqroot.WithMaxIterations(50))
			Expect(err).To(MatchError(numeric.ErrNotConverged))
		})

		It("reports a non-finite estimate as not converged", func() {
			// x0^2 underflows to zero, so delta/x^2 is infinite
			_, err := sqroot.Approximate(1e10, 2, 1e-300, 1e-9)
			Expect(err).To(MatchError(numeric.ErrNotConverged))
		})

		DescribeTable("rejects invalid arguments",
			func(a float64, n int, x0, eps float64) {
				_, err := sqroot.Approximate(a, n, x0, eps)
				Expect(err).To(MatchError(numeric.ErrInvalidArgument))
			},
			Entry("zero target", 0.0, 2, 1.0, 1e-6),
			Entry("negative target", -4.0, 2, 1.0, 1e-6),
			Entry("infinite target", math.Inf(1), 2, 1.0, 1e-6),
			Entry("negative terms", 4.0, -1, 1.0, 1e-6),
			Entry("zero tolerance", 4.0, 2, 1.0, 0.0),
			Entry("NaN tolerance", 4.0, 2, 1.0, math.NaN()),
			Entry("NaN guess", 4.0, 2, math.NaN(), 1e-6),
		)
	})
})

var _ = Describe("Sweep", func() {
	It("records one point per term count", func() {
		points, err := sqroot.Sweep(10, 3, 1e-12, []int{1, 2, 3, 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(4))
		for _, p := range points {
			Expect(p.RelativeError).To(BeNumerically("<", 1e-12))
			Expect(p.Value).To(BeNumerically("~", math.Sqrt(10), 1e-12))
		}
		Expect(points[3].Iterations).To(BeNumerically("<=", points[0].Iterations))
	})

	It("stops at the first failing term count", func() {
		points, err := sqroot.Sweep(10, 3, 1e-12, []int{2, 0, 3}, sqroot.WithMaxIterations(10))
		Expect(err).To(MatchError(numeric.ErrNotConverged))
		Expect(points).To(HaveLen(1))
	})
})

var _ = Describe("RelativeError", func() {
	It("is zero for the exact root", func() {
		Expect(sqroot.RelativeError(3, 9)).To(Equal(0.0))
	})

	It("scales by the exact root", func() {
		Expect(sqroot.RelativeError(2.2, 4)).To(BeNumerically("~", 0.1, 1e-15))
	})
})
