// Package batch runs independent kernel calls concurrently.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/numkit/internal/sqroot"
)

type SqrtJob struct {
	Target    float64
	Terms     int
	Guess     float64
	Tolerance float64
	MaxIter   int
}

// Sqrt approximates every job on at most workers goroutines. Results are in
// job order. The first failure cancels jobs that have not started yet.
func Sqrt(ctx context.Context, jobs []SqrtJob, workers int) ([]sqroot.Result, error) {
	results := make([]sqroot.Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var opts []sqroot.Option
			if job.MaxIter > 0 {
				opts = append(opts, sqroot.WithMaxIterations(job.MaxIter))
			}
			res, err := sqroot.Approximate(job.Target, job.Terms, job.Guess, job.Tolerance, opts...)
			if err != nil {
				return fmt.Errorf("job %d (a=%g): %w", i, job.Target, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Jobs builds one job per target sharing the remaining parameters.
func Jobs(targets []float64, terms int, guess, tol float64, maxIter int) []SqrtJob {
	jobs := make([]SqrtJob, len(targets))
	for i, a := range targets {
		jobs[i] = SqrtJob{Target: a, Terms: terms, Guess: guess, Tolerance: tol, MaxIter: maxIter}
	}
	return jobs
}
