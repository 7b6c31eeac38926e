// Package bench runs the solvers side by side over a set of instances and
// collects their makespans.
package bench

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-rpq/pkg/rpq"
	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// Result holds the makespans of one instance under every solver. Exact is -1
// when the exact search was skipped.
type Result struct {
	RunID      string
	Instance   int
	Jobs       int
	Heuristic  int
	Preemptive int
	Exact      int
	Consistent bool
	Elapsed    time.Duration
}

// Runner compares the solvers over whole instances concurrently. A zero
// worker limit runs everything sequentially.
type Runner struct {
	Workers int
	Exact   bool
}

// Run solves every instance and reports one result per instance, in input
// order. The first solver error cancels the remaining work.
func (r *Runner) Run(ctx context.Context, instances [][]model.Job) ([]Result, error) {
	results := make([]Result, len(instances))

	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(workers)

	for idx, jobs := range instances {
		localIdx := idx
		localJobs := jobs

		errGrp.Go(func() error {
			result, err := r.solve(dCtx, localIdx, localJobs)
			if err != nil {
				return errors.Wrapf(err, "instance %d", localIdx)
			}

			results[localIdx] = result

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) solve(ctx context.Context, idx int, jobs []model.Job) (Result, error) {
	start := time.Now()

	sequence, err := rpq.Schrage(jobs)
	if err != nil {
		return Result{}, err
	}

	relaxed, err := rpq.SchragePreemptive(jobs)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		RunID:      uuid.NewString(),
		Instance:   idx,
		Jobs:       len(jobs),
		Heuristic:  sequence.Cmax(),
		Preemptive: relaxed.Cmax(),
		Exact:      -1,
	}

	if r.Exact {
		best, err := rpq.Carlier(ctx, jobs)
		if err != nil {
			return Result{}, err
		}

		result.Exact = best.Cmax()
	}

	// The preemptive makespan bounds the others from below; the exact one
	// never beats the heuristic. A violation means a solver bug, reported
	// as data rather than failing the whole run.
	result.Consistent = result.Preemptive <= result.Heuristic
	if result.Exact >= 0 {
		result.Consistent = result.Consistent &&
			result.Preemptive <= result.Exact && result.Exact <= result.Heuristic
	}

	result.Elapsed = time.Since(start)

	return result, nil
}
