package rpq_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-rpq/internal/generator"
	"github.com/askiada/go-rpq/pkg/rpq"
	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// bruteForceCmax tries every order of the jobs and returns the minimal
// makespan. Only usable for small instances.
func bruteForceCmax(jobs []model.Job) int {
	order := append(model.Sequence(nil), jobs...)
	best := order.Cmax()

	var permute func(k int)

	permute = func(k int) {
		if k == len(order) {
			if cmax := order.Cmax(); cmax < best {
				best = cmax
			}

			return
		}

		for i := k; i < len(order); i++ {
			order[k], order[i] = order[i], order[k]
			permute(k + 1)
			order[k], order[i] = order[i], order[k]
		}
	}

	permute(0)

	return best
}

func TestCarlierNoJobs(t *testing.T) {
	t.Parallel()

	_, err := rpq.Carlier(context.Background(), nil)
	require.ErrorIs(t, err, rpq.ErrNoJobs)
}

func TestCarlierSingleJob(t *testing.T) {
	t.Parallel()

	jobs := []model.Job{model.New(4, 3, 2)}

	best, err := rpq.Carlier(context.Background(), jobs)
	require.NoError(t, err)
	assert.Equal(t, model.Sequence(jobs), best)
	assert.Equal(t, 9, best.Cmax())
}

func TestCarlierBeatsHeuristic(t *testing.T) {
	t.Parallel()

	// The greedy order of this instance reaches 53; the optimum is 50.
	jobs := []model.Job{
		model.New(10, 5, 7),
		model.New(13, 6, 26),
		model.New(11, 7, 24),
		model.New(20, 4, 21),
		model.New(30, 3, 8),
		model.New(0, 6, 17),
		model.New(30, 2, 0),
	}

	sequence, err := rpq.Schrage(jobs)
	require.NoError(t, err)
	require.Equal(t, 53, sequence.Cmax())

	best, err := rpq.Carlier(context.Background(), jobs)
	require.NoError(t, err)
	assert.Equal(t, 50, best.Cmax())
	assert.ElementsMatch(t, model.Sequence(jobs), best)
}

func TestCarlierMatchesBruteForce(t *testing.T) {
	t.Parallel()

	gen := generator.New(3)

	for i := 0; i < 20; i++ {
		jobs := gen.Instance(7)

		best, err := rpq.Carlier(context.Background(), jobs)
		require.NoError(t, err)
		assert.Equal(t, bruteForceCmax(jobs), best.Cmax(), "instance %d: %v", i, jobs)
		assert.ElementsMatch(t, model.Sequence(jobs), best)
	}
}

func TestCarlierSandwichedBySchrage(t *testing.T) {
	t.Parallel()

	jobs := []model.Job{
		model.New(162, 52, 241),
		model.New(103, 68, 470),
		model.New(39, 38, 340),
		model.New(394, 34, 400),
		model.New(15, 86, 700),
		model.New(144, 73, 536),
		model.New(51, 52, 403),
		model.New(233, 68, 23),
		model.New(183, 17, 641),
		model.New(728, 18, 640),
		model.New(667, 80, 92),
		model.New(57, 21, 76),
		model.New(35, 37, 386),
		model.New(567, 71, 618),
		model.New(226, 5, 629),
		model.New(162, 80, 575),
		model.New(588, 45, 632),
		model.New(556, 23, 79),
		model.New(715, 8, 93),
		model.New(598, 45, 200),
	}

	sequence, err := rpq.Schrage(jobs)
	require.NoError(t, err)

	relaxed, err := rpq.SchragePreemptive(jobs)
	require.NoError(t, err)

	best, err := rpq.Carlier(context.Background(), jobs)
	require.NoError(t, err)

	assert.LessOrEqual(t, relaxed.Cmax(), best.Cmax())
	assert.LessOrEqual(t, best.Cmax(), sequence.Cmax())
}

func TestCarlierCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := generator.New(11).Instance(40)

	_, err := rpq.Carlier(ctx, jobs)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
