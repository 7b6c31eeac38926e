package bench_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-rpq/internal/bench"
	"github.com/askiada/go-rpq/internal/generator"
	"github.com/askiada/go-rpq/pkg/rpq/model"
)

func TestRunnerExact(t *testing.T) {
	t.Parallel()

	gen := generator.New(5)

	instances := make([][]model.Job, 0, 8)
	for i := 0; i < 8; i++ {
		instances = append(instances, gen.Instance(10))
	}

	runner := &bench.Runner{Workers: 4, Exact: true}

	results, err := runner.Run(context.Background(), instances)
	require.NoError(t, err)
	require.Len(t, results, len(instances))

	seen := make(map[string]struct{})

	for i, result := range results {
		assert.Equal(t, i, result.Instance)
		assert.Equal(t, 10, result.Jobs)
		assert.NotEmpty(t, result.RunID)
		assert.True(t, result.Consistent, "instance %d", i)
		assert.LessOrEqual(t, result.Preemptive, result.Exact)
		assert.LessOrEqual(t, result.Exact, result.Heuristic)

		seen[result.RunID] = struct{}{}
	}

	assert.Len(t, seen, len(results))
}

func TestRunnerHeuristicOnly(t *testing.T) {
	t.Parallel()

	runner := &bench.Runner{}

	results, err := runner.Run(context.Background(), [][]model.Job{generator.New(9).Instance(12)})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, -1, results[0].Exact)
	assert.True(t, results[0].Consistent)
}

func TestRunnerCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &bench.Runner{Exact: true}

	_, err := runner.Run(ctx, [][]model.Job{generator.New(1).Instance(10)})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerNoInstances(t *testing.T) {
	t.Parallel()

	runner := &bench.Runner{Workers: 2}

	results, err := runner.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
