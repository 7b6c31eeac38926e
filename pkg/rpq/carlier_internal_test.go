package rpq

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

func TestSchrageOrder(t *testing.T) {
	t.Parallel()

	jobs := []model.Job{
		model.New(10, 5, 7),
		model.New(13, 6, 26),
		model.New(11, 7, 24),
		model.New(20, 4, 21),
		model.New(30, 3, 8),
		model.New(0, 6, 17),
		model.New(30, 2, 0),
	}

	assert.Equal(t, []int{5, 0, 1, 2, 3, 4, 6}, schrageOrder(jobs))
}

func TestReadyHeapOrdering(t *testing.T) {
	t.Parallel()

	ready := &readyHeap{}
	heap.Push(ready, readyItem{job: model.New(0, 5, 7), index: 0})
	heap.Push(ready, readyItem{job: model.New(0, 6, 26), index: 1})
	heap.Push(ready, readyItem{job: model.New(0, 1, 26), index: 2})
	heap.Push(ready, readyItem{job: model.New(0, 2, 0), index: 3})

	popped := make([]int, 0, 4)
	for ready.Len() > 0 {
		popped = append(popped, heap.Pop(ready).(readyItem).index)
	}

	// Highest cooldown first, highest processing on ties.
	assert.Equal(t, []int{1, 2, 0, 3}, popped)
}

func TestCriticalPath(t *testing.T) {
	t.Parallel()

	jobs := []model.Job{
		model.New(0, 6, 17),
		model.New(10, 5, 7),
		model.New(13, 6, 26),
		model.New(11, 7, 24),
		model.New(20, 4, 21),
		model.New(30, 3, 8),
		model.New(30, 2, 0),
	}

	// Greedy order for the seven job instance: starts 0, 10, 15, 21, 28,
	// 32, 35; job 4 realises the makespan 53 and the machine runs without a
	// break from job 1 onwards.
	order := []int{0, 1, 2, 3, 4, 5, 6}

	crit, ok := criticalPath(jobs, order)
	require.True(t, ok)

	assert.Equal(t, 4, crit.b)
	assert.Equal(t, 1, crit.a)
	// Job 1 is the last one in the block with a cooldown below job 4's.
	assert.Equal(t, 1, crit.c)
	assert.Equal(t, 11, crit.setDelivery)
	assert.Equal(t, 6+7+4, crit.setProcessing)
	assert.Equal(t, 21, crit.setCooldown)
}

func TestCriticalPathNoInterference(t *testing.T) {
	t.Parallel()

	jobs := []model.Job{
		model.New(0, 2, 10),
		model.New(2, 2, 5),
	}

	_, ok := criticalPath(jobs, []int{0, 1})
	assert.False(t, ok)
}

func TestCmaxOrder(t *testing.T) {
	t.Parallel()

	jobs := []model.Job{
		model.New(10, 5, 7),
		model.New(0, 6, 17),
	}

	// Job 1 runs 0..6 and cools down until 23; job 0 runs 10..15 and cools
	// down until 22.
	assert.Equal(t, 23, cmaxOrder(jobs, []int{1, 0}))
}
