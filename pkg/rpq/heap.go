package rpq

import (
	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// readyItem is one released job waiting for the machine, together with its
// position in the solver's delivery-sorted job list. During a preemptive
// solve the job's processing time shrinks to the time still remaining.
type readyItem struct {
	job   model.Job
	index int
}

// readyHeap is a max-heap of released jobs ordered by descending cooldown
// time, with descending processing time as tiebreaker. Implements
// container/heap.Interface.
type readyHeap []readyItem

func (h readyHeap) Len() int { return len(h) }

func (h readyHeap) Less(i, j int) bool {
	if h[i].job.Cooldown != h[j].job.Cooldown {
		return h[i].job.Cooldown > h[j].job.Cooldown
	}
	if h[i].job.Processing != h[j].job.Processing {
		return h[i].job.Processing > h[j].job.Processing
	}

	return h[i].index > h[j].index
}

func (h readyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x any) { *h = append(*h, x.(readyItem)) }

func (h *readyHeap) Pop() any {
	old := *h
	item := old[len(old)-1]
	*h = old[:len(old)-1]

	return item
}
