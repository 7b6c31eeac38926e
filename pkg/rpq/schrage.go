package rpq

import (
	"container/heap"
	"sort"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// Schrage schedules jobs on a single machine with a greedy heuristic that
// attempts to minimise the makespan: run the available job with the highest
// cooldown time, or wait for the next delivery when nothing is available.
// The input order is irrelevant. Runs in O(n log n) time for n jobs.
func Schrage(jobs []model.Job, opts ...model.SolverOption) (model.Sequence, error) {
	err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	order := schrageOrder(jobs)

	pi := make(model.Sequence, 0, len(order))

	var t int

	for _, index := range order {
		job := jobs[index]
		if job.Delivery > t {
			err = fireIdle(opts, t, job.Delivery)
			if err != nil {
				return nil, err
			}

			t = job.Delivery
		}

		err = fireScheduled(opts, job, index, t)
		if err != nil {
			return nil, err
		}

		pi = append(pi, job)
		t += job.Processing
	}

	err = finishOptions(opts, pi.Cmax())
	if err != nil {
		return nil, err
	}

	return pi, nil
}

// schrageOrder runs the greedy sweep and returns the positions of the jobs
// in execution order.
func schrageOrder(jobs []model.Job) []int {
	byDelivery := make([]int, len(jobs))
	for i := range byDelivery {
		byDelivery[i] = i
	}

	sort.SliceStable(byDelivery, func(i, j int) bool {
		return jobs[byDelivery[i]].Delivery < jobs[byDelivery[j]].Delivery
	})

	ready := &readyHeap{}
	order := make([]int, 0, len(jobs))

	var t, next int

	for next < len(jobs) || ready.Len() > 0 {
		for next < len(jobs) && jobs[byDelivery[next]].Delivery <= t {
			heap.Push(ready, readyItem{job: jobs[byDelivery[next]], index: byDelivery[next]})
			next++
		}

		if ready.Len() == 0 {
			// Nothing can run, skip to the next delivery. The job list
			// cannot be exhausted at this point.
			t = jobs[byDelivery[next]].Delivery

			continue
		}

		item := heap.Pop(ready).(readyItem)
		order = append(order, item.index)
		t += item.job.Processing
	}

	return order
}

// SchragePreemptive schedules jobs on a single machine with preemptions in a
// way which minimises the makespan. Whenever a job is delivered while a lower
// priority job runs, the runner goes back to the ready queue with its
// remaining processing time. The makespan of the result is a lower bound for
// any schedule without preemptions. Runs in O(n log n) time for n jobs.
func SchragePreemptive(jobs []model.Job, opts ...model.SolverOption) (model.Schedule, error) {
	err := applyOptions(opts)
	if err != nil {
		return model.Schedule{}, err
	}

	sorted := model.Sequence(jobs).ByDelivery()
	ready := &readyHeap{}
	timetable := make([]model.Slot, 0, len(sorted))

	var t, next int

	for next < len(sorted) || ready.Len() > 0 {
		for next < len(sorted) && sorted[next].Delivery <= t {
			heap.Push(ready, readyItem{job: sorted[next], index: next})
			next++
		}

		if ready.Len() == 0 {
			err = fireIdle(opts, t, sorted[next].Delivery)
			if err != nil {
				return model.Schedule{}, err
			}

			t = sorted[next].Delivery

			continue
		}

		item := heap.Pop(ready).(readyItem)

		// Record the slot unless the same job simply keeps running.
		if len(timetable) == 0 || timetable[len(timetable)-1].Job != item.index {
			err = fireScheduled(opts, sorted[item.index], item.index, t)
			if err != nil {
				return model.Schedule{}, err
			}

			timetable = append(timetable, model.Slot{Start: t, Job: item.index})
		}

		t += item.job.Processing

		// A delivery before the current job completes takes the machine
		// back; the job returns to the queue with what is left of it.
		if next < len(sorted) && sorted[next].Delivery < t {
			item.job.Processing = t - sorted[next].Delivery

			err = firePreempted(opts, sorted[item.index], item.index, sorted[next].Delivery, item.job.Processing)
			if err != nil {
				return model.Schedule{}, err
			}

			heap.Push(ready, item)
			t = sorted[next].Delivery
		}
	}

	schedule := model.Schedule{Jobs: sorted, Timetable: timetable}

	err = finishOptions(opts, schedule.Cmax())
	if err != nil {
		return model.Schedule{}, err
	}

	return schedule, nil
}
