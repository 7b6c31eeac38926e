package rpq

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// Carlier finds an order of jobs with the minimal makespan. It runs a branch
// and bound search: every node schedules its jobs with Schrage, locates the
// interference job of the critical path and branches on running it before or
// after the critical set, with the preemptive makespan as lower bound.
//
// The context cancels the search; partial results are discarded.
func Carlier(ctx context.Context, jobs []model.Job, opts ...model.SolverOption) (model.Sequence, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	search := &carlierSearch{
		original: append([]model.Job(nil), jobs...),
		opts:     opts,
	}

	root := append([]model.Job(nil), jobs...)

	err = search.explore(ctx, root, 0)
	if err != nil {
		return nil, err
	}

	best := make(model.Sequence, 0, len(search.bestOrder))
	for _, index := range search.bestOrder {
		best = append(best, search.original[index])
	}

	err = finishOptions(opts, search.bestCmax)
	if err != nil {
		return nil, err
	}

	return best, nil
}

type carlierSearch struct {
	original  []model.Job
	opts      []model.SolverOption
	bestOrder []int
	bestCmax  int
}

// explore schedules the node's jobs with Schrage, updates the incumbent with
// the true cost of the resulting order and branches on the interference job.
// The jobs slice is indexed like the original instance; only delivery and
// cooldown times differ.
func (cs *carlierSearch) explore(ctx context.Context, jobs []model.Job, depth int) error {
	err := ctx.Err()
	if err != nil {
		return errors.Wrap(err, "search interrupted")
	}

	order := schrageOrder(jobs)

	// The order is evaluated against the original instance: delivery and
	// cooldown adjustments steer the search but never the cost.
	upper := cmaxOrder(cs.original, order)
	if cs.bestOrder == nil || upper < cs.bestCmax {
		cs.bestCmax = upper
		cs.bestOrder = append(cs.bestOrder[:0], order...)
	}

	crit, ok := criticalPath(jobs, order)
	if !ok {
		// No interference job: the node's schedule is optimal under the
		// node's constraints.
		return nil
	}

	lower := crit.lowerBound(jobs, order)

	err = fireExpanded(cs.opts, depth, lower, upper)
	if err != nil {
		return err
	}

	interference := order[crit.c]

	// Run the interference job after the whole critical set: its delivery
	// cannot beat the set's release plus processing.
	after := append([]model.Job(nil), jobs...)
	if raised := crit.setDelivery + crit.setProcessing; raised > after[interference].Delivery {
		after[interference].Delivery = raised
	}

	err = cs.exploreChild(ctx, after, lower, depth)
	if err != nil {
		return err
	}

	// Run the interference job before the whole critical set: its cooldown
	// must cover the set's processing plus cooldown.
	before := append([]model.Job(nil), jobs...)
	if raised := crit.setProcessing + crit.setCooldown; raised > before[interference].Cooldown {
		before[interference].Cooldown = raised
	}

	return cs.exploreChild(ctx, before, lower, depth)
}

func (cs *carlierSearch) exploreChild(ctx context.Context, jobs []model.Job, lower, depth int) error {
	relaxed, err := SchragePreemptive(jobs)
	if err != nil {
		return err
	}

	if bound := relaxed.Cmax(); bound > lower {
		lower = bound
	}

	if lower >= cs.bestCmax {
		return nil
	}

	return cs.explore(ctx, jobs, depth+1)
}

// criticalInfo describes the critical path of a Schrage schedule: the block
// of jobs a..b running back to back up to the job b realising the makespan,
// and the interference job c, the last job of the block with a cooldown
// smaller than b's. The critical set is the jobs after c up to b.
type criticalInfo struct {
	a, b, c int

	setDelivery   int
	setProcessing int
	setCooldown   int
}

// criticalPath locates the critical block and interference job of the order.
// It reports false when no interference job exists, which proves the order
// optimal for this instance.
func criticalPath(jobs []model.Job, order []int) (criticalInfo, bool) {
	starts := make([]int, len(order))
	ends := make([]int, len(order))

	var t, cmax int

	for k, index := range order {
		if jobs[index].Delivery > t {
			t = jobs[index].Delivery
		}

		starts[k] = t
		t += jobs[index].Processing
		ends[k] = t

		if end := t + jobs[index].Cooldown; end > cmax {
			cmax = end
		}
	}

	info := criticalInfo{b: -1, c: -1}

	for k := len(order) - 1; k >= 0; k-- {
		if ends[k]+jobs[order[k]].Cooldown == cmax {
			info.b = k

			break
		}
	}

	// Walk back while the machine never sits idle.
	info.a = info.b
	for info.a > 0 && ends[info.a-1] == starts[info.a] {
		info.a--
	}

	for k := info.b - 1; k >= info.a; k-- {
		if jobs[order[k]].Cooldown < jobs[order[info.b]].Cooldown {
			info.c = k

			break
		}
	}

	if info.c < 0 {
		return criticalInfo{}, false
	}

	for k := info.c + 1; k <= info.b; k++ {
		job := jobs[order[k]]
		if k == info.c+1 || job.Delivery < info.setDelivery {
			info.setDelivery = job.Delivery
		}
		if k == info.c+1 || job.Cooldown < info.setCooldown {
			info.setCooldown = job.Cooldown
		}

		info.setProcessing += job.Processing
	}

	return info, true
}

// lowerBound is the classic two-set bound: the critical set alone, and the
// critical set together with the interference job.
func (ci criticalInfo) lowerBound(jobs []model.Job, order []int) int {
	bound := ci.setDelivery + ci.setProcessing + ci.setCooldown

	job := jobs[order[ci.c]]

	withC := ci.setDelivery
	if job.Delivery < withC {
		withC = job.Delivery
	}

	withC += ci.setProcessing + job.Processing

	if job.Cooldown < ci.setCooldown {
		withC += job.Cooldown
	} else {
		withC += ci.setCooldown
	}

	if withC > bound {
		bound = withC
	}

	return bound
}

// cmaxOrder evaluates the makespan of running the given positions of jobs
// back to back.
func cmaxOrder(jobs []model.Job, order []int) int {
	var t, cmax int

	for _, index := range order {
		if jobs[index].Delivery > t {
			t = jobs[index].Delivery
		}

		t += jobs[index].Processing

		if end := t + jobs[index].Cooldown; end > cmax {
			cmax = end
		}
	}

	return cmax
}
