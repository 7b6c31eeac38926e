package model

// SolverOption defines the interface for solver options. The solvers invoke
// the hooks in event order while they build a schedule; any hook returning an
// error aborts the solve.
type SolverOption interface {
	// New initialises the solver option.
	New() error

	scheduleOption
	searchOption

	// Finish runs after the solve with the makespan of the result.
	Finish(cmax int) error
}

// scheduleOption defines the hooks fired while jobs are placed on the machine.
type scheduleOption interface {
	// OnScheduled runs every time a job starts or resumes.
	OnScheduled(job Job, index, start int) error
	// OnPreempted runs every time a running job is taken off the machine
	// with remaining processing time left.
	OnPreempted(job Job, index, at, remaining int) error
	// OnIdle runs every time the machine waits for the next delivery.
	OnIdle(from, to int) error
}

// searchOption defines the hooks fired by the exact solver while it explores
// its search tree.
type searchOption interface {
	// OnExpanded runs every time a search node is expanded, with the node
	// depth and its lower and upper bounds.
	OnExpanded(depth, lower, upper int) error
}
