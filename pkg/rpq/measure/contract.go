package measure

import "time"

// Measure collects one metric per solver run.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the events of a single solver run.
type Metric interface {
	AddScheduled()
	AddPreempted()
	AddIdle(span int)
	AddExpanded(lower, upper int)
	SetCmax(cmax int)
	SetTotalDuration(total time.Duration)

	Scheduled() int
	Preemptions() int
	IdleSpans() int
	IdleTime() int
	Expanded() int
	BestLower() int
	BestUpper() int
	Cmax() int
	GetTotalDuration() time.Duration
}
