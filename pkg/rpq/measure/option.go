package measure

import (
	"time"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

type solverMeasure struct {
	Measure
	name      string
	metric    Metric
	startTime time.Time
}

func (sm *solverMeasure) New() error {
	sm.metric = sm.AddMetric(sm.name)
	sm.startTime = time.Now()

	return nil
}

func (sm *solverMeasure) OnScheduled(job model.Job, index, start int) error {
	sm.metric.AddScheduled()

	return nil
}

func (sm *solverMeasure) OnPreempted(job model.Job, index, at, remaining int) error {
	sm.metric.AddPreempted()

	return nil
}

func (sm *solverMeasure) OnIdle(from, to int) error {
	sm.metric.AddIdle(to - from)

	return nil
}

func (sm *solverMeasure) OnExpanded(depth, lower, upper int) error {
	sm.metric.AddExpanded(lower, upper)

	return nil
}

func (sm *solverMeasure) Finish(cmax int) error {
	sm.metric.SetCmax(cmax)
	sm.metric.SetTotalDuration(time.Since(sm.startTime))

	return nil
}

// SolverMeasure wraps a measure into a solver option recording the run under
// the given name.
func SolverMeasure(measure Measure, name string) model.SolverOption {
	return &solverMeasure{Measure: measure, name: name}
}
