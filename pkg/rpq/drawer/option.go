package drawer

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

type solverDrawer struct {
	drawer Drawer
	jobs   map[int]model.Job
	slots  []model.Slot
}

func (sd *solverDrawer) New() error {
	sd.jobs = make(map[int]model.Job)
	sd.slots = nil

	return nil
}

func (sd *solverDrawer) OnScheduled(job model.Job, index, start int) error {
	sd.jobs[index] = job
	sd.slots = append(sd.slots, model.Slot{Start: start, Job: index})

	return nil
}

func (sd *solverDrawer) OnPreempted(job model.Job, index, at, remaining int) error {
	return nil
}

func (sd *solverDrawer) OnIdle(from, to int) error {
	return nil
}

func (sd *solverDrawer) OnExpanded(depth, lower, upper int) error {
	return nil
}

func (sd *solverDrawer) Finish(cmax int) error {
	jobs := make([]model.Job, len(sd.jobs))
	for index, job := range sd.jobs {
		jobs[index] = job
	}

	err := sd.drawer.Draw(model.Schedule{Jobs: jobs, Timetable: sd.slots})
	if err != nil {
		return errors.Wrap(err, "unable to draw schedule")
	}

	return nil
}

// SolverDrawer wraps a drawer into a solver option: it collects every start
// and resumption while the solver runs and draws the schedule once the solve
// finishes.
func SolverDrawer(drawer Drawer) model.SolverOption {
	return &solverDrawer{drawer: drawer}
}
