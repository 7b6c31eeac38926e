package rpq

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

func applyOptions(opts []model.SolverOption) error {
	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return errors.Wrap(err, "unable to apply solver option")
		}
	}

	return nil
}

func fireScheduled(opts []model.SolverOption, job model.Job, index, start int) error {
	for _, opt := range opts {
		err := opt.OnScheduled(job, index, start)
		if err != nil {
			return errors.Wrapf(err, "unable to run scheduled hook for job %d", index)
		}
	}

	return nil
}

func firePreempted(opts []model.SolverOption, job model.Job, index, at, remaining int) error {
	for _, opt := range opts {
		err := opt.OnPreempted(job, index, at, remaining)
		if err != nil {
			return errors.Wrapf(err, "unable to run preempted hook for job %d", index)
		}
	}

	return nil
}

func fireIdle(opts []model.SolverOption, from, to int) error {
	for _, opt := range opts {
		err := opt.OnIdle(from, to)
		if err != nil {
			return errors.Wrap(err, "unable to run idle hook")
		}
	}

	return nil
}

func fireExpanded(opts []model.SolverOption, depth, lower, upper int) error {
	for _, opt := range opts {
		err := opt.OnExpanded(depth, lower, upper)
		if err != nil {
			return errors.Wrap(err, "unable to run expanded hook")
		}
	}

	return nil
}

func finishOptions(opts []model.SolverOption, cmax int) error {
	for _, opt := range opts {
		err := opt.Finish(cmax)
		if err != nil {
			return errors.Wrap(err, "unable to finish solver option")
		}
	}

	return nil
}
