// Command rpq solves single machine scheduling instances. It loads an
// instance from a TOML file or generates a random one, runs the requested
// solvers and optionally renders the schedule as a Gantt chart SVG or a DOT
// graph.
package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/askiada/go-rpq/internal/bench"
	"github.com/askiada/go-rpq/internal/generator"
	"github.com/askiada/go-rpq/internal/instance"
	"github.com/askiada/go-rpq/pkg/rpq"
	"github.com/askiada/go-rpq/pkg/rpq/drawer"
	"github.com/askiada/go-rpq/pkg/rpq/measure"
	"github.com/askiada/go-rpq/pkg/rpq/model"
)

type options struct {
	input     string
	algorithm string
	jobCount  int
	seed      int64
	timeout   time.Duration
	ganttFile string
	dotFile   string
	compare   int
	workers   int
	exact     bool
}

func main() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "rpq").Logger()

	var opts options

	flag.StringVar(&opts.input, "input", "", "TOML instance file")
	flag.StringVar(&opts.algorithm, "algorithm", "schrage", "schrage, preemptive, carlier or all")
	flag.IntVar(&opts.jobCount, "jobs", 0, "generate a random instance with this many jobs")
	flag.Int64Var(&opts.seed, "seed", 1, "seed for generated instances")
	flag.DurationVar(&opts.timeout, "timeout", 30*time.Second, "time budget for the exact search")
	flag.StringVar(&opts.ganttFile, "gantt", "", "write a Gantt chart SVG of the schedule")
	flag.StringVar(&opts.dotFile, "dot", "", "write a DOT graph of the execution order")
	flag.IntVar(&opts.compare, "compare", 0, "compare the solvers over this many random instances")
	flag.IntVar(&opts.workers, "workers", 4, "concurrent solves during a comparison")
	flag.BoolVar(&opts.exact, "exact", false, "include the exact search in a comparison")
	flag.Parse()

	err := run(logger, opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("rpq failed")
	}
}

func run(logger zerolog.Logger, opts options) error {
	if opts.compare > 0 {
		return runCompare(logger, opts)
	}

	jobs, err := loadJobs(opts)
	if err != nil {
		return err
	}

	logger.Info().Int("jobs", len(jobs)).Str("algorithm", opts.algorithm).Msg("solving instance")

	msr := measure.NewDefaultMeasure()

	schedule, err := runSolvers(opts, jobs, msr)
	if err != nil {
		return err
	}

	for name, metric := range msr.AllMetrics() {
		logger.Info().
			Str("solver", name).
			Int("cmax", metric.Cmax()).
			Int("scheduled", metric.Scheduled()).
			Int("preemptions", metric.Preemptions()).
			Int("idle", metric.IdleTime()).
			Int("nodes", metric.Expanded()).
			Dur("elapsed", metric.GetTotalDuration()).
			Msg("solver finished")
	}

	return render(logger, opts, schedule)
}

func loadJobs(opts options) ([]model.Job, error) {
	switch {
	case opts.input != "":
		return instance.Load(opts.input)
	case opts.jobCount > 0:
		return generator.New(opts.seed).Instance(opts.jobCount), nil
	default:
		return nil, errors.New("either --input or --jobs must be set")
	}
}

// runSolvers runs the requested solvers and returns the schedule of the last
// one, which the drawers render.
func runSolvers(opts options, jobs []model.Job, msr measure.Measure) (model.Schedule, error) {
	var schedule model.Schedule

	if opts.algorithm == "schrage" || opts.algorithm == "all" {
		sequence, err := rpq.Schrage(jobs, measure.SolverMeasure(msr, "schrage"))
		if err != nil {
			return model.Schedule{}, errors.Wrap(err, "unable to run schrage")
		}

		schedule = sequence.Schedule()
	}

	if opts.algorithm == "preemptive" || opts.algorithm == "all" {
		relaxed, err := rpq.SchragePreemptive(jobs, measure.SolverMeasure(msr, "preemptive"))
		if err != nil {
			return model.Schedule{}, errors.Wrap(err, "unable to run preemptive schrage")
		}

		schedule = relaxed
	}

	if opts.algorithm == "carlier" || opts.algorithm == "all" {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()

		best, err := rpq.Carlier(ctx, jobs, measure.SolverMeasure(msr, "carlier"))
		if err != nil {
			return model.Schedule{}, errors.Wrap(err, "unable to run carlier")
		}

		schedule = best.Schedule()
	}

	if schedule.Jobs == nil {
		return model.Schedule{}, errors.Errorf("unknown algorithm %q", opts.algorithm)
	}

	return schedule, nil
}

func render(logger zerolog.Logger, opts options, schedule model.Schedule) error {
	if opts.ganttFile != "" {
		err := drawer.NewGanttDrawer(opts.ganttFile).Draw(schedule)
		if err != nil {
			return err
		}

		logger.Info().Str("file", opts.ganttFile).Msg("gantt chart written")
	}

	if opts.dotFile != "" {
		err := drawer.NewDOTDrawer(opts.dotFile).Draw(schedule)
		if err != nil {
			return err
		}

		logger.Info().Str("file", opts.dotFile).Msg("execution graph written")
	}

	return nil
}

func runCompare(logger zerolog.Logger, opts options) error {
	jobCount := opts.jobCount
	if jobCount <= 0 {
		jobCount = 20
	}

	gen := generator.New(opts.seed)

	instances := make([][]model.Job, 0, opts.compare)
	for i := 0; i < opts.compare; i++ {
		instances = append(instances, gen.Instance(jobCount))
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	runner := &bench.Runner{Workers: opts.workers, Exact: opts.exact}

	results, err := runner.Run(ctx, instances)
	if err != nil {
		return errors.Wrap(err, "unable to run comparison")
	}

	var heuristicOptimal int

	for _, result := range results {
		event := logger.Info().
			Str("run", result.RunID).
			Int("instance", result.Instance).
			Int("jobs", result.Jobs).
			Int("schrage", result.Heuristic).
			Int("preemptive", result.Preemptive).
			Bool("consistent", result.Consistent).
			Dur("elapsed", result.Elapsed)

		if result.Exact >= 0 {
			event = event.Int("carlier", result.Exact)

			if result.Exact == result.Heuristic {
				heuristicOptimal++
			}
		}

		event.Msg("instance compared")
	}

	if opts.exact {
		logger.Info().
			Int("instances", len(results)).
			Int("heuristic_optimal", heuristicOptimal).
			Msg("comparison finished")
	}

	return nil
}
