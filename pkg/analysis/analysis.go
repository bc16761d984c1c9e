package analysis

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/askiada/go-stagestats/pkg/curriculum"
	"github.com/askiada/go-stagestats/pkg/pipeline"
	"github.com/askiada/go-stagestats/pkg/series"
)

// Analyzer computes stage-aware statistics of training runs read from a series.Source.
type Analyzer struct {
	src    series.Source
	opts   Options
	logger *slog.Logger
}

// New creates an Analyzer. opts must pass Validate.
func New(src series.Source, opts Options) (*Analyzer, error) {
	if src == nil {
		return nil, ErrSourceMustBeSet
	}

	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{src: src, opts: opts, logger: logger}, nil
}

type metricJob struct {
	index     int
	metric    MetricSpec
	intervals map[int]curriculum.StageInterval
}

type metricOutcome struct {
	index  int
	result MetricResult
	ok     bool
}

// loadAll loads metric from every run, skipping the runs without data.
func (a *Analyzer) loadAll(ctx context.Context, runs []string, metric string) ([]series.Series, error) {
	res := make([]series.Series, 0, len(runs))

	for _, run := range runs {
		s, err := a.src.Load(ctx, run, metric)
		if errors.Is(err, series.ErrMissingData) {
			a.logger.Debug("no data", "run", run, "metric", metric)

			continue
		}

		if err != nil {
			return nil, errors.Wrapf(err, "unable to load %s from %s", metric, run)
		}

		res = append(res, s)
	}

	return res, nil
}

// StageIntervals returns the stage intervals of the first run, in input order, whose stage
// signal is not empty, together with that run. It returns no interval when no run has a
// stage signal.
func (a *Analyzer) StageIntervals(ctx context.Context, runs []string) (map[int]curriculum.StageInterval, string, error) {
	for _, run := range runs {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		s, err := a.src.Load(ctx, run, a.opts.StageMetric)
		if errors.Is(err, series.ErrMissingData) {
			continue
		}

		if err != nil {
			return nil, "", errors.Wrapf(err, "unable to load stage signal from %s", run)
		}

		intervals := curriculum.Segment(s.Steps(), s.Values())
		if len(intervals) > 0 {
			return intervals, run, nil
		}
	}

	return nil, "", nil
}

func (a *Analyzer) analyseMetric(ctx context.Context, runs []string, job metricJob) (metricOutcome, error) {
	out := metricOutcome{index: job.index, result: MetricResult{Metric: job.metric}}

	loaded, err := a.loadAll(ctx, runs, job.metric.Key)
	if err != nil {
		return out, err
	}

	b := a.opts.bootstrapper(job.index)

	if job.intervals == nil {
		perRun := make([][]float64, len(loaded))
		for i, s := range loaded {
			perRun[i] = s.Values()
		}

		agg, ok := curriculum.CombineFinal(perRun, a.opts.FinalWindow, b)
		if ok {
			out.result.Aggregate = &agg
			out.ok = true
		}

		return out, nil
	}

	perRun := make([]map[int]curriculum.StagePerformance, len(loaded))
	for i, s := range loaded {
		perRun[i] = curriculum.Aggregate(s, job.intervals, a.opts.StageWindow)
	}

	stages := curriculum.Combine(perRun, b)
	if len(stages) > 0 {
		out.result.Stages = stages
		out.ok = true
	}

	return out, nil
}

// Run analyses every configured metric over runs.
func (a *Analyzer) Run(ctx context.Context, runs []string) (*Result, error) {
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}

	intervals, stageRun, err := a.StageIntervals(ctx, runs)
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: ModeCurriculum, StageRun: stageRun, Intervals: intervals}
	if intervals == nil {
		res.Mode = ModeFinalPerformanceOnly
		a.logger.Warn("no curriculum stage data found, using final-window analysis", "stage_metric", a.opts.StageMetric, "final_window", a.opts.FinalWindow)
	} else {
		a.logger.Info("found curriculum stages", "run", stageRun, "stages", curriculum.SortedStages(intervals))
	}

	outcomes, err := a.runPipeline(ctx, runs, intervals)
	if err != nil {
		return nil, err
	}

	for _, o := range outcomes {
		if !o.ok {
			a.logger.Warn("metric has no data in any run", "metric", o.result.Metric.Key)

			continue
		}

		res.Metrics = append(res.Metrics, o.result)
	}

	return res, nil
}

func (a *Analyzer) runPipeline(ctx context.Context, runs []string, intervals map[int]curriculum.StageInterval) ([]metricOutcome, error) {
	pipe, err := pipeline.New(a.opts.PipelineOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pipeline")
	}

	jobs, err := pipeline.AddRootStep(pipe, "metrics", func(ctx context.Context, rootChan chan<- metricJob) error {
		for i, m := range a.opts.Metrics {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- metricJob{index: i, metric: m, intervals: intervals}:
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to add metrics step")
	}

	analysed, err := pipeline.AddStepOneToOne(pipe, "analyse", jobs, func(ctx context.Context, job metricJob) (metricOutcome, error) {
		return a.analyseMetric(ctx, runs, job)
	}, pipeline.StepConcurrency[metricOutcome](a.opts.Workers))
	if err != nil {
		return nil, errors.Wrap(err, "unable to add analyse step")
	}

	outcomes := make([]metricOutcome, 0, len(a.opts.Metrics))

	err = pipeline.AddSink(pipe, "collect", analysed, func(_ context.Context, o metricOutcome) error {
		outcomes = append(outcomes, o)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to add collect step")
	}

	err = pipe.Run(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "analysis pipeline failed")
	}

	sortOutcomes(outcomes)

	return outcomes, nil
}
