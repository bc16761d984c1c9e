package analysis

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/askiada/go-stagestats/pkg/curriculum"
	"github.com/askiada/go-stagestats/pkg/pipeline/model"
)

const (
	DefaultStageWindow = 50
	DefaultFinalWindow = 100
	DefaultWorkers     = 4
)

// Options configures an Analyzer.
type Options struct {
	// StageMetric is the key of the curriculum stage signal.
	StageMetric string
	Metrics     []MetricSpec
	// StageWindow is the number of trailing samples per stage used for the converged
	// estimate, FinalWindow the number of trailing samples used without stage signal.
	StageWindow int
	FinalWindow int
	Resamples   int
	Confidence  float64
	// Seed makes bootstrap intervals reproducible. Nil draws from an unseeded source.
	Seed    *uint64
	Workers int
	// PipelineOptions are given to the pipeline running the analysis, see the measure and
	// drawer packages.
	PipelineOptions []model.PipelineOption
	Logger          *slog.Logger
}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		StageMetric: DefaultStageMetric,
		Metrics:     DefaultMetrics(),
		StageWindow: DefaultStageWindow,
		FinalWindow: DefaultFinalWindow,
		Resamples:   curriculum.DefaultResamples,
		Confidence:  curriculum.DefaultConfidence,
		Workers:     DefaultWorkers,
	}
}

// Validate checks the options can drive an analysis.
func (o Options) Validate() error {
	switch {
	case o.StageMetric == "":
		return errors.Wrap(ErrInvalidOptions, "stage metric must be set")
	case len(o.Metrics) == 0:
		return errors.Wrap(ErrInvalidOptions, "at least one metric is required")
	case o.StageWindow < 1:
		return errors.Wrapf(ErrInvalidOptions, "stage window must be positive, got %d", o.StageWindow)
	case o.FinalWindow < 1:
		return errors.Wrapf(ErrInvalidOptions, "final window must be positive, got %d", o.FinalWindow)
	case o.Resamples < 1:
		return errors.Wrapf(ErrInvalidOptions, "resamples must be positive, got %d", o.Resamples)
	case o.Confidence <= 0 || o.Confidence >= 1:
		return errors.Wrapf(ErrInvalidOptions, "confidence must be in (0, 1), got %v", o.Confidence)
	case o.Workers < 1:
		return errors.Wrapf(ErrInvalidOptions, "workers must be positive, got %d", o.Workers)
	}

	keys := make(map[string]struct{}, len(o.Metrics))
	for _, m := range o.Metrics {
		if m.Key == "" || m.Name == "" {
			return errors.Wrapf(ErrInvalidOptions, "metric %+v must have a key and a name", m)
		}

		if !m.Kind.Valid() {
			return errors.Wrapf(ErrInvalidOptions, "metric %s: unknown kind %q", m.Key, m.Kind)
		}

		if _, ok := keys[m.Key]; ok {
			return errors.Wrapf(ErrInvalidOptions, "metric %s is configured twice", m.Key)
		}

		keys[m.Key] = struct{}{}
	}

	return nil
}

func (o Options) bootstrapper(jobIndex int) *curriculum.Bootstrapper {
	opts := []curriculum.BootstrapOption{
		curriculum.WithResamples(o.Resamples),
		curriculum.WithConfidence(o.Confidence),
	}

	if o.Seed != nil {
		// one source per job keeps the result independent of worker scheduling
		opts = append(opts, curriculum.WithSeed(*o.Seed+uint64(jobIndex)))
	}

	return curriculum.NewBootstrapper(opts...)
}
