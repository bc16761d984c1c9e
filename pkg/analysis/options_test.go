package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-stagestats/pkg/analysis"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := analysis.DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 50, opts.StageWindow)
	assert.Equal(t, 100, opts.FinalWindow)
	assert.Equal(t, 1000, opts.Resamples)
	assert.InDelta(t, 0.95, opts.Confidence, 0)
	assert.Nil(t, opts.Seed)
	assert.Len(t, opts.Metrics, 5)
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]func(o *analysis.Options){
		"no stage metric":  func(o *analysis.Options) { o.StageMetric = "" },
		"no metric":        func(o *analysis.Options) { o.Metrics = nil },
		"final window":     func(o *analysis.Options) { o.FinalWindow = -1 },
		"resamples":        func(o *analysis.Options) { o.Resamples = 0 },
		"confidence high":  func(o *analysis.Options) { o.Confidence = 1 },
		"confidence low":   func(o *analysis.Options) { o.Confidence = 0 },
		"workers":          func(o *analysis.Options) { o.Workers = 0 },
		"unknown kind":     func(o *analysis.Options) { o.Metrics[0].Kind = "ratio" },
		"missing name":     func(o *analysis.Options) { o.Metrics[1].Name = "" },
		"duplicate metric": func(o *analysis.Options) { o.Metrics = append(o.Metrics, o.Metrics[0]) },
	}

	for name, mutate := range tcs {
		mutate := mutate

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			opts := analysis.DefaultOptions()
			mutate(&opts)
			require.ErrorIs(t, opts.Validate(), analysis.ErrInvalidOptions)
		})
	}
}

func TestFinalSummarySkipsEmptyMetrics(t *testing.T) {
	t.Parallel()

	res := &analysis.Result{
		Mode:    analysis.ModeCurriculum,
		Metrics: []analysis.MetricResult{{Metric: success}},
	}
	assert.Empty(t, res.FinalSummary())
	assert.Contains(t, res.ByName(), "Success Rate")
	assert.Equal(t, "curriculum-aware analysis", res.Mode.Label())
}
