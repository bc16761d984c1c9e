package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-stagestats/pkg/analysis"
	"github.com/askiada/go-stagestats/pkg/series"
)

func mustSeries(t *testing.T, name string, values ...float64) series.Series {
	t.Helper()

	steps := make([]int64, len(values))
	for i := range steps {
		steps[i] = int64(i)
	}

	s, err := series.New(name, steps, values)
	require.NoError(t, err)

	return s
}

func rising(from, to float64, total int) []float64 {
	res := make([]float64, total)
	for i := range res {
		res[i] = from + (to-from)*float64(i)/float64(total-1)
	}

	return res
}

func seeded(seed uint64) *uint64 {
	return &seed
}

func testOptions(metrics ...analysis.MetricSpec) analysis.Options {
	opts := analysis.DefaultOptions()
	opts.Metrics = metrics
	opts.Seed = seeded(1)

	return opts
}

var (
	success = analysis.MetricSpec{Key: "Drone__Success", Name: "Success Rate", Kind: analysis.KindPercentage}
	reward  = analysis.MetricSpec{Key: "Environment__Cumulative_Reward", Name: "Cumulative Reward", Kind: analysis.KindFloat}
)
