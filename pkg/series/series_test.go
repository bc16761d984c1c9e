package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-stagestats/pkg/series"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := series.New("Drone__Success", []int64{0, 10, 10, 20}, []float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []int64{0, 10, 10, 20}, s.Steps())
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, s.Values())
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		steps  []int64
		values []float64
	}{
		"length mismatch": {steps: []int64{0, 1}, values: []float64{1}},
		"out of order":    {steps: []int64{0, 5, 3}, values: []float64{1, 2, 3}},
		"negative step":   {steps: []int64{-1}, values: []float64{1}},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := series.New("metric", tc.steps, tc.values)
			require.ErrorIs(t, err, series.ErrMalformed)
		})
	}
}
