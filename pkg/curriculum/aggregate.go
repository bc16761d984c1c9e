package curriculum

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/askiada/go-stagestats/pkg/series"
)

// Tail returns the last window values, or all of them when there are fewer. A window of
// zero or less keeps everything. The returned slice shares the backing array of values.
func Tail(values []float64, window int) []float64 {
	if window <= 0 || len(values) <= window {
		return values
	}

	return values[len(values)-window:]
}

// summary holds the descriptive statistics of a non empty sample.
type summary struct {
	mean, std, min, max float64
}

// summarize computes the mean, population standard deviation, min and max of values.
// values must not be empty.
func summarize(values []float64) summary {
	mean, variance := stat.PopMeanVariance(values, nil)

	return summary{
		mean: mean,
		std:  math.Sqrt(math.Max(variance, 0)),
		min:  floats.Min(values),
		max:  floats.Max(values),
	}
}

// Aggregate computes the converged estimate of s within every stage interval, using the
// last window samples of each stage. Stages without any sample are left out.
func Aggregate(s series.Series, intervals map[int]StageInterval, window int) map[int]StagePerformance {
	res := make(map[int]StagePerformance, len(intervals))

	for stage, interval := range intervals {
		var inStage []float64

		for _, p := range s.Points {
			if interval.Contains(p.Step) {
				inStage = append(inStage, p.Value)
			}
		}

		if len(inStage) == 0 {
			continue
		}

		tail := Tail(inStage, window)
		sum := summarize(tail)

		res[stage] = StagePerformance{
			Stage:    stage,
			Mean:     sum.mean,
			Std:      sum.std,
			Min:      sum.min,
			Max:      sum.max,
			NSamples: len(inStage),
			Window:   tail,
			Start:    interval.Start,
			End:      interval.End,
		}
	}

	return res
}
