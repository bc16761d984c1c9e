package curriculum

// StageInterval is the inclusive step range during which a stage was active.
type StageInterval struct {
	Stage int
	Start int64
	End   int64
}

// Contains reports whether step falls in the interval, bounds included.
func (i StageInterval) Contains(step int64) bool {
	return i.Start <= step && step <= i.End
}

// StagePerformance is the converged estimate of one metric, in one run, for one stage.
type StagePerformance struct {
	Stage int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	// NSamples counts every sample of the stage, Window holds the trailing ones the
	// statistics were computed on.
	NSamples int
	Window   []float64
	Start    int64
	End      int64
}

// CI is a confidence interval. Insufficient is set, with both bounds at 0, when there were
// fewer than two observations to resample.
type CI struct {
	Lower        float64
	Upper        float64
	Insufficient bool
}

// CombinedStageResult is the estimate of one metric for one stage across runs.
type CombinedStageResult struct {
	Stage int
	Mean  float64
	Std   float64
	CI    CI
	NRuns int
	// Start and End are only meaningful when HasRange is set. Final-window aggregates
	// are not tied to a step range.
	Start    int64
	End      int64
	HasRange bool
}
