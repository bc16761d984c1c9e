package curriculum

// combineStage folds the performances of one stage, in run order, into a single result.
func combineStage(stage int, perfs []StagePerformance, b *Bootstrapper) CombinedStageResult {
	res := CombinedStageResult{
		Stage:    stage,
		NRuns:    len(perfs),
		Start:    perfs[0].Start,
		End:      perfs[0].End,
		HasRange: true,
	}

	if len(perfs) == 1 {
		// one mean cannot be resampled, the run's own window stands in for the
		// uncertainty
		res.Mean = perfs[0].Mean
		res.CI = b.CI(perfs[0].Window)

		return res
	}

	means := make([]float64, len(perfs))
	for i, perf := range perfs {
		means[i] = perf.Mean
	}

	sum := summarize(means)
	res.Mean = sum.mean
	res.Std = sum.std
	res.CI = b.CI(means)

	return res
}

// Combine folds per-run stage performances into one result per stage. A stage present in
// at least one run is reported; its NRuns counts the runs that had samples in it.
//
// With several runs, Mean and Std are the mean and population standard deviation of the
// per-run means and the interval is bootstrapped over those means. With a single run, Std
// is 0 and the interval is bootstrapped over the run's window samples.
//
// Stages are processed in increasing order so that a seeded Bootstrapper gives the same
// result for the same input.
func Combine(perRun []map[int]StagePerformance, b *Bootstrapper) map[int]CombinedStageResult {
	byStage := make(map[int][]StagePerformance)

	for _, run := range perRun {
		for _, stage := range SortedStages(run) {
			byStage[stage] = append(byStage[stage], run[stage])
		}
	}

	res := make(map[int]CombinedStageResult, len(byStage))
	for _, stage := range SortedStages(byStage) {
		res[stage] = combineStage(stage, byStage[stage], b)
	}

	return res
}

// CombineFinal is the fallback used without any stage signal. The last window values of
// every run are pooled into one sample, and Mean, Std and the interval are computed over that
// sample, whatever the number of runs. NRuns counts the runs that had values, runs without
// any are skipped. The boolean is false when no run contributed.
func CombineFinal(perRun [][]float64, window int, b *Bootstrapper) (CombinedStageResult, bool) {
	var (
		pooled []float64
		nRuns  int
	)

	for _, values := range perRun {
		if len(values) == 0 {
			continue
		}

		pooled = append(pooled, Tail(values, window)...)
		nRuns++
	}

	if nRuns == 0 {
		return CombinedStageResult{}, false
	}

	sum := summarize(pooled)

	return CombinedStageResult{
		Mean:  sum.mean,
		Std:   sum.std,
		CI:    b.CI(pooled),
		NRuns: nRuns,
	}, true
}
