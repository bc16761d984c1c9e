package analysis

import (
	"sort"

	"github.com/askiada/go-stagestats/pkg/curriculum"
)

// Mode tells which analysis produced a Result.
type Mode string

const (
	ModeCurriculum           Mode = "curriculum-aware"
	ModeFinalPerformanceOnly Mode = "final-performance-only"
)

// Label is the header reports must display for the mode.
func (m Mode) Label() string {
	return string(m) + " analysis"
}

// MetricResult holds the combined estimates of one metric. In ModeCurriculum, Stages is set
// and Aggregate is nil. In ModeFinalPerformanceOnly, Aggregate is set and Stages is nil.
type MetricResult struct {
	Metric    MetricSpec
	Stages    map[int]curriculum.CombinedStageResult
	Aggregate *curriculum.CombinedStageResult
}

// StageIDs returns the stages the metric has a result for, in increasing order.
func (m MetricResult) StageIDs() []int {
	return curriculum.SortedStages(m.Stages)
}

// Result is the outcome of an analysis. Metrics follow the configured order; metrics no run
// had data for are absent.
type Result struct {
	Mode Mode
	// StageRun is the run the stage intervals were taken from. Empty without stage signal.
	StageRun  string
	Intervals map[int]curriculum.StageInterval
	Metrics   []MetricResult
}

// StageIDs returns every stage at least one metric has a result for, in increasing order.
func (r *Result) StageIDs() []int {
	seen := make(map[int]struct{})
	for _, m := range r.Metrics {
		for stage := range m.Stages {
			seen[stage] = struct{}{}
		}
	}

	return curriculum.SortedStages(seen)
}

// ByName returns the metric results keyed by display name.
func (r *Result) ByName() map[string]MetricResult {
	res := make(map[string]MetricResult, len(r.Metrics))
	for _, m := range r.Metrics {
		res[m.Metric.Name] = m
	}

	return res
}

// FinalRow is the final performance of one metric: its result at the highest stage it
// reached, or its aggregate without stage signal.
type FinalRow struct {
	Metric   MetricSpec
	Stage    int
	HasStage bool
	Result   curriculum.CombinedStageResult
}

// FinalSummary returns one FinalRow per metric, in the order of Metrics.
func (r *Result) FinalSummary() []FinalRow {
	rows := make([]FinalRow, 0, len(r.Metrics))

	for _, m := range r.Metrics {
		if m.Aggregate != nil {
			rows = append(rows, FinalRow{Metric: m.Metric, Result: *m.Aggregate})

			continue
		}

		stages := m.StageIDs()
		if len(stages) == 0 {
			continue
		}

		highest := stages[len(stages)-1]
		rows = append(rows, FinalRow{
			Metric:   m.Metric,
			Stage:    highest,
			HasStage: true,
			Result:   m.Stages[highest],
		})
	}

	return rows
}

// sortOutcomes restores the configured metric order.
func sortOutcomes(outcomes []metricOutcome) {
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].index < outcomes[j].index
	})
}
