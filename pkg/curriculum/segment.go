package curriculum

import (
	"math"
	"sort"
)

// Segment splits a stage signal into contiguous intervals keyed by stage id.
//
// Values are rounded to the nearest integer. A new interval opens on the first step where
// the rounded value differs from the current stage, and the previous one closes on the
// step before. Ids are the rounded values themselves, not sequential indices. When a stage
// is revisited after another one, the later interval replaces the earlier one. NaN values
// are ignored. Extra steps or values beyond the shorter slice are ignored.
func Segment(steps []int64, values []float64) map[int]StageInterval {
	intervals := make(map[int]StageInterval)

	n := min(len(steps), len(values))

	var (
		open     bool
		current  StageInterval
		lastStep int64
	)

	for i := 0; i < n; i++ {
		if math.IsNaN(values[i]) {
			continue
		}

		stage := int(math.Round(values[i]))

		switch {
		case !open:
			current = StageInterval{Stage: stage, Start: steps[i]}
			open = true
		case stage != current.Stage:
			current.End = lastStep
			intervals[current.Stage] = current
			current = StageInterval{Stage: stage, Start: steps[i]}
		}

		lastStep = steps[i]
	}

	if open {
		current.End = lastStep
		intervals[current.Stage] = current
	}

	return intervals
}

// SortedStages returns the stage ids of intervals in increasing order.
func SortedStages[V any](intervals map[int]V) []int {
	res := make([]int, 0, len(intervals))
	for stage := range intervals {
		res = append(res, stage)
	}

	sort.Ints(res)

	return res
}
