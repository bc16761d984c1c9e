package curriculum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-stagestats/pkg/curriculum"
)

func steps(total int) []int64 {
	res := make([]int64, total)
	for i := range res {
		res[i] = int64(i)
	}

	return res
}

func TestSegmentEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, curriculum.Segment(nil, nil))
	assert.Empty(t, curriculum.Segment([]int64{0, 1}, nil))
}

func TestSegmentConstant(t *testing.T) {
	t.Parallel()

	for _, stage := range []float64{0, 1, 4} {
		values := []float64{stage, stage, stage, stage, stage}
		got := curriculum.Segment([]int64{100, 200, 300, 400, 500}, values)
		assert.Equal(t, map[int]curriculum.StageInterval{
			int(stage): {Stage: int(stage), Start: 100, End: 500},
		}, got)
	}
}

func TestSegmentConsecutiveStages(t *testing.T) {
	t.Parallel()

	got := curriculum.Segment(steps(9), []float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	assert.Equal(t, map[int]curriculum.StageInterval{
		0: {Stage: 0, Start: 0, End: 2},
		1: {Stage: 1, Start: 3, End: 5},
		2: {Stage: 2, Start: 6, End: 8},
	}, got)
}

func TestSegmentCoversStepRange(t *testing.T) {
	t.Parallel()

	values := []float64{0, 0, 1, 1, 1, 1, 2, 3, 3, 5, 5, 5}
	stepsIn := []int64{0, 50, 100, 150, 150, 200, 250, 300, 350, 400, 450, 500}

	got := curriculum.Segment(stepsIn, values)
	assert.Len(t, got, 5)

	stages := curriculum.SortedStages(got)
	assert.Equal(t, []int{0, 1, 2, 3, 5}, stages)
	assert.Equal(t, stepsIn[0], got[stages[0]].Start)
	assert.Equal(t, stepsIn[len(stepsIn)-1], got[stages[len(stages)-1]].End)

	for i := 1; i < len(stages); i++ {
		prev, curr := got[stages[i-1]], got[stages[i]]
		assert.LessOrEqual(t, prev.Start, prev.End)
		assert.Less(t, prev.End, curr.Start, "stages %d and %d overlap", prev.Stage, curr.Stage)
	}

	for _, step := range stepsIn {
		owners := 0
		for _, interval := range got {
			if interval.Contains(step) {
				owners++
			}
		}
		assert.Equal(t, 1, owners, "step %d", step)
	}
}

func TestSegmentRoundsNoisySignal(t *testing.T) {
	t.Parallel()

	got := curriculum.Segment(steps(6), []float64{0.02, -0.01, 0.98, 1.03, math.NaN(), 1.97})
	assert.Equal(t, map[int]curriculum.StageInterval{
		0: {Stage: 0, Start: 0, End: 1},
		1: {Stage: 1, Start: 2, End: 3},
		2: {Stage: 2, Start: 5, End: 5},
	}, got)
}

func TestSegmentRevisitedStageKeepsLastInterval(t *testing.T) {
	t.Parallel()

	got := curriculum.Segment(steps(7), []float64{0, 0, 1, 1, 0, 0, 2})
	assert.Equal(t, map[int]curriculum.StageInterval{
		0: {Stage: 0, Start: 4, End: 5},
		1: {Stage: 1, Start: 2, End: 3},
		2: {Stage: 2, Start: 6, End: 6},
	}, got)
}

func TestSegmentNonSequentialIDs(t *testing.T) {
	t.Parallel()

	got := curriculum.Segment(steps(4), []float64{3, 3, 7, 7})
	assert.Equal(t, []int{3, 7}, curriculum.SortedStages(got))
}
