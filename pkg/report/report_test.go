package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-stagestats/pkg/analysis"
	"github.com/askiada/go-stagestats/pkg/curriculum"
	"github.com/askiada/go-stagestats/pkg/report"
)

var (
	success = analysis.MetricSpec{Key: "Drone__Success", Name: "Success Rate", Kind: analysis.KindPercentage}
	reward  = analysis.MetricSpec{Key: "Environment__Cumulative_Reward", Name: "Cumulative Reward", Kind: analysis.KindFloat}
)

func curriculumResult() *analysis.Result {
	return &analysis.Result{
		Mode:     analysis.ModeCurriculum,
		StageRun: "run_a",
		Intervals: map[int]curriculum.StageInterval{
			0: {Stage: 0, Start: 0, End: 99},
			1: {Stage: 1, Start: 100, End: 199},
		},
		Metrics: []analysis.MetricResult{
			{
				Metric: success,
				Stages: map[int]curriculum.CombinedStageResult{
					0: {Stage: 0, Mean: 0.5, Std: 0.1, CI: curriculum.CI{Lower: 0.4, Upper: 0.6}, NRuns: 3},
					1: {Stage: 1, Mean: 0.873, Std: 0.05, CI: curriculum.CI{Lower: 0.8, Upper: 0.9}, NRuns: 3},
				},
			},
			{
				Metric: reward,
				Stages: map[int]curriculum.CombinedStageResult{
					0: {Stage: 0, Mean: 153.2, CI: curriculum.CI{Insufficient: true}, NRuns: 1},
				},
			},
		},
	}
}

func finalOnlyResult() *analysis.Result {
	return &analysis.Result{
		Mode: analysis.ModeFinalPerformanceOnly,
		Metrics: []analysis.MetricResult{
			{
				Metric:    success,
				Aggregate: &curriculum.CombinedStageResult{Mean: 0.75, Std: 0.02, CI: curriculum.CI{Lower: 0.73, Upper: 0.77}, NRuns: 2},
			},
		},
	}
}

func TestWriteTextCurriculum(t *testing.T) {
	t.Parallel()

	w := report.Writer{StageNames: map[int]string{0: "Basic Hover"}, Confidence: 0.95}

	var buf bytes.Buffer
	require.NoError(t, w.WriteText(&buf, curriculumResult()))

	out := buf.String()
	assert.Contains(t, out, "Mode: curriculum-aware analysis")
	assert.Contains(t, out, "STAGE 0: Basic Hover")
	assert.Contains(t, out, "STAGE 1: Stage 1")
	assert.Contains(t, out, "95% CI")
	assert.Contains(t, out, "87.3% ± 5.0%")
	assert.Contains(t, out, "[80.0%, 90.0%]")
	assert.Contains(t, out, "153 ± 0.00")
	assert.Contains(t, out, report.InsufficientData)
	assert.Contains(t, out, "FINAL PERFORMANCE SUMMARY")
	assert.NotContains(t, out, "final-performance-only")

	// stage 0 comes before stage 1 and reward has no stage 1 row
	stage0 := strings.Index(out, "STAGE 0")
	stage1 := strings.Index(out, "STAGE 1")
	final := strings.Index(out, "FINAL PERFORMANCE SUMMARY")
	require.True(t, stage0 >= 0 && stage0 < stage1 && stage1 < final)
	assert.NotContains(t, out[stage1:final], "Cumulative Reward")

	// reward's final row is its highest stage, 0
	summary := out[final:]
	for _, line := range strings.Split(summary, "\n") {
		if strings.HasPrefix(line, "Cumulative Reward") {
			assert.Equal(t, "0", strings.TrimSpace(line[len(line)-5:]))
		}
	}
}

func TestWriteTextFinalOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Writer{}.WriteText(&buf, finalOnlyResult()))

	out := buf.String()
	assert.Contains(t, out, "Mode: final-performance-only analysis")
	assert.Contains(t, out, "curriculum stages not detected")
	assert.Contains(t, out, "75.0% ± 2.0%")
	assert.NotContains(t, out, "STAGE")
}

func TestWriteLaTeX(t *testing.T) {
	t.Parallel()

	w := report.Writer{StageNames: map[int]string{1: "Obstacles & Wind"}, Confidence: 0.95}

	var buf bytes.Buffer
	require.NoError(t, w.WriteLaTeX(&buf, curriculumResult()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `\begin{table}[htbp]`))
	assert.Contains(t, out, `\toprule`)
	assert.Contains(t, out, `95\% CI & Stage & Description`)
	assert.Contains(t, out, `Success Rate & 87.3\% $\pm$ 5.0\% & [80.0\%, 90.0\%] & 1 & Obstacles \& Wind \\`)
	assert.Contains(t, out, `Cumulative Reward & 153 $\pm$ 0.00 & insufficient data & 0 & Stage 0 \\`)
	assert.True(t, strings.HasSuffix(out, "\\end{table}\n"))
}

func TestWriteLaTeXFinalOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Writer{}.WriteLaTeX(&buf, finalOnlyResult()))

	out := buf.String()
	assert.Contains(t, out, "final-performance-only analysis")
	assert.Contains(t, out, `\begin{tabular}{lccc}`)
	assert.Contains(t, out, `Success Rate & 75.0\% $\pm$ 2.0\% & [73.0\%, 77.0\%] & 2 \\`)
}

var errWrite = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteErrors(t *testing.T) {
	t.Parallel()

	err := report.Writer{}.WriteText(failingWriter{}, curriculumResult())
	require.ErrorIs(t, err, errWrite)

	err = report.Writer{}.WriteLaTeX(failingWriter{}, curriculumResult())
	require.ErrorIs(t, err, errWrite)
}
