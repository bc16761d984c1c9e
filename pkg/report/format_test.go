package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-stagestats/pkg/analysis"
	"github.com/askiada/go-stagestats/pkg/curriculum"
	"github.com/askiada/go-stagestats/pkg/report"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		v    float64
		kind analysis.Kind
		want string
	}{
		"percentage":      {v: 0.873, kind: analysis.KindPercentage, want: "87.3%"},
		"percentage zero": {v: 0, kind: analysis.KindPercentage, want: "0.0%"},
		"large float":     {v: 153.2, kind: analysis.KindFloat, want: "153"},
		"large negative":  {v: -250.7, kind: analysis.KindFloat, want: "-251"},
		"small float":     {v: 0.42, kind: analysis.KindFloat, want: "0.42"},
		"boundary float":  {v: 100, kind: analysis.KindFloat, want: "100.00"},
		"unknown kind":    {v: 1.23456, kind: analysis.Kind("ratio"), want: "1.235"},
		"empty kind":      {v: 2, kind: "", want: "2.000"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, report.FormatValue(tc.v, tc.kind))
		})
	}
}

func TestFormatCI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[80.0%, 90.0%]", report.FormatCI(curriculum.CI{Lower: 0.8, Upper: 0.9}, analysis.KindPercentage))
	assert.Equal(t, report.InsufficientData, report.FormatCI(curriculum.CI{Insufficient: true}, analysis.KindPercentage))
}

func TestFormatMeanStd(t *testing.T) {
	t.Parallel()

	res := curriculum.CombinedStageResult{Mean: 153.2, Std: 12.346}
	assert.Equal(t, "153 ± 12.35", report.FormatMeanStd(res, analysis.KindFloat))
}

func TestConfidenceLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "95% CI", report.ConfidenceLabel(0.95))
	assert.Equal(t, "99% CI", report.ConfidenceLabel(0.99))
	assert.Equal(t, "97.5% CI", report.ConfidenceLabel(0.975))
}

func TestStageDescription(t *testing.T) {
	t.Parallel()

	names := map[int]string{0: "Basic Hover", 2: ""}
	assert.Equal(t, "Basic Hover", report.StageDescription(names, 0))
	assert.Equal(t, "Stage 1", report.StageDescription(names, 1))
	assert.Equal(t, "Stage 2", report.StageDescription(names, 2))
	assert.Equal(t, "Stage 3", report.StageDescription(nil, 3))
}
