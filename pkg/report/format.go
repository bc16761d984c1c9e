// Package report renders analysis results as a text report and a LaTeX table.
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/askiada/go-stagestats/pkg/analysis"
	"github.com/askiada/go-stagestats/pkg/curriculum"
)

// InsufficientData replaces a confidence interval that could not be estimated.
const InsufficientData = "insufficient data"

// FormatValue renders v according to kind: percentages as v*100 with one decimal, floats
// rounded to an integer above 100 in absolute value and with two decimals otherwise. Any
// other kind gets three decimals.
func FormatValue(v float64, kind analysis.Kind) string {
	switch kind {
	case analysis.KindPercentage:
		return fmt.Sprintf("%.1f%%", v*100)
	case analysis.KindFloat:
		if math.Abs(v) > 100 {
			return fmt.Sprintf("%.0f", v)
		}

		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

// FormatMeanStd renders "mean ± std".
func FormatMeanStd(res curriculum.CombinedStageResult, kind analysis.Kind) string {
	return FormatValue(res.Mean, kind) + " ± " + FormatValue(res.Std, kind)
}

// FormatCI renders "[lower, upper]", or InsufficientData for the undefined interval.
func FormatCI(ci curriculum.CI, kind analysis.Kind) string {
	if ci.Insufficient {
		return InsufficientData
	}

	return "[" + FormatValue(ci.Lower, kind) + ", " + FormatValue(ci.Upper, kind) + "]"
}

// ConfidenceLabel renders a confidence level as a column title, 0.95 gives "95% CI".
func ConfidenceLabel(confidence float64) string {
	pct := math.Round(confidence*1000) / 10

	return strconv.FormatFloat(pct, 'f', -1, 64) + "% CI"
}

// StageDescription returns the configured name of a stage, or "Stage N".
func StageDescription(names map[int]string, stage int) string {
	if name, ok := names[stage]; ok && name != "" {
		return name
	}

	return "Stage " + strconv.Itoa(stage)
}
