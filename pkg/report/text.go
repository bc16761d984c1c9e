package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-stagestats/pkg/analysis"
	"github.com/askiada/go-stagestats/pkg/curriculum"
)

const (
	titleWidth = 100
	tableWidth = 80
)

// Writer renders a Result.
type Writer struct {
	// StageNames describes stages in section headers and the LaTeX table.
	StageNames map[int]string
	// Confidence is the level the intervals were computed at, used in column titles.
	Confidence float64
}

func (w Writer) confidence() float64 {
	if w.Confidence <= 0 || w.Confidence >= 1 {
		return curriculum.DefaultConfidence
	}

	return w.Confidence
}

func row(buf *bytes.Buffer, name, meanStd, ci string, last interface{}) {
	fmt.Fprintf(buf, "%-25s %-20s %-25s %-5v\n", name, meanStd, ci, last)
}

func (w Writer) header(buf *bytes.Buffer, last string) {
	rule := strings.Repeat("-", tableWidth)
	fmt.Fprintln(buf, rule)
	row(buf, "Metric", "Mean ± Std", ConfidenceLabel(w.confidence()), last)
	fmt.Fprintln(buf, rule)
}

// WriteText writes the text report of res to out.
func (w Writer) WriteText(out io.Writer, res *analysis.Result) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "CURRICULUM-AWARE STATISTICAL SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", titleWidth))
	fmt.Fprintf(&buf, "Mode: %s\n\n", res.Mode.Label())

	switch res.Mode {
	case analysis.ModeCurriculum:
		w.writeStages(&buf, res)
	default:
		w.writeFinalOnly(&buf, res)
	}

	_, err := out.Write(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "unable to write text report")
	}

	return nil
}

func (w Writer) writeStages(buf *bytes.Buffer, res *analysis.Result) {
	fmt.Fprintln(buf, "Performance metrics analyzed per curriculum stage")
	fmt.Fprintf(buf, "(Stage structure taken from %s)\n\n", res.StageRun)

	for _, stage := range res.StageIDs() {
		fmt.Fprintf(buf, "STAGE %d: %s\n", stage, StageDescription(w.StageNames, stage))
		w.header(buf, "N")

		for _, m := range res.Metrics {
			data, ok := m.Stages[stage]
			if !ok {
				continue
			}

			row(buf, m.Metric.Name, FormatMeanStd(data, m.Metric.Kind), FormatCI(data.CI, m.Metric.Kind), data.NRuns)
		}

		fmt.Fprintf(buf, "%s\n\n", strings.Repeat("-", tableWidth))
	}

	fmt.Fprintln(buf, "FINAL PERFORMANCE SUMMARY (Highest Stage Achieved)")
	fmt.Fprintln(buf, strings.Repeat("=", tableWidth))
	w.header(buf, "Stage")

	for _, r := range res.FinalSummary() {
		row(buf, r.Metric.Name, FormatMeanStd(r.Result, r.Metric.Kind), FormatCI(r.Result.CI, r.Metric.Kind), r.Stage)
	}

	fmt.Fprintln(buf, strings.Repeat("-", tableWidth))
}

func (w Writer) writeFinalOnly(buf *bytes.Buffer, res *analysis.Result) {
	fmt.Fprintln(buf, "Final performance analysis (curriculum stages not detected)")
	fmt.Fprintln(buf)
	w.header(buf, "N")

	for _, r := range res.FinalSummary() {
		row(buf, r.Metric.Name, FormatMeanStd(r.Result, r.Metric.Kind), FormatCI(r.Result.CI, r.Metric.Kind), r.Result.NRuns)
	}

	fmt.Fprintln(buf, strings.Repeat("-", tableWidth))
}
