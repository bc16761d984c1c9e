package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-stagestats/pkg/analysis"
)

var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"_", `\_`,
	"#", `\#`,
	"$", `\$`,
	"±", `$\pm$`,
)

func latexEscape(s string) string {
	return latexReplacer.Replace(s)
}

// WriteLaTeX writes the final performance summary of res as a booktabs table.
func (w Writer) WriteLaTeX(out io.Writer, res *analysis.Result) error {
	var buf bytes.Buffer

	staged := res.Mode == analysis.ModeCurriculum
	ciLabel := latexEscape(ConfidenceLabel(w.confidence()))

	fmt.Fprintln(&buf, `\begin{table}[htbp]`)
	fmt.Fprintln(&buf, `\centering`)

	if staged {
		fmt.Fprintln(&buf, `\caption{Final Performance Metrics by Highest Curriculum Stage Achieved}`)
		fmt.Fprintln(&buf, `\label{tab:curriculum_final_performance}`)
		fmt.Fprintln(&buf, `\begin{tabular}{lcccc}`)
		fmt.Fprintln(&buf, `\toprule`)
		fmt.Fprintf(&buf, "Metric & Mean $\\pm$ Std & %s & Stage & Description \\\\\n", ciLabel)
	} else {
		fmt.Fprintln(&buf, `\caption{Final Performance Metrics (final-performance-only analysis)}`)
		fmt.Fprintln(&buf, `\label{tab:final_performance}`)
		fmt.Fprintln(&buf, `\begin{tabular}{lccc}`)
		fmt.Fprintln(&buf, `\toprule`)
		fmt.Fprintf(&buf, "Metric & Mean $\\pm$ Std & %s & N \\\\\n", ciLabel)
	}

	fmt.Fprintln(&buf, `\midrule`)

	for _, r := range res.FinalSummary() {
		kind := r.Metric.Kind
		cells := []string{
			latexEscape(r.Metric.Name),
			latexEscape(FormatMeanStd(r.Result, kind)),
			latexEscape(FormatCI(r.Result.CI, kind)),
		}

		if staged {
			cells = append(cells, fmt.Sprint(r.Stage), latexEscape(StageDescription(w.StageNames, r.Stage)))
		} else {
			cells = append(cells, fmt.Sprint(r.Result.NRuns))
		}

		fmt.Fprintf(&buf, "%s \\\\\n", strings.Join(cells, " & "))
	}

	fmt.Fprintln(&buf, `\bottomrule`)
	fmt.Fprintln(&buf, `\end{tabular}`)
	fmt.Fprintln(&buf, `\end{table}`)

	_, err := out.Write(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "unable to write latex table")
	}

	return nil
}
