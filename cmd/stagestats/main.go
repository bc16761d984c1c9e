// Command stagestats summarises curriculum training runs per stage.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/askiada/go-stagestats/internal/config"
	"github.com/askiada/go-stagestats/pkg/analysis"
	"github.com/askiada/go-stagestats/pkg/pipeline/drawer"
	"github.com/askiada/go-stagestats/pkg/pipeline/measure"
	"github.com/askiada/go-stagestats/pkg/report"
	"github.com/askiada/go-stagestats/pkg/series"
)

const defaultOutput = "curriculum_aware_summary.txt"

var (
	errNoRunDir  = errors.New("no valid run directory found")
	errNoMetrics = errors.New("no metric could be analysed")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runCLI(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type runDirs []string

func (r *runDirs) String() string { return strings.Join(*r, ",") }

func (r *runDirs) Set(v string) error {
	*r = append(*r, v)

	return nil
}

type cliFlags struct {
	configPath  string
	runs        runDirs
	out         string
	seed        string
	stageWindow int
	finalWindow int
	workers     int
	graph       string
	metricsFile string
}

func usage(stderr io.Writer) {
	fmt.Fprintln(stderr, "usage: stagestats [--config file.yaml] [--out summary.txt] [--seed n] [--stage-window n] [--final-window n]")
	fmt.Fprintln(stderr, "                  [--workers n] [--graph pipeline.dot] [--metrics-file metrics.prom] --run-dir <dir> [--run-dir <dir>...] [dir...]")
}

func runCLI(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var f cliFlags

	fs := flag.NewFlagSet("stagestats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.Var(&f.runs, "run-dir", "run directory holding <metric>.csv files, repeatable")
	fs.StringVar(&f.out, "out", defaultOutput, "text report path, the LaTeX table is written next to it")
	fs.StringVar(&f.seed, "seed", "", "bootstrap seed")
	fs.IntVar(&f.stageWindow, "stage-window", 0, "trailing samples per stage (overrides config)")
	fs.IntVar(&f.finalWindow, "final-window", 0, "trailing samples without stage data (overrides config)")
	fs.IntVar(&f.workers, "workers", 0, "metrics analysed concurrently (overrides config)")
	fs.StringVar(&f.graph, "graph", "", "write the analysis pipeline as a DOT graph to this path")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write pipeline timings in Prometheus text format to this path")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	f.runs = append(f.runs, fs.Args()...)
	if len(f.runs) == 0 {
		usage(stderr)

		return 2
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)

		return 2
	}

	cfg.Logging.SetDefaultLogger(stderr)

	err = run(ctx, f, cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "stagestats: %v\n", err)

		return 1
	}

	return 0
}

func loadConfig(f cliFlags) (config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		var err error

		cfg, err = config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
	}

	if f.seed != "" {
		seed, err := strconv.ParseUint(f.seed, 10, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid seed %q", f.seed)
		}

		cfg.Analysis.Seed = &seed
	}

	if f.stageWindow != 0 {
		cfg.Analysis.StageWindow = f.stageWindow
	}

	if f.finalWindow != 0 {
		cfg.Analysis.FinalWindow = f.finalWindow
	}

	if f.workers != 0 {
		cfg.Analysis.Workers = f.workers
	}

	return cfg, cfg.Validate()
}

// validRunDirs keeps the runs that are existing directories, in input order.
func validRunDirs(runs []string) ([]string, error) {
	valid := make([]string, 0, len(runs))

	for _, dir := range runs {
		info, err := os.Stat(dir)
		if err != nil {
			slog.Warn("skipping run directory", "run", dir, "error", err)

			continue
		}

		if !info.IsDir() {
			slog.Warn("skipping run directory", "run", dir, "error", "not a directory")

			continue
		}

		valid = append(valid, dir)
	}

	if len(valid) == 0 {
		return nil, errors.Wrapf(errNoRunDir, "checked %d", len(runs))
	}

	return valid, nil
}

func run(ctx context.Context, f cliFlags, cfg config.Config, stdout io.Writer) error {
	runs, err := validRunDirs(f.runs)
	if err != nil {
		return err
	}

	opts := cfg.Options()

	var msr *measure.DefaultMeasure
	if f.graph != "" || f.metricsFile != "" {
		msr = measure.NewDefaultMeasure()
		opts.PipelineOptions = append(opts.PipelineOptions, measure.PipelineMeasure(msr))
	}

	if f.graph != "" {
		opts.PipelineOptions = append(opts.PipelineOptions, drawer.PipelineDrawer(drawer.NewDOTDrawer(f.graph), msr))
	}

	analyzer, err := analysis.New(series.DirSource{}, opts)
	if err != nil {
		return errors.Wrap(err, "unable to create analyzer")
	}

	res, err := analyzer.Run(ctx, runs)
	if err != nil {
		return err
	}

	if len(res.Metrics) == 0 {
		return errors.Wrapf(errNoMetrics, "%d metrics configured over %d runs", len(opts.Metrics), len(runs))
	}

	if f.metricsFile != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(measure.NewCollector("stagestats", msr))

		err = prometheus.WriteToTextfile(f.metricsFile, reg)
		if err != nil {
			return errors.Wrapf(err, "unable to write metrics to %s", f.metricsFile)
		}
	}

	w := report.Writer{StageNames: cfg.StageNames, Confidence: cfg.Analysis.Confidence}

	err = writeFile(f.out, res, w.WriteText)
	if err != nil {
		return err
	}

	err = writeFile(latexPath(f.out), res, w.WriteLaTeX)
	if err != nil {
		return err
	}

	printSummary(stdout, res, f.out)

	return nil
}

func latexPath(out string) string {
	if strings.HasSuffix(out, ".txt") {
		return strings.TrimSuffix(out, ".txt") + "_latex.txt"
	}

	return out + "_latex.txt"
}

func writeFile(path string, res *analysis.Result, write func(io.Writer, *analysis.Result) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}

	err = write(file, res)
	if err != nil {
		file.Close()

		return errors.Wrapf(err, "unable to write %s", path)
	}

	err = file.Close()
	if err != nil {
		return errors.Wrapf(err, "unable to close %s", path)
	}

	return nil
}

func printSummary(stdout io.Writer, res *analysis.Result, out string) {
	fmt.Fprintf(stdout, "%s (%d metrics)\n", res.Mode.Label(), len(res.Metrics))

	for _, r := range res.FinalSummary() {
		line := fmt.Sprintf("  %s: %s", r.Metric.Name, report.FormatMeanStd(r.Result, r.Metric.Kind))
		if r.HasStage {
			line += fmt.Sprintf(" (stage %d)", r.Stage)
		}

		fmt.Fprintln(stdout, line)
	}

	fmt.Fprintf(stdout, "report written to %s and %s\n", out, latexPath(out))
}
