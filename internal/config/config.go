// Package config loads the stagestats configuration file.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-stagestats/pkg/analysis"
)

var ErrInvalidLogging = errors.New("invalid logging config")

// Metric configuration of a single series.
type MetricConfig struct {
	// File name of the series in a run directory, without the .csv extension.
	Key string `yaml:"key"`
	// Name displayed in reports. Defaults to the key.
	Name string `yaml:"name"`
	// How values are rendered (percentage, float).
	Kind string `yaml:"kind"`
}

// AnalysisConfig holds the statistical parameters.
type AnalysisConfig struct {
	// Number of trailing samples per stage the statistics are computed on.
	StageWindow int `yaml:"stageWindow"`
	// Number of trailing samples used without curriculum stages.
	FinalWindow int `yaml:"finalWindow"`
	NResamples  int `yaml:"nResamples"`
	// Confidence level of the bootstrap intervals, in (0, 1).
	Confidence float64 `yaml:"confidence"`
	// Seed of the bootstrap resampling. Unseeded when absent.
	Seed *uint64 `yaml:"seed,omitempty"`
	// Number of metrics analysed concurrently.
	Workers int `yaml:"workers"`
	// Key of the curriculum stage series.
	StageMetric string `yaml:"stageMetric"`
}

type Config struct {
	Analysis   AnalysisConfig `yaml:"analysis"`
	Metrics    []MetricConfig `yaml:"metrics"`
	StageNames map[int]string `yaml:"stageNames"`
	Logging    LoggingConfig  `yaml:"logging"`
}

// Default returns the configuration used without a file.
func Default() Config {
	var c Config
	c.applyDefaults()

	return c
}

// Load reads the YAML configuration at path. Unknown fields are rejected and missing ones
// take their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to read config %s", path)
	}

	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to load config %s", path)
	}

	return c, nil
}

// Parse decodes and validates a YAML configuration.
func Parse(r io.Reader) (Config, error) {
	var c Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "unable to decode config")
	}

	c.applyDefaults()

	err = c.Validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	def := analysis.DefaultOptions()

	if c.Analysis.StageWindow == 0 {
		c.Analysis.StageWindow = def.StageWindow
	}

	if c.Analysis.FinalWindow == 0 {
		c.Analysis.FinalWindow = def.FinalWindow
	}

	if c.Analysis.NResamples == 0 {
		c.Analysis.NResamples = def.Resamples
	}

	if c.Analysis.Confidence == 0 {
		c.Analysis.Confidence = def.Confidence
	}

	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = def.Workers
	}

	if c.Analysis.StageMetric == "" {
		c.Analysis.StageMetric = def.StageMetric
	}

	if len(c.Metrics) == 0 {
		for _, m := range def.Metrics {
			c.Metrics = append(c.Metrics, MetricConfig{Key: m.Key, Name: m.Name, Kind: string(m.Kind)})
		}
	}

	for i := range c.Metrics {
		if c.Metrics[i].Name == "" {
			c.Metrics[i].Name = c.Metrics[i].Key
		}

		if c.Metrics[i].Kind == "" {
			c.Metrics[i].Kind = string(analysis.KindFloat)
		}
	}

	if c.StageNames == nil {
		c.StageNames = DefaultStageNames()
	}

	if c.Logging.LevelStr == "" {
		c.Logging.LevelStr = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// DefaultStageNames describes the stages of the drone navigation curriculum.
func DefaultStageNames() map[int]string {
	return map[int]string{
		0: "Basic Hover",
		1: "Simple Navigation",
		2: "Obstacle Avoidance",
		3: "Urban Environment",
		4: "Adverse Weather",
		5: "Emergency Scenarios",
	}
}

// Validate checks the configuration can be turned into analysis options.
func (c Config) Validate() error {
	switch c.Logging.LevelStr {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidLogging, "unknown level %q", c.Logging.LevelStr)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidLogging, "unknown format %q", c.Logging.Format)
	}

	err := c.Options().Validate()
	if err != nil {
		return errors.Wrap(err, "invalid analysis settings")
	}

	return nil
}

// Options returns the analysis options described by the configuration.
func (c Config) Options() analysis.Options {
	metrics := make([]analysis.MetricSpec, len(c.Metrics))
	for i, m := range c.Metrics {
		metrics[i] = analysis.MetricSpec{Key: m.Key, Name: m.Name, Kind: analysis.Kind(m.Kind)}
	}

	return analysis.Options{
		StageMetric: c.Analysis.StageMetric,
		Metrics:     metrics,
		StageWindow: c.Analysis.StageWindow,
		FinalWindow: c.Analysis.FinalWindow,
		Resamples:   c.Analysis.NResamples,
		Confidence:  c.Analysis.Confidence,
		Seed:        c.Analysis.Seed,
		Workers:     c.Analysis.Workers,
	}
}
