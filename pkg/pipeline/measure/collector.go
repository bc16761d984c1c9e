package measure

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes the durations recorded in a Measure as Prometheus metrics.
type Collector struct {
	measure       Measure
	stepDuration  *prometheus.Desc
	stepTotal     *prometheus.Desc
	stepEnd       *prometheus.Desc
	transportTime *prometheus.Desc
}

// NewCollector creates a collector reading msr on every scrape. namespace prefixes every
// metric name.
func NewCollector(namespace string, msr Measure) *Collector {
	return &Collector{
		measure: msr,
		stepDuration: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pipeline", "step_avg_duration_seconds"),
			"Average computation time of a pipeline step per element.",
			[]string{"step"}, nil,
		),
		stepTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pipeline", "step_elements_total"),
			"Number of elements processed by a pipeline step.",
			[]string{"step"}, nil,
		),
		stepEnd: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pipeline", "step_end_seconds"),
			"Time between the pipeline start and the end of a sink.",
			[]string{"step"}, nil,
		),
		transportTime: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pipeline", "transport_avg_duration_seconds"),
			"Average time an element waited on the channel between two steps.",
			[]string{"step", "input"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.stepDuration
	ch <- c.stepTotal
	ch <- c.stepEnd
	ch <- c.transportTime
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, mt := range c.measure.AllMetrics() {
		ch <- prometheus.MustNewConstMetric(c.stepDuration, prometheus.GaugeValue, mt.AVGDuration().Seconds(), name)
		ch <- prometheus.MustNewConstMetric(c.stepTotal, prometheus.CounterValue, float64(mt.Total()), name)

		if end := mt.GetTotalDuration(); end > 0 {
			ch <- prometheus.MustNewConstMetric(c.stepEnd, prometheus.GaugeValue, end.Seconds(), name)
		}

		for input, info := range mt.AVGTransportDuration() {
			ch <- prometheus.MustNewConstMetric(c.transportTime, prometheus.GaugeValue, info.Elapsed.Seconds(), name, input)
		}
	}
}

var _ prometheus.Collector = (*Collector)(nil)
