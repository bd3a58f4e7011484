// Package metrics records calculation statistics with Prometheus collectors
// on a private registry. Nothing is served over the network: the registry is
// dumped in the text exposition format for the node-exporter textfile
// collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/dangle/internal/cevian"
)

const namespace = "dangle"

// Collector groups the application's Prometheus metrics. A nil *Collector
// is valid and records nothing.
type Collector struct {
	registry        *prometheus.Registry
	calculations    *prometheus.CounterVec
	witnesses       *prometheus.CounterVec
	candidates      *prometheus.CounterVec
	inconsistencies prometheus.Counter
	duration        *prometheus.HistogramVec
}

// NewCollector creates the collectors and registers them, together with the
// Go runtime collector, on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Number of d_angle(n) evaluations by method.",
		}, []string{"method"}),
		witnesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "witnesses_total",
			Help:      "Concurrent cevian triples found by method.",
		}, []string{"method"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Candidate (i, j, k) triples examined by method.",
		}, []string{"method"}),
		inconsistencies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inconsistencies_total",
			Help:      "Cross-check disagreements between computation paths.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent computing one d_angle(n).",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"method"}),
	}
	c.registry.MustRegister(
		c.calculations,
		c.witnesses,
		c.candidates,
		c.inconsistencies,
		c.duration,
		collectors.NewGoCollector(),
	)
	return c
}

// ObserveResult records one completed calculation.
func (c *Collector) ObserveResult(method string, res cevian.Result, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.calculations.WithLabelValues(method).Inc()
	c.witnesses.WithLabelValues(method).Add(float64(res.Count))
	c.candidates.WithLabelValues(method).Add(float64(res.Candidates))
	c.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveInconsistency records one cross-check disagreement.
func (c *Collector) ObserveInconsistency() {
	if c == nil {
		return
	}
	c.inconsistencies.Inc()
}

// Registry exposes the underlying registry as a Gatherer.
func (c *Collector) Registry() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile writes the current metrics to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
