package metrics

import (
	"math"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/evrouter/core/metrics"
)

// PromSink records search outcomes in Prometheus metrics.
type PromSink struct {
	searches *prometheus.CounterVec
	runtime  *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	cost     *prometheus.GaugeVec
}

// NewPromSink registers search metrics on the default Prometheus registerer.
// The metrics server is started separately on cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_searches_total",
		Help: "Total number of completed searches",
	}, []string{"strategy", "reachable"})
	runtime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "route_search_runtime_seconds",
		Help:    "Wall-clock duration of the search loop",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	}, []string{"strategy"})
	expanded := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "route_search_nodes_expanded",
		Help:    "Frontier entries popped before termination",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"strategy"})
	cost := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "route_search_last_cost_km",
		Help: "Cost of the most recent reachable route per strategy",
	}, []string{"strategy"})

	if err := register(reg, &searches); err != nil {
		return nil, err
	}
	if err := register(reg, &runtime); err != nil {
		return nil, err
	}
	if err := register(reg, &expanded); err != nil {
		return nil, err
	}
	if err := register(reg, &cost); err != nil {
		return nil, err
	}

	return &PromSink{searches: searches, runtime: runtime, expanded: expanded, cost: cost}, nil
}

// register adds c to reg, reusing the existing collector when it was already
// registered (repeated sink construction in one process).
func register[C prometheus.Collector](reg prometheus.Registerer, c *C) error {
	if err := reg.Register(*c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return err
		}
		existing, ok := are.ExistingCollector.(C)
		if !ok {
			return err
		}
		*c = existing
	}
	return nil
}

// RecordSearch updates the counters, histograms and gauges for each record.
func (s *PromSink) RecordSearch(records []coremetrics.SearchRecord) error {
	for _, r := range records {
		s.searches.WithLabelValues(r.Strategy, strconv.FormatBool(r.Reachable)).Inc()
		s.runtime.WithLabelValues(r.Strategy).Observe(r.Runtime.Seconds())
		s.expanded.WithLabelValues(r.Strategy).Observe(float64(r.NodesExpanded))
		if r.Reachable && !math.IsInf(r.Cost, 1) {
			s.cost.WithLabelValues(r.Strategy).Set(r.Cost)
		}
	}
	return nil
}
