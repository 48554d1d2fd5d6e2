// Package metrics defines the interfaces for recording completed searches.
// Sinks like the Prometheus and InfluxDB adapters in infra/metrics implement
// Sink and can be fanned out with the MultiSink there; NopSink serves as the
// default when no backend is configured.
package metrics

import "time"

// SearchRecord represents one completed search to be recorded.
type SearchRecord struct {
	QueryID       string
	Strategy      string
	Start         string
	Capacity      float64
	Cost          float64
	NodesExpanded int
	Runtime       time.Duration
	Reachable     bool
	Time          time.Time
}

// Sink records search outcomes for observability purposes. Recording must
// never influence the search result.
type Sink interface {
	RecordSearch(records []SearchRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSearch([]SearchRecord) error { return nil }
