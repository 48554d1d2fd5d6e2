package metrics

import coremetrics "github.com/kilianp07/evrouter/core/metrics"

// MultiSink fans search records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSearch forwards the records to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordSearch(records []coremetrics.SearchRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordSearch(records); err != nil {
			return err
		}
	}
	return nil
}
