// Package events defines the notifications published on the internal event
// bus after a query completes. Observability consumers (metrics collectors)
// subscribe to them; the search itself never sees the bus.
package events

import (
	"time"

	"github.com/kilianp07/evrouter/core/model"
)

// Event is the union of bus payloads.
type Event interface{}

// SearchCompletedEvent is published once per finished query.
type SearchCompletedEvent struct {
	// QueryID correlates log lines, metrics and charts for one invocation.
	QueryID  string
	Strategy string
	Start    model.Location
	Capacity float64
	Result   model.SearchResult
	Time     time.Time
}
