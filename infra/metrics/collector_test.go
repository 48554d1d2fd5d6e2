package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/evrouter/core/events"
	coremetrics "github.com/kilianp07/evrouter/core/metrics"
	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/internal/eventbus"
)

type captureSink struct {
	mu      sync.Mutex
	records []coremetrics.SearchRecord
}

func (c *captureSink) RecordSearch(records []coremetrics.SearchRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, records...)
	return nil
}

func (c *captureSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

func (c *captureSink) first() coremetrics.SearchRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records[0]
}

func TestEventCollector_RecordsCompletedSearches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New[events.Event]()
	defer bus.Close()
	sink := &captureSink{}
	StartEventCollector(ctx, bus, sink)

	bus.Publish(events.SearchCompletedEvent{
		QueryID:  "q1",
		Strategy: "astar",
		Start:    "A",
		Capacity: 6,
		Result: model.SearchResult{
			Path:          model.Path{"A", "C"},
			Cost:          5.1,
			NodesExpanded: 2,
			Runtime:       time.Millisecond,
		},
		Time: time.Now(),
	})

	assert.Eventually(t, func() bool { return sink.count() == 1 }, time.Second, 5*time.Millisecond)
	rec := sink.first()
	assert.Equal(t, "q1", rec.QueryID)
	assert.Equal(t, "astar", rec.Strategy)
	assert.Equal(t, "A", rec.Start)
	assert.Equal(t, 2, rec.NodesExpanded)
	assert.True(t, rec.Reachable)
}

func TestEventCollector_NilArgsAreNoops(t *testing.T) {
	// Must not panic.
	StartEventCollector(context.Background(), nil, coremetrics.NopSink{})
	StartEventCollector(context.Background(), eventbus.New[events.Event](), nil)
}
