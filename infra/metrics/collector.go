package metrics

import (
	"context"

	"github.com/kilianp07/evrouter/core/events"
	coremetrics "github.com/kilianp07/evrouter/core/metrics"
	"github.com/kilianp07/evrouter/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records a SearchRecord
// for every completed query. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus[events.Event], sink coremetrics.Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				done, ok := ev.(events.SearchCompletedEvent)
				if !ok {
					continue
				}
				_ = sink.RecordSearch([]coremetrics.SearchRecord{{
					QueryID:       done.QueryID,
					Strategy:      done.Strategy,
					Start:         string(done.Start),
					Capacity:      done.Capacity,
					Cost:          done.Result.Cost,
					NodesExpanded: done.Result.NodesExpanded,
					Runtime:       done.Result.Runtime,
					Reachable:     done.Result.Reachable(),
					Time:          done.Time,
				}})
			}
		}
	}()
}
