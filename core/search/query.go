package search

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/kilianp07/evrouter/core/model"
)

// heuristicFunc estimates the remaining distance from a location to the
// nearest charging station. nil disables guidance (uniform-cost behavior).
type heuristicFunc func(model.Location) (float64, error)

// query holds the mutable state of one search invocation. Both strategies
// share it: they differ only in the priority attached to frontier entries.
type query struct {
	net      Network
	start    model.Location
	capacity float64
	opts     Options

	phase    phase
	frontier frontier
	visited  map[state]bool
	expanded int
}

func newQuery(net Network, start model.Location, capacity float64, opts ...Option) (*query, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeCapacity, capacity)
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &query{
		net:      net,
		start:    start,
		capacity: capacity,
		opts:     o,
		phase:    phaseInitialized,
		visited:  make(map[state]bool),
	}, nil
}

func (q *query) isGoal(loc model.Location) bool {
	return q.net.IsChargingStation(loc)
}

// run drives the shared expansion loop. The start entry carries priority 0:
// it is alone on the frontier, so its ordering never matters and an unknown
// start location exhausts silently instead of failing a heuristic lookup.
func (q *query) run(h heuristicFunc) (model.SearchResult, error) {
	began := time.Now()
	q.phase = phaseExpanding
	heap.Init(&q.frontier)
	heap.Push(&q.frontier, &entry{
		priority: 0,
		cost:     0,
		loc:      q.start,
		battery:  q.capacity,
		path:     model.Path{q.start},
	})

	for q.frontier.Len() > 0 {
		e := heap.Pop(&q.frontier).(*entry)
		q.expanded++

		if q.isGoal(e.loc) {
			// Return the cost and path exactly as carried by the popped
			// entry; no further relaxation.
			q.phase = phaseSucceeded
			if q.opts.Logger != nil {
				q.opts.Logger.Debugw("station reached", map[string]any{
					"station":  string(e.loc),
					"cost":     e.cost,
					"expanded": q.expanded,
				})
			}
			return model.SearchResult{
				Path:          e.path,
				Cost:          e.cost,
				NodesExpanded: q.expanded,
				Runtime:       time.Since(began),
			}, nil
		}

		st := state{loc: e.loc, battery: e.battery}
		if q.visited[st] {
			continue // stale frontier entry
		}
		q.visited[st] = true

		for _, edge := range q.net.Neighbors(e.loc) {
			if !isValidMove(e.battery, edge.Distance) {
				continue
			}
			newCost := e.cost + edge.Distance
			newBattery := q.nextBattery(e.battery, edge)
			if q.visited[state{loc: edge.To, battery: newBattery}] {
				continue
			}
			priority := newCost
			if h != nil {
				remaining, err := h(edge.To)
				if err != nil {
					return model.SearchResult{}, fmt.Errorf("search: heuristic at %q: %w", edge.To, err)
				}
				priority = newCost + remaining
			}
			heap.Push(&q.frontier, &entry{
				priority: priority,
				cost:     newCost,
				loc:      edge.To,
				battery:  newBattery,
				path:     e.path.Extend(edge.To),
			})
		}
	}

	q.phase = phaseExhausted
	if q.opts.Logger != nil {
		q.opts.Logger.Debugw("no station reachable", map[string]any{
			"start":    string(q.start),
			"capacity": q.capacity,
			"expanded": q.expanded,
		})
	}
	return model.SearchResult{
		Path:          nil,
		Cost:          model.CostUnreachable(),
		NodesExpanded: q.expanded,
		Runtime:       time.Since(began),
	}, nil
}

// nextBattery applies the recharge policy on arrival at edge.To.
func (q *query) nextBattery(battery float64, edge model.Edge) float64 {
	if q.opts.RechargeOnlyAtStations && !q.net.IsChargingStation(edge.To) {
		return battery - edge.Distance
	}
	return q.capacity
}
