// Package network holds the read-only road-network model consumed by the
// search strategies: adjacency, planar coordinates, charging-station
// membership and the straight-line nearest-station heuristic.
//
// A Network is built once from a Config and never mutated afterwards, so any
// number of concurrently running searches may share a single instance without
// locking.
//
// Admissibility contract: for the heuristic-guided strategy to return a
// cost-optimal path, the straight-line distance between any two locations
// must never exceed their true shortest-path distance in the weighted graph.
// This is a property of the authored data; the model does not verify it.
package network

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/kilianp07/evrouter/core/model"
)

// Network is the road-network model. Read-only after construction.
type Network struct {
	adjacency map[model.Location][]model.Edge
	coords    map[model.Location]orb.Point
	stations  map[model.Location]struct{}
	index     *stationIndex
}

// New builds a Network from its authored description.
//
// Validation: every edge distance must be non-negative (ErrNegativeDistance)
// and every charging station must be a defined node (ErrStationUnknown).
// Edges referencing undefined nodes are kept as authored; they surface later
// as ErrUnknownLocation if the heuristic ever needs the missing coordinate.
func New(cfg Config) (*Network, error) {
	n := &Network{
		adjacency: make(map[model.Location][]model.Edge, len(cfg.Nodes)),
		coords:    make(map[model.Location]orb.Point, len(cfg.Nodes)),
		stations:  make(map[model.Location]struct{}),
	}
	for _, node := range cfg.Nodes {
		n.coords[model.Location(node.ID)] = orb.Point{node.X, node.Y}
	}
	for _, id := range cfg.Stations {
		loc := model.Location(id)
		if _, ok := n.coords[loc]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrStationUnknown, loc)
		}
		n.stations[loc] = struct{}{}
	}
	for _, e := range cfg.Edges {
		if e.Distance < 0 {
			return nil, fmt.Errorf("%w: %s->%s distance=%v", ErrNegativeDistance, e.From, e.To, e.Distance)
		}
		from := model.Location(e.From)
		n.adjacency[from] = append(n.adjacency[from], model.Edge{To: model.Location(e.To), Distance: e.Distance})
	}
	n.index = newStationIndex(n.stations, n.coords)
	return n, nil
}

// Default returns the built-in reference city network.
func Default() *Network {
	n, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig is authored data shipped with the binary.
		panic(fmt.Sprintf("network: invalid default config: %v", err))
	}
	return n
}

// Neighbors returns the outgoing edges of loc in authored order. An unknown
// location yields an empty slice, not an error: the search treats it as a
// dead end rather than a failure.
func (n *Network) Neighbors(loc model.Location) []model.Edge {
	return n.adjacency[loc]
}

// IsChargingStation reports whether loc is a valid search goal.
func (n *Network) IsChargingStation(loc model.Location) bool {
	_, ok := n.stations[loc]
	return ok
}

// StraightLineDistance returns the planar Euclidean distance between two
// locations' coordinates. Either location missing a coordinate yields
// ErrUnknownLocation.
func (n *Network) StraightLineDistance(a, b model.Location) (float64, error) {
	pa, ok := n.coords[a]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLocation, a)
	}
	pb, ok := n.coords[b]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLocation, b)
	}
	return planar.Distance(pa, pb), nil
}

// NearestStationDistance returns the minimum straight-line distance from loc
// to any charging station: 0 when loc is itself a station (no coordinate
// lookup needed), +Inf when the network has no stations at all. A non-station
// location without a coordinate yields ErrUnknownLocation.
//
// The candidate station comes from the R-tree index; the reported distance is
// recomputed exactly from the coordinates.
func (n *Network) NearestStationDistance(loc model.Location) (float64, error) {
	if n.IsChargingStation(loc) {
		return 0, nil
	}
	p, ok := n.coords[loc]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLocation, loc)
	}
	nearest, ok := n.index.nearest(p)
	if !ok {
		return math.Inf(1), nil
	}
	return planar.Distance(p, nearest), nil
}

// Coordinate returns the planar coordinate of loc, if defined.
func (n *Network) Coordinate(loc model.Location) (orb.Point, bool) {
	p, ok := n.coords[loc]
	return p, ok
}

// Locations returns all locations with defined coordinates, sorted by ID.
func (n *Network) Locations() []model.Location {
	out := make([]model.Location, 0, len(n.coords))
	for loc := range n.coords {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Stations returns all charging stations, sorted by ID.
func (n *Network) Stations() []model.Location {
	out := make([]model.Location, 0, len(n.stations))
	for loc := range n.stations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
