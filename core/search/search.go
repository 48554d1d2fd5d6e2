// Package search implements the battery-constrained route search to the
// nearest charging station.
//
// Two interchangeable strategies explore the same (location, battery) state
// space: CostOrdered expands strictly by accumulated distance (uniform-cost
// search) and HeuristicGuided adds an admissible straight-line estimate of
// the remaining distance to the nearest station (A*). An edge is traversable
// only when the remaining charge covers its distance; arriving at a node
// restores the charge to the maximum capacity. The recharge-at-every-node
// behavior is deliberate and can be narrowed to stations only with
// WithRechargeOnlyAtStations.
//
// A strategy instance is single-use: one constructed query answers one
// Search call. Failing to find a station is a normal result, never an error.
package search

import (
	"errors"

	"github.com/kilianp07/evrouter/core/model"
)

// Network is the road-network contract the search consumes. Implemented by
// *network.Network.
type Network interface {
	// Neighbors returns the outgoing edges of loc; empty for an unknown
	// location.
	Neighbors(loc model.Location) []model.Edge
	// IsChargingStation reports whether loc is a valid goal.
	IsChargingStation(loc model.Location) bool
	// NearestStationDistance returns an admissible estimate of the distance
	// from loc to the closest charging station.
	NearestStationDistance(loc model.Location) (float64, error)
}

// Strategy answers one nearest-charging-station query.
type Strategy interface {
	// Search runs the query to completion and returns its result. "No
	// reachable station" is reported through the result, not the error; the
	// error only surfaces malformed network data. Calling Search a second
	// time on the same instance is undefined.
	Search() (model.SearchResult, error)
}

// Sentinel errors returned by the strategy constructors.
var (
	// ErrNegativeCapacity rejects a negative initial battery capacity.
	// A capacity of exactly zero is accepted: the query succeeds trivially
	// when the start location is itself a charging station and exhausts
	// immediately otherwise.
	ErrNegativeCapacity = errors.New("search: initial battery capacity must be non-negative")

	// ErrNilNetwork rejects a nil network model.
	ErrNilNetwork = errors.New("search: network is nil")
)

// phase tracks the lifecycle of a single query.
type phase int

const (
	phaseInitialized phase = iota
	phaseExpanding
	phaseSucceeded
	phaseExhausted
)

// state is the visited-set key. Battery collapses to one of two values under
// the default recharge policy, but keeping the pair preserves correctness
// when the policy narrows recharging to stations.
type state struct {
	loc     model.Location
	battery float64
}

// isValidMove reports whether the remaining charge covers the edge distance.
func isValidMove(battery, distance float64) bool {
	return distance <= battery
}
