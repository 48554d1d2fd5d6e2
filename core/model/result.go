package model

import (
	"math"
	"time"
)

// CostUnreachable is the sentinel cost reported when no charging station can
// be reached under the battery constraint.
func CostUnreachable() float64 { return math.Inf(1) }

// SearchResult is the immutable outcome of a single search invocation. The
// strategy that produced it keeps no reference to it after returning; the
// caller owns it exclusively.
type SearchResult struct {
	// Path is the route from the start location to a charging station.
	// Empty when no station is reachable.
	Path Path
	// Cost is the sum of edge distances along Path, or +Inf when unreachable.
	Cost float64
	// NodesExpanded counts frontier entries popped before termination.
	NodesExpanded int
	// Runtime is the wall-clock duration of the search loop. Informational
	// only; it never influences the search outcome.
	Runtime time.Duration
}

// Reachable reports whether the search found a charging station.
func (r SearchResult) Reachable() bool {
	return len(r.Path) > 0 && !math.IsInf(r.Cost, 1)
}
