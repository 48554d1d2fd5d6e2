package search

import (
	"errors"
	"fmt"

	"github.com/kilianp07/evrouter/core/model"
)

// Strategy kinds, as selected on the command line and reported in metrics.
const (
	KindCostOrdered     = "ucs"
	KindHeuristicGuided = "astar"
)

// ErrUnknownKind rejects a strategy name that is neither KindCostOrdered nor
// KindHeuristicGuided.
var ErrUnknownKind = errors.New("search: unknown strategy kind")

// Kinds lists the available strategy kinds in deterministic order.
func Kinds() []string { return []string{KindCostOrdered, KindHeuristicGuided} }

// New builds a single-use strategy of the named kind.
func New(kind string, net Network, start model.Location, capacity float64, opts ...Option) (Strategy, error) {
	switch kind {
	case KindCostOrdered:
		return NewCostOrdered(net, start, capacity, opts...)
	case KindHeuristicGuided:
		return NewHeuristicGuided(net, start, capacity, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
