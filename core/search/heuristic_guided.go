package search

import "github.com/kilianp07/evrouter/core/model"

// HeuristicGuided is the A*-style strategy: each frontier entry is keyed by
// accumulated distance plus the straight-line distance from its location to
// the nearest charging station, with ties broken first by accumulated
// distance and then by the shared tie-break rule.
//
// With admissible network data it returns the same optimal cost as
// CostOrdered while typically expanding fewer states.
type HeuristicGuided struct {
	q *query
}

// NewHeuristicGuided builds a single-use heuristic-guided query for the given
// network, start location and initial battery capacity.
func NewHeuristicGuided(net Network, start model.Location, capacity float64, opts ...Option) (*HeuristicGuided, error) {
	q, err := newQuery(net, start, capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &HeuristicGuided{q: q}, nil
}

// Search implements Strategy. A coordinate missing for a generated neighbor
// surfaces as an error wrapping the network's lookup failure; data-integrity
// problems are never masked.
func (s *HeuristicGuided) Search() (model.SearchResult, error) {
	return s.q.run(s.q.net.NearestStationDistance)
}
