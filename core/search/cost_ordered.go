package search

import "github.com/kilianp07/evrouter/core/model"

// CostOrdered is the uniform-cost strategy: the frontier is ordered purely by
// accumulated distance, with ties broken by location, battery and path as
// documented on the frontier type.
type CostOrdered struct {
	q *query
}

// NewCostOrdered builds a single-use cost-ordered query for the given network,
// start location and initial battery capacity.
func NewCostOrdered(net Network, start model.Location, capacity float64, opts ...Option) (*CostOrdered, error) {
	q, err := newQuery(net, start, capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &CostOrdered{q: q}, nil
}

// Search implements Strategy. It never fails: without a heuristic there is no
// coordinate lookup to go wrong, so the error is always nil.
func (s *CostOrdered) Search() (model.SearchResult, error) {
	return s.q.run(nil)
}
