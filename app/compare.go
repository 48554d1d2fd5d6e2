package app

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/core/search"
)

// costTolerance bounds the acceptable floating-point drift between the two
// strategies' optimal costs.
const costTolerance = 1e-9

// RuntimeStats summarizes the wall-clock timing of repeated identical queries.
type RuntimeStats struct {
	MeanMs   float64
	StdDevMs float64
	Samples  int
}

// CompareReport holds the outcome of running both strategies on one query.
type CompareReport struct {
	Start    model.Location
	Capacity float64
	// Results holds one representative result per strategy kind.
	Results map[string]model.SearchResult
	// Runtime holds timing statistics over the repeated runs.
	Runtime map[string]RuntimeStats
}

// Compare answers the same query with every strategy kind and summarizes the
// outcomes. Each strategy is re-run cfg.Compare.Repeats times with a fresh
// instance to collect runtime statistics; with admissible network data every
// run returns the identical optimal cost, which is asserted here.
func (s *Service) Compare(start model.Location, capacity float64) (*CompareReport, error) {
	report := &CompareReport{
		Start:    start,
		Capacity: capacity,
		Results:  make(map[string]model.SearchResult, 2),
		Runtime:  make(map[string]RuntimeStats, 2),
	}

	for _, kind := range search.Kinds() {
		samples := make([]float64, 0, s.cfg.Compare.Repeats)
		for i := 0; i < s.cfg.Compare.Repeats; i++ {
			res, err := s.RunQuery(kind, start, capacity)
			if err != nil {
				return nil, err
			}
			samples = append(samples, res.Runtime.Seconds()*1000)
			if i == 0 {
				report.Results[kind] = res
			}
		}
		report.Runtime[kind] = RuntimeStats{
			MeanMs:   stat.Mean(samples, nil),
			StdDevMs: stat.StdDev(samples, nil),
			Samples:  len(samples),
		}
	}

	ucs := report.Results[search.KindCostOrdered]
	astar := report.Results[search.KindHeuristicGuided]
	if !equalCost(ucs.Cost, astar.Cost) {
		// Both strategies are cost-optimal under the admissibility contract;
		// diverging costs mean the network data violates it.
		return report, fmt.Errorf("strategies disagree on optimal cost: ucs=%v astar=%v (inadmissible heuristic data?)", ucs.Cost, astar.Cost)
	}
	if astar.NodesExpanded > ucs.NodesExpanded {
		s.log.Warnf("heuristic expanded more nodes than uniform cost (%d > %d)", astar.NodesExpanded, ucs.NodesExpanded)
	}

	if s.cfg.Render.Enabled {
		labels := search.Kinds()
		results := make([]model.SearchResult, len(labels))
		routes := make(map[string]model.Path, len(labels))
		for i, kind := range labels {
			results[i] = report.Results[kind]
			routes[kind] = report.Results[kind].Path
		}
		if err := s.renderer.ComparisonCharts(labels, results); err != nil {
			return nil, err
		}
		if err := s.renderer.NetworkMap(s.net, routes); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func equalCost(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	return math.Abs(a-b) <= costTolerance
}
