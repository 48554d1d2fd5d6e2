package search

import "github.com/kilianp07/evrouter/core/model"

// entry is one candidate partial route on the frontier.
type entry struct {
	// priority orders the frontier: accumulated cost for CostOrdered,
	// accumulated cost plus heuristic for HeuristicGuided.
	priority float64
	// cost is the accumulated distance along path.
	cost    float64
	loc     model.Location
	battery float64
	path    model.Path
}

// frontier is a min-heap of candidate entries implementing heap.Interface.
//
// Tie-break order is fixed so that results and expansion counts are
// reproducible: priority, then cost, then location (lexicographic), then
// battery, then path contents element-wise with a shorter prefix first.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.loc != b.loc {
		return a.loc < b.loc
	}
	if a.battery != b.battery {
		return a.battery < b.battery
	}
	return lessPath(a.path, b.path)
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return e
}

// lessPath compares two paths element-wise, with a strict prefix ordered
// before its extensions.
func lessPath(a, b model.Path) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
