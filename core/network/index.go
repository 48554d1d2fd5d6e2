package network

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/kilianp07/evrouter/core/model"
)

// pointTolerance is the half-width of the degenerate rectangle a station
// coordinate is stored under. rtreego indexes rectangles, not points; keeping
// the box this small makes nearest-neighbor selection effectively exact.
const pointTolerance = 1e-9

// stationEntry wraps one charging station for R-tree storage.
type stationEntry struct {
	loc    model.Location
	point  orb.Point
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *stationEntry) Bounds() rtreego.Rect { return s.bounds }

// stationIndex answers nearest-charging-station queries over the fixed
// station set. Read-only after construction.
type stationIndex struct {
	tree *rtreego.Rtree
	size int
}

func newStationIndex(stations map[model.Location]struct{}, coords map[model.Location]orb.Point) *stationIndex {
	idx := &stationIndex{tree: rtreego.NewTree(2, 2, 8)}
	for loc := range stations {
		p, ok := coords[loc]
		if !ok {
			continue // rejected earlier by New
		}
		idx.tree.Insert(&stationEntry{
			loc:    loc,
			point:  p,
			bounds: rtreego.Point{p.X(), p.Y()}.ToRect(pointTolerance),
		})
		idx.size++
	}
	return idx
}

// nearest returns the coordinate of the station closest to p. The second
// return value is false when the index holds no stations.
func (idx *stationIndex) nearest(p orb.Point) (orb.Point, bool) {
	if idx.size == 0 {
		return orb.Point{}, false
	}
	found := idx.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	entry, ok := found.(*stationEntry)
	if !ok {
		return orb.Point{}, false
	}
	return entry.point, true
}
