package model

// Location identifies a point in the road network. The identifier is opaque;
// coordinates, adjacency and station membership all live in the network model.
type Location string

// Edge is an outgoing connection from a location to one of its neighbors.
// Bidirectional roads are authored as two explicit edges, one per direction;
// the reverse direction is never inferred.
type Edge struct {
	To       Location
	Distance float64 // non-negative, km
}

// Path is an ordered sequence of locations. Each consecutive pair is joined by
// a real edge in the network, and a non-empty path has length >= 1.
type Path []Location

// Start returns the first location of the path, or "" for an empty path.
func (p Path) Start() Location {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// End returns the last location of the path, or "" for an empty path.
func (p Path) End() Location {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	cp := make(Path, len(p))
	copy(cp, p)
	return cp
}

// Extend returns a new path with loc appended. The receiver is not modified,
// so partial paths sharing a prefix never alias each other.
func (p Path) Extend(loc Location) Path {
	cp := make(Path, len(p), len(p)+1)
	copy(cp, p)
	return append(cp, loc)
}
