package network

import "errors"

// Sentinel errors returned by the network model.
var (
	// ErrUnknownLocation indicates a coordinate lookup for a location that has
	// none. It surfaces malformed network data (for example an edge pointing
	// at an undefined node) and is never masked by the search strategies.
	ErrUnknownLocation = errors.New("network: location has no coordinate")

	// ErrNegativeDistance indicates an authored edge with a negative distance.
	ErrNegativeDistance = errors.New("network: edge distance must be non-negative")

	// ErrStationUnknown indicates a charging station that is not part of the
	// coordinate set. Every station must be a defined location.
	ErrStationUnknown = errors.New("network: charging station has no defined location")
)
