// Package citymap defines the geodesic city-graph model used by the georoute
// search stack: labeled locations with coordinates and tags, symmetric
// haversine-weighted connections, landmark snapping, and path helpers.
//
// This file declares sentinel errors, shared constants, and the small value
// types exchanged at the package boundary.
package citymap

import "errors"

// Sentinel errors for city-map operations.
var (
	// ErrDuplicateLocation indicates AddLocation was called with a label that already exists.
	ErrDuplicateLocation = errors.New("citymap: location label already exists")

	// ErrUnknownLocation indicates an operation referenced a label not present in the map.
	ErrUnknownLocation = errors.New("citymap: location not found")

	// ErrNegativeCost indicates a connection was given a negative cost.
	ErrNegativeCost = errors.New("citymap: connection cost must be non-negative")

	// ErrEmptyPath indicates a path with no locations was passed to a path helper.
	ErrEmptyPath = errors.New("citymap: path is empty")

	// ErrPathStart indicates a path does not begin at the required start location.
	ErrPathStart = errors.New("citymap: path does not begin at start location")

	// ErrPathEnd indicates a path does not terminate at a location carrying the end tag.
	ErrPathEnd = errors.New("citymap: final location does not carry end tag")

	// ErrNotConnected indicates two consecutive path locations share no connection.
	ErrNotConnected = errors.New("citymap: consecutive locations are not connected")

	// ErrMissingWaypoint indicates a path does not visit any location carrying a required tag.
	ErrMissingWaypoint = errors.New("citymap: path does not cover waypoint tag")
)

// EarthRadiusMeters is the mean radius of the Earth, used by the haversine
// distance computation. Roughly equivalent to 3956 miles.
const EarthRadiusMeters = 6371000.0

// unitDelta is the change in latitude/longitude (degrees) that corresponds to
// a ground distance of about one meter; used by the grid builders.
const unitDelta = 0.00001

// DefaultSnapTolerance is the default landmark snapping radius in meters.
const DefaultSnapTolerance = 250.0

// Neighbor is one outgoing connection of a location: the adjacent label and
// the symmetric traversal cost in meters.
type Neighbor struct {
	Label string
	Cost  float64
}

// GridCell addresses a cell of a grid map built by NewGridMapWithTags.
type GridCell struct {
	X, Y int
}
