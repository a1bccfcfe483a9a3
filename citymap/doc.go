// Package citymap models a city as a geodesic graph: labeled locations with
// latitude/longitude coordinates, key=value tag lists, and symmetric
// connections weighted by haversine distance (or an explicit cost).
//
// Overview:
//
//   - GeoLocation is an immutable (latitude, longitude) value; Distance
//     computes the great-circle distance in meters between two of them.
//   - CityMap owns an arena of locations plus their adjacency. Every location
//     implicitly carries the tag "label=<label>"; connections are always
//     written in both directions with equal cost, so the model is undirected
//     by construction.
//   - Landmark snapping attaches externally sourced named points to the
//     nearest existing location within a tolerance radius, mutating only that
//     location's tag list. Out-of-tolerance landmarks are dropped silently.
//   - Grid builders construct small synthetic cities (unit-cost lattices with
//     coordinate tags) used heavily by tests and demos.
//   - Path helpers validate a solved route against a query and sum its true
//     edge cost.
//
// Invariants:
//
//   - Labels are unique: AddLocation fails with ErrDuplicateLocation instead
//     of overwriting.
//   - Connection(a, b) == Connection(b, a) after any sequence of connection
//     calls, including overwrites.
//   - Every connection endpoint exists in the location arena.
//   - Tag lists preserve insertion order and grow only through landmark
//     augmentation.
//
// Errors (sentinel):
//
//   - ErrDuplicateLocation — AddLocation on an existing label.
//   - ErrUnknownLocation   — a referenced label does not exist.
//   - ErrNegativeCost      — a negative explicit connection cost.
//   - ErrEmptyPath, ErrPathStart, ErrPathEnd, ErrNotConnected,
//     ErrMissingWaypoint  — path-validation failures.
//
// Lookup helpers are deterministic: Labels and Neighbors enumerate in
// lexicographic order, and LocationFromTag always returns the
// lexicographically smallest matching label.
//
// CityMap is safe for concurrent reads once fully built; construction and
// landmark augmentation require external synchronization.
package citymap
