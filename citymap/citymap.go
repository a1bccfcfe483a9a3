package citymap

import (
	"fmt"
	"sort"
)

// node is one arena entry: a labeled geolocation with its tag list and
// half-edge adjacency. Storing index-based half edges instead of nested
// label→label→cost maps keeps neighbor lookup O(degree) with no aliasing
// between the two directions of a connection.
type node struct {
	label string
	geo   GeoLocation
	tags  []string
	edges []halfEdge
}

// halfEdge is one direction of a symmetric connection.
type halfEdge struct {
	to   int
	cost float64
}

// CityMap is the core graph model: an arena of labeled locations plus a
// label→index lookup. Locations are immutable after creation; tag lists grow
// only through landmark augmentation; connections are always written in both
// directions with equal cost.
//
// CityMap is not safe for concurrent mutation; a fully built map may be shared
// read-only across any number of searches.
type CityMap struct {
	nodes []node
	index map[string]int

	// connections counts undirected connections (each stored as two half edges).
	connections int
}

// New returns an empty CityMap.
// Complexity: O(1).
func New() *CityMap {
	return &CityMap{index: make(map[string]int)}
}

// MakeTag builds the canonical "key=value" tag string.
func MakeTag(key, value string) string {
	return key + "=" + value
}

// AddLocation registers a new labeled location with the provided tags.
// Every location implicitly carries the tag "label=<label>" ahead of the
// caller's tags; the tag slice is copied so later caller mutation cannot leak
// into the map. Returns ErrDuplicateLocation if the label is already present —
// locations are never silently overwritten.
//
// Complexity: O(len(tags)).
func (m *CityMap) AddLocation(label string, geo GeoLocation, tags []string) error {
	if _, ok := m.index[label]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, label)
	}

	owned := make([]string, 0, len(tags)+1)
	owned = append(owned, MakeTag("label", label))
	owned = append(owned, tags...)

	m.index[label] = len(m.nodes)
	m.nodes = append(m.nodes, node{label: label, geo: geo, tags: owned})

	return nil
}

// AddConnection connects source and target in both directions, with the cost
// computed as the haversine distance between their geolocations.
// Returns ErrUnknownLocation if either endpoint does not exist.
//
// Complexity: O(degree) for the duplicate-edge check.
func (m *CityMap) AddConnection(source, target string) error {
	si, ok := m.index[source]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, source)
	}
	ti, ok := m.index[target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, target)
	}

	m.connect(si, ti, Distance(m.nodes[si].geo, m.nodes[ti].geo))

	return nil
}

// AddConnectionCost connects source and target in both directions with an
// explicit non-negative cost, overwriting any existing connection between the
// pair (in both directions, preserving symmetry).
// Returns ErrUnknownLocation if either endpoint does not exist and
// ErrNegativeCost for a negative cost.
func (m *CityMap) AddConnectionCost(source, target string, cost float64) error {
	if cost < 0 {
		return fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeCost, source, target, cost)
	}
	si, ok := m.index[source]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, source)
	}
	ti, ok := m.index[target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, target)
	}

	m.connect(si, ti, cost)

	return nil
}

// connect writes both half edges for a (si, ti, cost) connection, updating in
// place when the pair is already connected so the symmetry invariant holds
// under overwrites.
func (m *CityMap) connect(si, ti int, cost float64) {
	if !m.setHalfEdge(si, ti, cost) {
		m.nodes[si].edges = append(m.nodes[si].edges, halfEdge{to: ti, cost: cost})
		m.nodes[ti].edges = append(m.nodes[ti].edges, halfEdge{to: si, cost: cost})
		m.connections++

		return
	}
	m.setHalfEdge(ti, si, cost)
}

// setHalfEdge updates an existing half edge from→to and reports whether one
// was present.
func (m *CityMap) setHalfEdge(from, to int, cost float64) bool {
	edges := m.nodes[from].edges
	for i := range edges {
		if edges[i].to == to {
			edges[i].cost = cost

			return true
		}
	}

	return false
}

// Location returns the geolocation stored for label.
func (m *CityMap) Location(label string) (GeoLocation, error) {
	i, ok := m.index[label]
	if !ok {
		return GeoLocation{}, fmt.Errorf("%w: %q", ErrUnknownLocation, label)
	}

	return m.nodes[i].geo, nil
}

// Tags returns a copy of the tag list for label, in insertion order
// (the implicit label tag first). The copy keeps the stored list immutable
// from the caller's side.
func (m *CityMap) Tags(label string) ([]string, error) {
	i, ok := m.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, label)
	}

	out := make([]string, len(m.nodes[i].tags))
	copy(out, m.nodes[i].tags)

	return out, nil
}

// HasTag reports whether the location carries the exact tag.
func (m *CityMap) HasTag(label, tag string) bool {
	i, ok := m.index[label]
	if !ok {
		return false
	}
	for _, t := range m.nodes[i].tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Neighbors returns the connections of label sorted by neighbor label, so
// enumeration order is deterministic across runs.
//
// Complexity: O(d log d) where d is the location's degree.
func (m *CityMap) Neighbors(label string) ([]Neighbor, error) {
	i, ok := m.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, label)
	}

	out := make([]Neighbor, 0, len(m.nodes[i].edges))
	for _, e := range m.nodes[i].edges {
		out = append(out, Neighbor{Label: m.nodes[e.to].label, Cost: e.cost})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Label < out[b].Label })

	return out, nil
}

// Connection returns the cost of the connection between a and b and whether
// one exists. Symmetry of the underlying storage guarantees
// Connection(a, b) == Connection(b, a).
func (m *CityMap) Connection(a, b string) (float64, bool) {
	ai, ok := m.index[a]
	if !ok {
		return 0, false
	}
	bi, ok := m.index[b]
	if !ok {
		return 0, false
	}
	for _, e := range m.nodes[ai].edges {
		if e.to == bi {
			return e.cost, true
		}
	}

	return 0, false
}

// Labels returns all location labels in lexicographic order.
func (m *CityMap) Labels() []string {
	out := make([]string, 0, len(m.nodes))
	for i := range m.nodes {
		out = append(out, m.nodes[i].label)
	}
	sort.Strings(out)

	return out
}

// NumLocations returns the number of locations in the map.
func (m *CityMap) NumLocations() int { return len(m.nodes) }

// NumConnections returns the number of undirected connections in the map.
func (m *CityMap) NumConnections() int { return m.connections }

// LocationFromTag returns the lexicographically smallest label among all
// locations carrying tag, or ("", false) when no location matches. The
// alphabetical tie-break makes repeated lookups on an unmodified map
// reproducible.
//
// Complexity: O(V·T) over locations and their tag lists.
func (m *CityMap) LocationFromTag(tag string) (string, bool) {
	best, found := "", false
	for i := range m.nodes {
		if !m.HasTag(m.nodes[i].label, tag) {
			continue
		}
		if !found || m.nodes[i].label < best {
			best, found = m.nodes[i].label, true
		}
	}

	return best, found
}
