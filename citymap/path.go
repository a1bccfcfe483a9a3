package citymap

import "fmt"

// TotalCost sums the connection costs along consecutive locations of path.
// Returns ErrEmptyPath for an empty path and ErrNotConnected when two
// consecutive locations share no connection. A single-location path costs 0.
//
// Complexity: O(len(path)·degree).
func TotalCost(m *CityMap, path []string) (float64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		cost, ok := m.Connection(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %q → %q", ErrNotConnected, path[i], path[i+1])
		}
		total += cost
	}

	return total, nil
}

// ValidatePath checks a solved route against the map and the query that
// produced it: the path must begin at start, end at a location carrying
// endTag, follow existing connections, and the union of tags over all visited
// locations must cover every waypoint tag. The first violated condition is
// reported via its sentinel error, wrapped with context.
func ValidatePath(m *CityMap, path []string, start, endTag string, waypointTags []string) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0] != start {
		return fmt.Errorf("%w: got %q, want %q", ErrPathStart, path[0], start)
	}
	if !m.HasTag(path[len(path)-1], endTag) {
		return fmt.Errorf("%w: %q lacks %q", ErrPathEnd, path[len(path)-1], endTag)
	}

	for i := 0; i+1 < len(path); i++ {
		if _, ok := m.Connection(path[i], path[i+1]); !ok {
			return fmt.Errorf("%w: %q → %q", ErrNotConnected, path[i], path[i+1])
		}
	}

	covered := make(map[string]struct{})
	for _, label := range path {
		tags, err := m.Tags(label)
		if err != nil {
			return err
		}
		for _, t := range tags {
			covered[t] = struct{}{}
		}
	}
	for _, tag := range waypointTags {
		if _, ok := covered[tag]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingWaypoint, tag)
		}
	}

	return nil
}
