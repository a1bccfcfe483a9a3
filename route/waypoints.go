package route

import (
	"sort"
	"strings"

	"github.com/katalvlaran/georoute/citymap"
	"github.com/katalvlaran/georoute/search"
)

// memorySep separates tags inside the canonical memory encoding. The unit
// separator cannot appear in sane tag strings, so the encoding is injective.
const memorySep = "\x1f"

// WaypointsShortestPathProblem is the subset-cover routing problem: find the
// minimum-cost path from a fixed start to any location carrying the end tag
// such that, along the way, every waypoint tag is carried by at least one
// visited location (in any order).
//
// State memory is the canonical (sorted) encoding of the waypoint tags not
// yet satisfied, where a state's own location always counts as visited: the
// start state already credits the start location's tags, and each transition
// credits the successor's. Routes that reach the same location with the same
// remaining obligations therefore collapse to one search node, which is what
// keeps the state space finite and the search tractable.
type WaypointsShortestPathProblem struct {
	start        string
	endTag       string
	waypointTags []string // canonical: sorted, deduplicated
	m            *citymap.CityMap
	penalty      float64
}

// NewWaypointsShortestPathProblem builds a waypoint-constrained shortest-path
// problem. waypointTags is canonicalized (sorted, deduplicated) on
// construction; the caller's slice is not retained.
func NewWaypointsShortestPathProblem(
	start string,
	waypointTags []string,
	endTag string,
	m *citymap.CityMap,
	opts ...Option,
) *WaypointsShortestPathProblem {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	canonical := make([]string, 0, len(waypointTags))
	seen := make(map[string]struct{}, len(waypointTags))
	for _, tag := range waypointTags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		canonical = append(canonical, tag)
	}
	sort.Strings(canonical)

	return &WaypointsShortestPathProblem{
		start:        start,
		endTag:       endTag,
		waypointTags: canonical,
		m:            m,
		penalty:      cfg.WaypointPenalty,
	}
}

// WaypointTags returns the canonicalized waypoint tags.
func (p *WaypointsShortestPathProblem) WaypointTags() []string {
	out := make([]string, len(p.waypointTags))
	copy(out, p.waypointTags)

	return out
}

// Start returns the initial state with memory holding the waypoint tags not
// already satisfied by the start location itself.
func (p *WaypointsShortestPathProblem) Start() search.State {
	return search.State{
		Location: p.start,
		Memory:   encodeMemory(p.remaining(p.waypointTags, p.start)),
	}
}

// IsEnd reports whether the state sits on an end-tagged location with no
// waypoint obligations left. A state with empty memory already at an
// end-tagged location is terminal immediately — no extra move is required.
func (p *WaypointsShortestPathProblem) IsEnd(s search.State) bool {
	return s.Memory == "" && p.m.HasTag(s.Location, p.endTag)
}

// Successors emits one transition per graph neighbor. The successor's memory
// is the current memory minus every tag the neighbor location carries (a
// single location may satisfy several waypoints at once), and the transition
// cost is the connection distance plus the per-unsatisfied-waypoint surcharge
// applied to the successor's remaining-tag count.
func (p *WaypointsShortestPathProblem) Successors(s search.State) ([]search.Successor, error) {
	neighbors, err := p.m.Neighbors(s.Location)
	if err != nil {
		return nil, err
	}

	pending := decodeMemory(s.Memory)
	out := make([]search.Successor, 0, len(neighbors))
	for _, n := range neighbors {
		left := p.remaining(pending, n.Label)
		out = append(out, search.Successor{
			Action: n.Label,
			State:  search.State{Location: n.Label, Memory: encodeMemory(left)},
			Cost:   n.Cost + p.penalty*float64(len(left)),
		})
	}

	return out, nil
}

// remaining filters out of pending every tag carried by label. pending is
// already sorted, and filtering preserves order, so the result stays
// canonical.
func (p *WaypointsShortestPathProblem) remaining(pending []string, label string) []string {
	var left []string
	for _, tag := range pending {
		if !p.m.HasTag(label, tag) {
			left = append(left, tag)
		}
	}

	return left
}

// encodeMemory joins sorted tags into the canonical comparable form.
func encodeMemory(tags []string) string {
	return strings.Join(tags, memorySep)
}

// decodeMemory splits the canonical form back into its tags.
func decodeMemory(mem string) []string {
	if mem == "" {
		return nil
	}

	return strings.Split(mem, memorySep)
}
