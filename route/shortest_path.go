package route

import (
	"github.com/katalvlaran/georoute/citymap"
	"github.com/katalvlaran/georoute/search"
)

// ShortestPathProblem is the plain routing problem: find the minimum-cost
// path from a fixed start location to any location carrying the end tag.
// States carry no auxiliary memory.
type ShortestPathProblem struct {
	start  string
	endTag string
	m      *citymap.CityMap
}

// NewShortestPathProblem builds a shortest-path problem from start to any
// location tagged endTag on m.
func NewShortestPathProblem(start, endTag string, m *citymap.CityMap) *ShortestPathProblem {
	return &ShortestPathProblem{start: start, endTag: endTag, m: m}
}

// Start returns the initial state: the start location with empty memory.
func (p *ShortestPathProblem) Start() search.State {
	return search.State{Location: p.start}
}

// IsEnd reports whether the state's location carries the end tag.
func (p *ShortestPathProblem) IsEnd(s search.State) bool {
	return p.m.HasTag(s.Location, p.endTag)
}

// Successors emits one transition per graph neighbor, costed by the
// connection distance. The action is the neighbor's label, so the engine's
// reconstructed path is the location sequence after the start.
func (p *ShortestPathProblem) Successors(s search.State) ([]search.Successor, error) {
	neighbors, err := p.m.Neighbors(s.Location)
	if err != nil {
		return nil, err
	}

	out := make([]search.Successor, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, search.Successor{
			Action: n.Label,
			State:  search.State{Location: n.Label},
			Cost:   n.Cost,
		})
	}

	return out, nil
}
