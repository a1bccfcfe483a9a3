package citymap

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Landmark is an externally specified named point: coordinates borrowed from a
// mapping service rather than from the graph itself, so they rarely line up
// exactly with an existing location.
type Landmark struct {
	// Name becomes the value of the appended "landmark=<name>" tag.
	Name string

	// Geo is the landmark's raw coordinate, to be snapped onto the map.
	Geo GeoLocation

	// Amenity, when non-empty, additionally appends an "amenity=<amenity>" tag.
	Amenity string
}

// landmarkJSON mirrors the on-disk landmark entry:
// {"landmark": "gates", "geo": "37.43,-122.17", "amenity": "..."}.
type landmarkJSON struct {
	Landmark string `json:"landmark"`
	Geo      string `json:"geo"`
	Amenity  string `json:"amenity"`
}

// ParseLandmarks decodes a JSON array of landmark entries. The "geo" field is
// a "lat,lng" string. Decoding is a pure boundary step: it never touches a
// CityMap.
func ParseLandmarks(data []byte) ([]Landmark, error) {
	var raw []landmarkJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("citymap: decode landmarks: %w", err)
	}

	out := make([]Landmark, 0, len(raw))
	for _, item := range raw {
		latStr, lngStr, ok := strings.Cut(item.Geo, ",")
		if !ok {
			return nil, fmt.Errorf("citymap: landmark %q: malformed geo %q", item.Landmark, item.Geo)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		if err != nil {
			return nil, fmt.Errorf("citymap: landmark %q: latitude: %w", item.Landmark, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
		if err != nil {
			return nil, fmt.Errorf("citymap: landmark %q: longitude: %w", item.Landmark, err)
		}
		out = append(out, Landmark{
			Name:    item.Landmark,
			Geo:     GeoLocation{Latitude: lat, Longitude: lng},
			Amenity: item.Amenity,
		})
	}

	return out, nil
}

// AddLandmarks snaps each landmark onto the single nearest existing location
// and appends its tags there. Selection minimizes (distance, label), so a
// distance tie resolves to the lexicographically smaller label. A landmark
// whose nearest location is not strictly within toleranceMeters is dropped
// silently — a data-cleaning policy, not an error. Only tag lists are
// mutated; connections and geolocations are never altered.
//
// Complexity: O(L·V) over landmarks and map locations.
func (m *CityMap) AddLandmarks(landmarks []Landmark, toleranceMeters float64) {
	for _, lm := range landmarks {
		best, ok := m.nearest(lm.Geo, toleranceMeters)
		if !ok {
			continue
		}
		n := &m.nodes[m.index[best]]
		n.tags = append(n.tags, MakeTag("landmark", lm.Name))
		if lm.Amenity != "" {
			n.tags = append(n.tags, MakeTag("amenity", lm.Amenity))
		}
	}
}

// nearest returns the label of the location closest to geo, provided that
// closest distance is strictly below tolerance. Ties on distance pick the
// smaller label.
func (m *CityMap) nearest(geo GeoLocation, tolerance float64) (string, bool) {
	bestLabel, bestDist, found := "", 0.0, false
	for i := range m.nodes {
		d := Distance(geo, m.nodes[i].geo)
		if !found || d < bestDist || (d == bestDist && m.nodes[i].label < bestLabel) {
			bestLabel, bestDist, found = m.nodes[i].label, d, true
		}
	}
	if !found || bestDist >= tolerance {
		return "", false
	}

	return bestLabel, true
}
