package citymap

import "strconv"

// GridLabel formats the canonical label for grid cell (x, y): "x,y".
func GridLabel(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// NewGridMap builds a width×height grid city: cell (x, y) sits at latitude
// x·unitDelta and longitude y·unitDelta (about a meter apart), carries tags
// "x=<x>" and "y=<y>", and connects to its orthogonal neighbors with unit
// cost. Grid maps are the workhorse fixtures for search correctness checks.
//
// Complexity: O(width·height).
func NewGridMap(width, height int) *CityMap {
	return NewGridMapWithTags(width, height, nil)
}

// NewGridMapWithTags builds the same grid as NewGridMap and additionally
// appends extra[cell] to the tags of each listed cell. Cells absent from
// extra get only the coordinate tags.
func NewGridMapWithTags(width, height int, extra map[GridCell][]string) *CityMap {
	m := New()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			tags := []string{
				MakeTag("x", strconv.Itoa(x)),
				MakeTag("y", strconv.Itoa(y)),
			}
			tags = append(tags, extra[GridCell{X: x, Y: y}]...)

			geo := GeoLocation{
				Latitude:  float64(x) * unitDelta,
				Longitude: float64(y) * unitDelta,
			}
			// Labels are generated in-loop and cannot collide.
			_ = m.AddLocation(GridLabel(x, y), geo, tags)

			if x > 0 {
				_ = m.AddConnectionCost(GridLabel(x-1, y), GridLabel(x, y), 1)
			}
			if y > 0 {
				_ = m.AddConnectionCost(GridLabel(x, y-1), GridLabel(x, y), 1)
			}
		}
	}

	return m
}
