// Package citymap_test provides runnable examples for the city-map model.
package citymap_test

import (
	"fmt"

	"github.com/katalvlaran/georoute/citymap"
)

// ExampleCityMap shows building a tiny city by hand: two connected plazas and
// a tag lookup with its deterministic alphabetical tie-break.
func ExampleCityMap() {
	// 1) Create an empty map and register two locations with tags.
	m := citymap.New()
	_ = m.AddLocation("east_plaza", citymap.GeoLocation{Latitude: 37.4275, Longitude: -122.1697},
		[]string{citymap.MakeTag("amenity", "park")})
	_ = m.AddLocation("west_plaza", citymap.GeoLocation{Latitude: 37.4277, Longitude: -122.1745},
		[]string{citymap.MakeTag("amenity", "park")})

	// 2) Connect them with an explicit cost; both directions are written.
	_ = m.AddConnectionCost("east_plaza", "west_plaza", 425)

	// 3) Look up a location by tag: ties resolve to the smallest label.
	label, _ := m.LocationFromTag("amenity=park")
	cost, _ := m.Connection("west_plaza", "east_plaza")
	fmt.Printf("%s, %.0f m\n", label, cost)
	// Output: east_plaza, 425 m
}

// ExampleNewGridMap builds a synthetic unit-cost lattice and sums a path.
func ExampleNewGridMap() {
	m := citymap.NewGridMap(3, 3)

	cost, _ := citymap.TotalCost(m, []string{"0,0", "1,0", "1,1", "2,1", "2,2"})
	fmt.Println(cost)
	// Output: 4
}
