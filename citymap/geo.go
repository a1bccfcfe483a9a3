package citymap

import (
	"fmt"
	"math"
)

// GeoLocation is a latitude/longitude pair (in degrees) identifying a point on
// Earth. It is a plain comparable value: equality and map-key hashing are
// structural, and instances are never mutated after construction.
type GeoLocation struct {
	Latitude  float64
	Longitude float64
}

// String renders the location as "lat,lng", matching the wire form used by
// landmark files.
func (g GeoLocation) String() string {
	return fmt.Sprintf("%v,%v", g.Latitude, g.Longitude)
}

// Distance computes the great-circle distance between two geolocations in
// meters using the haversine formula on radians. For city-scale maps the
// curvature correction is nearly negligible, but it keeps the model exact for
// maps spanning much greater distances.
//
// Complexity: O(1).
func Distance(a, b GeoLocation) float64 {
	lat1, lon1 := radians(a.Latitude), radians(a.Longitude)
	lat2, lon2 := radians(b.Latitude), radians(b.Longitude)

	deltaLat := lat2 - lat1
	deltaLon := lon2 - lon1

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	haversine := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(haversine))
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
