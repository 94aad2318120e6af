// Package geo holds the coordinate value type and the pure geometry used by the verification flow.
package geo

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// worldBound is the valid WGS84 range, lng on X and lat on Y.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// Point is an immutable WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewPoint builds a Point from latitude and longitude.
func NewPoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

// Valid reports whether the point is a finite coordinate inside the WGS84 range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}

	return worldBound.Contains(p.Orb())
}

// Orb converts the point to an orb.Point (lng, lat order).
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// String renders the point as "lat,lng", the form Google Maps APIs accept for location parameters.
func (p Point) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}
