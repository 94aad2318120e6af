package geo

import (
	"math"

	orbgeo "github.com/paulmach/orb/geo"
)

// EarthMeanRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthMeanRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between a and b using the haversine formula.
// Inputs must be validated with Valid beforehand; out-of-range coordinates give meaningless results.
func Distance(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthMeanRadiusMeters * c
}

// Bearing returns the initial compass bearing in degrees [0, 360) from one point toward another.
func Bearing(from, to Point) float64 {
	if from == to {
		return 0
	}

	return NormalizeHeading(orbgeo.Bearing(from.Orb(), to.Orb()))
}

// NormalizeHeading folds any angle in degrees into [0, 360).
func NormalizeHeading(degrees float64) float64 {
	h := math.Mod(degrees, 360)
	if h < 0 {
		h += 360
	}

	return h
}
