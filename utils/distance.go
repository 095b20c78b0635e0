package utils

import (
	"github.com/golang/geo/s2"
)

const (
	// EarthRadiusMeters is the mean Earth radius used for distance conversions.
	EarthRadiusMeters = 6371000.0

	// MilesPerKilometer converts kilometers to statute miles.
	MilesPerKilometer = 0.621371
)

// HaversineKM returns the great-circle distance in kilometers between two
// points given in degrees.
func HaversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters / 1000.0
}

// HaversineMiles returns the great-circle distance in statute miles. Route
// speeds in the GB timetable world are quoted in mph, so travel-time
// arithmetic in the generator runs in miles.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	return HaversineKM(lat1, lng1, lat2, lng2) * MilesPerKilometer
}
