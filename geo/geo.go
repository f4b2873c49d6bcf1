// Package geo provides great-circle distance between coordinate pairs.
//
// There is exactly one Haversine implementation, parameterized by output
// unit. Earlier revisions carried a kilometers variant and an independent
// meters variant with separately declared Earth radii; both now derive from
// the single constant below so the map panel and the proximity filter can
// never disagree.
package geo

import (
	"math"

	"github.com/nutrichat/nutrichat-go/core"
)

// earthRadiusKm is the mean Earth radius used by every unit variant.
const earthRadiusKm = 6371.0

// Unit selects the output unit for Distance.
type Unit int

const (
	Kilometers Unit = iota
	Meters
	Miles
)

const milesPerKm = 0.621371

// Distance returns the great-circle distance between a and b in the given
// unit. Coordinates outside the valid lat/lng ranges are not validated; the
// formula is applied as-is.
func Distance(a, b core.Coordinates, unit Unit) float64 {
	km := haversineKm(a.Lat, a.Lng, b.Lat, b.Lng)
	switch unit {
	case Meters:
		return km * 1000
	case Miles:
		return km * milesPerKm
	default:
		return km
	}
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
