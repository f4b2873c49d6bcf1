package geo_test

import (
	"math"
	"testing"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/geo"
)

var (
	unionSquare = core.Coordinates{Lat: 40.7359, Lng: -73.9911}
	harlem      = core.Coordinates{Lat: 40.8116, Lng: -73.9465}
	sunsetPark  = core.Coordinates{Lat: 40.6409, Lng: -74.0092}
)

func TestDistanceProperties(t *testing.T) {
	pairs := []struct {
		a, b core.Coordinates
	}{
		{unionSquare, harlem},
		{unionSquare, sunsetPark},
		{harlem, sunsetPark},
		{core.Coordinates{}, unionSquare},
	}

	for _, p := range pairs {
		d := geo.Distance(p.a, p.b, geo.Kilometers)
		if d < 0 {
			t.Errorf("Distance(%v, %v) = %v, want non-negative", p.a, p.b, d)
		}

		rev := geo.Distance(p.b, p.a, geo.Kilometers)
		if math.Abs(d-rev) > 1e-9 {
			t.Errorf("Distance not symmetric: %v vs %v", d, rev)
		}
	}

	if d := geo.Distance(harlem, harlem, geo.Kilometers); d != 0 {
		t.Errorf("Distance(A, A) = %v, want 0", d)
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// Union Square to Harlem is roughly 9.2 km as the crow flies.
	d := geo.Distance(unionSquare, harlem, geo.Kilometers)
	if d < 8.5 || d > 10 {
		t.Errorf("Union Square to Harlem = %v km, want ~9.2", d)
	}
}

func TestUnitAgreement(t *testing.T) {
	km := geo.Distance(unionSquare, sunsetPark, geo.Kilometers)
	m := geo.Distance(unionSquare, sunsetPark, geo.Meters)
	mi := geo.Distance(unionSquare, sunsetPark, geo.Miles)

	if math.Abs(m-km*1000) > 1e-6 {
		t.Errorf("meters %v disagrees with km %v", m, km)
	}
	if math.Abs(mi-km*0.621371) > 1e-6 {
		t.Errorf("miles %v disagrees with km %v", mi, km)
	}
}
