// Package catalog exposes read-only lookups over the static NYC food
// resource dataset and the neighborhood geocoding table. The dataset is
// loaded once and never mutated; all filters return fresh slices.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/ristretto"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/geo"
)

// DefaultProximityRadiusKm is the radius used when callers pass no explicit
// maximum. The historical call sites disagreed (5 mi, 5 km, 8047 m); 5 km is
// the canonical value because the session resource refresh uses it.
const DefaultProximityRadiusKm = 5

// Catalog answers lookup and filter queries over the resource dataset.
// Proximity queries are memoized in a ristretto cache; since the dataset is
// immutable, cached entries never need invalidation.
type Catalog struct {
	resources []core.FoodResource
	proximity *ristretto.Cache
}

// New creates a Catalog over the embedded NYC dataset.
func New() (*Catalog, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 22,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create proximity cache: %w", err)
	}

	return &Catalog{
		resources: nycFoodResources,
		proximity: cache,
	}, nil
}

// All returns every resource in declaration order.
func (c *Catalog) All() []core.FoodResource {
	out := make([]core.FoodResource, len(c.resources))
	copy(out, c.resources)
	return out
}

// ByType returns all resources of the given type, in declaration order.
func (c *Catalog) ByType(t core.ResourceType) []core.FoodResource {
	var out []core.FoodResource
	for _, r := range c.resources {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// SnapAccepting returns all resources that accept SNAP/EBT.
func (c *Catalog) SnapAccepting() []core.FoodResource {
	var out []core.FoodResource
	for _, r := range c.resources {
		if r.AcceptsSnap {
			out = append(out, r)
		}
	}
	return out
}

// ByCulturalSpecialty returns resources with a specialty tag containing the
// given substring, case-insensitively.
func (c *Catalog) ByCulturalSpecialty(specialty string) []core.FoodResource {
	needle := strings.ToLower(specialty)
	var out []core.FoodResource
	for _, r := range c.resources {
		for _, tag := range r.CulturalSpecialties {
			if strings.Contains(strings.ToLower(tag), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ByProximity returns resources within maxKm kilometers of the given point,
// annotated with their distance and sorted nearest first. Ties keep catalog
// declaration order. Results are memoized with coordinates rounded to five
// decimal places (~1 m), so query points within that tolerance share one
// cached result and its annotated distances.
func (c *Catalog) ByProximity(lat, lng, maxKm float64) []core.FoodResource {
	key := fmt.Sprintf("%.5f,%.5f,%.2f", lat, lng, maxKm)
	if v, ok := c.proximity.Get(key); ok {
		cached := v.([]core.FoodResource)
		out := make([]core.FoodResource, len(cached))
		copy(out, cached)
		return out
	}

	from := core.Coordinates{Lat: lat, Lng: lng}
	var out []core.FoodResource
	for _, r := range c.resources {
		d := geo.Distance(from, r.Location.Coordinates, geo.Kilometers)
		if d <= maxKm {
			r.DistanceKm = d
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	c.proximity.Set(key, out, int64(len(out)+1))

	result := make([]core.FoodResource, len(out))
	copy(result, out)
	return result
}

// CoordinatesForLocationName resolves a neighborhood or area name to demo
// coordinates. The match is case-insensitive but exact; unknown names return
// ok=false.
func (c *Catalog) CoordinatesForLocationName(name string) (core.Coordinates, bool) {
	coords, ok := nycNeighborhoodCoordinates[strings.ToLower(strings.TrimSpace(name))]
	return coords, ok
}
