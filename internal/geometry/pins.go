package geometry

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"

	"pgmanager/server/internal/models"
)

// viewportMargin keeps pins away from the map edges, in percent
const viewportMargin = 10.0

// Pin is a property marker placed on a 0-100 percent viewport
type Pin struct {
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

func propertyPoint(p models.Property) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// scale maps v within [min, max] onto the viewport. A degenerate
// range puts everything in the middle.
func scale(v, min, max float64) float64 {
	if max-min <= 0 {
		return 50
	}
	return viewportMargin + (100-2*viewportMargin)*(v-min)/(max-min)
}

// PinPositions projects properties into the viewport, north up. A lone
// property sits in the centre.
func PinPositions(properties []models.Property) []Pin {
	if len(properties) == 0 {
		return []Pin{}
	}

	points := make(orb.MultiPoint, 0, len(properties))
	for _, p := range properties {
		points = append(points, propertyPoint(p))
	}
	bound := points.Bound()

	pins := make([]Pin, 0, len(properties))
	for i, p := range properties {
		pins = append(pins, Pin{
			PropertyID: p.ID,
			Name:       p.Name,
			X:          scale(points[i].Lon(), bound.Min.Lon(), bound.Max.Lon()),
			Y:          100 - scale(points[i].Lat(), bound.Min.Lat(), bound.Max.Lat()),
		})
	}
	return pins
}

// PropertyDistance pairs a property with its distance from a point
type PropertyDistance struct {
	Property   models.Property `json:"property"`
	DistanceKm float64         `json:"distance_km"`
}

// SortByDistance orders properties by great-circle distance from the
// given point, nearest first. Ties keep their input order.
func SortByDistance(properties []models.Property, from orb.Point) []PropertyDistance {
	out := make([]PropertyDistance, 0, len(properties))
	for _, p := range properties {
		meters := geo.DistanceHaversine(from, propertyPoint(p))
		out = append(out, PropertyDistance{Property: p, DistanceKm: roundTenth(meters / 1000)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// FeatureCollection renders properties as GeoJSON points
func FeatureCollection(properties []models.Property) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range properties {
		f := geojson.NewFeature(propertyPoint(p))
		f.ID = p.ID
		f.Properties["name"] = p.Name
		f.Properties["address"] = p.Address
		f.Properties["city"] = p.City
		f.Properties["rating"] = p.Rating
		f.Properties["price_min"] = p.PriceRange.Min
		f.Properties["price_max"] = p.PriceRange.Max
		f.Properties["available_rooms"] = p.AvailableRooms
		fc.Append(f)
	}
	return fc
}
