package views

import (
	"github.com/paulmach/orb"

	"pgmanager/server/config"
	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/geometry"
	"pgmanager/server/internal/models"
)

type MapState struct {
	SelectedPropertyID string
	NearbyCategory     string
	// Origin, when set, adds a distance-ordered property list
	Origin *orb.Point
}

type MapSelection struct {
	PropertyCard
	Nearby []geometry.NearbyPlace `json:"nearby"`
}

type MapView struct {
	Title            string                      `json:"title"`
	City             string                      `json:"city"`
	Center           []float64                   `json:"center"`
	Zoom             int                         `json:"zoom"`
	Pins             []geometry.Pin              `json:"pins"`
	NearbyCategory   string                      `json:"nearby_category"`
	NearbyCategories []geometry.NearbyCategory   `json:"nearby_categories"`
	Selected         *MapSelection               `json:"selected,omitempty"`
	ByDistance       []geometry.PropertyDistance `json:"by_distance,omitempty"`
}

// BuildMap places every property on the city viewport. A selected
// property carries its nearby places for the chosen category.
func BuildMap(city config.City, data models.Snapshot, state MapState) MapView {
	category := state.NearbyCategory
	if category == "" {
		category = geometry.NearbyAll
	}

	view := MapView{
		Title:            "Map View",
		City:             city.Name,
		Center:           city.Center,
		Zoom:             city.ZoomLevel,
		Pins:             geometry.PinPositions(data.Properties),
		NearbyCategory:   category,
		NearbyCategories: geometry.NearbyCategories,
	}

	if state.SelectedPropertyID != "" {
		if p, ok := derive.FindProperty(data.Properties, state.SelectedPropertyID); ok {
			view.Selected = &MapSelection{
				PropertyCard: newPropertyCard(p),
				Nearby:       geometry.NearbyPlaces(p, category),
			}
		}
	}

	if state.Origin != nil {
		view.ByDistance = geometry.SortByDistance(data.Properties, *state.Origin)
	}
	return view
}
