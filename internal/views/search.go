package views

import (
	"github.com/paulmach/orb"

	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/geometry"
	"pgmanager/server/internal/models"
)

const (
	SearchPriceFloor   int64 = 5000
	SearchPriceCeiling int64 = 50000
)

// SearchState is the search form. Query is kept for display only and
// does not narrow the results.
type SearchState struct {
	Query    string
	MinPrice int64
	MaxPrice int64
	Gender   string
	RoomType string
	// Origin, when set, orders results nearest first
	Origin *orb.Point
}

func DefaultSearchState() SearchState {
	return SearchState{
		MinPrice: 10000,
		MaxPrice: 30000,
		Gender:   derive.All,
		RoomType: derive.All,
	}
}

type SearchResult struct {
	PropertyCard
	Highlights []string `json:"highlights"`
	FromPrice  string   `json:"from_price"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type SearchOptions struct {
	Genders    []models.Gender   `json:"genders"`
	RoomTypes  []models.RoomType `json:"room_types"`
	PriceFloor int64             `json:"price_floor"`
	PriceCeil  int64             `json:"price_ceiling"`
}

type SearchView struct {
	Title    string         `json:"title"`
	Query    string         `json:"query"`
	MinPrice int64          `json:"min_price"`
	MaxPrice int64          `json:"max_price"`
	Gender   string         `json:"gender"`
	RoomType string         `json:"room_type"`
	Results  []SearchResult `json:"results"`
	Options  SearchOptions  `json:"options"`
}

// roomMatches reports whether a single room satisfies both the gender
// and room type selections
func (s SearchState) roomMatches(r models.Room) bool {
	if s.Gender != "" && s.Gender != derive.All && string(r.Gender) != s.Gender {
		return false
	}
	if s.RoomType != "" && s.RoomType != derive.All && string(r.Type) != s.RoomType {
		return false
	}
	return true
}

func (s SearchState) needsRoom() bool {
	return (s.Gender != "" && s.Gender != derive.All) || (s.RoomType != "" && s.RoomType != derive.All)
}

// Allows reports whether the property passes the price, gender and room
// type filters
func (s SearchState) Allows(p models.Property, rooms []models.Room) bool {
	if !p.PriceRange.Overlaps(s.MinPrice, s.MaxPrice) {
		return false
	}
	if !s.needsRoom() {
		return true
	}
	for _, r := range derive.RoomsForProperty(rooms, p.ID) {
		if s.roomMatches(r) {
			return true
		}
	}
	return false
}

func BuildSearch(data models.Snapshot, state SearchState) SearchView {
	view := SearchView{
		Title:    "Find Your Perfect PG",
		Query:    state.Query,
		MinPrice: state.MinPrice,
		MaxPrice: state.MaxPrice,
		Gender:   state.Gender,
		RoomType: state.RoomType,
		Results:  []SearchResult{},
		Options: SearchOptions{
			Genders:    models.Genders,
			RoomTypes:  models.RoomTypes,
			PriceFloor: SearchPriceFloor,
			PriceCeil:  SearchPriceCeiling,
		},
	}

	matches := derive.Filter(data.Properties, func(p models.Property) bool {
		return state.Allows(p, data.Rooms)
	})

	if state.Origin == nil {
		for _, p := range matches {
			view.Results = append(view.Results, newSearchResult(p, nil))
		}
		return view
	}

	for _, pd := range geometry.SortByDistance(matches, *state.Origin) {
		km := pd.DistanceKm
		view.Results = append(view.Results, newSearchResult(pd.Property, &km))
	}
	return view
}

func newSearchResult(p models.Property, distanceKm *float64) SearchResult {
	highlights := p.Amenities
	if len(highlights) > 4 {
		highlights = highlights[:4]
	}
	return SearchResult{
		PropertyCard: newPropertyCard(p),
		Highlights:   highlights,
		FromPrice:    Rupees(p.PriceRange.Min),
		DistanceKm:   distanceKm,
	}
}
