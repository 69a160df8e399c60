package views

import (
	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
)

type PropertiesState struct {
	SelectedPropertyID string
}

type PropertyCard struct {
	models.Property
	PriceLabel    string `json:"price_label"`
	OccupiedRooms int    `json:"occupied_rooms"`
}

func newPropertyCard(p models.Property) PropertyCard {
	return PropertyCard{
		Property:      p,
		PriceLabel:    Rupees(p.PriceRange.Min) + " - " + Rupees(p.PriceRange.Max),
		OccupiedRooms: p.TotalRooms - p.AvailableRooms,
	}
}

type RoomRow struct {
	models.Room
	HasVacancy bool   `json:"has_vacancy"`
	RentLabel  string `json:"rent_label"`
}

func newRoomRow(r models.Room) RoomRow {
	return RoomRow{
		Room:       r,
		HasVacancy: r.HasVacancy(),
		RentLabel:  "Rent: " + Rupees(r.Rent) + "/month",
	}
}

type PropertiesView struct {
	Title      string         `json:"title"`
	Properties []PropertyCard `json:"properties"`
	Selected   *PropertyCard  `json:"selected,omitempty"`
	Rooms      []RoomRow      `json:"rooms"`
}

// BuildProperties lists every property. With a selection it also lists
// that property's rooms; an unknown selection lists none.
func BuildProperties(data models.Snapshot, state PropertiesState) PropertiesView {
	view := PropertiesView{
		Title:      "Property Management",
		Properties: make([]PropertyCard, 0, len(data.Properties)),
		Rooms:      []RoomRow{},
	}
	for _, p := range data.Properties {
		view.Properties = append(view.Properties, newPropertyCard(p))
	}

	if state.SelectedPropertyID == "" {
		return view
	}
	if p, ok := derive.FindProperty(data.Properties, state.SelectedPropertyID); ok {
		card := newPropertyCard(p)
		view.Selected = &card
	}
	for _, r := range derive.RoomsForProperty(data.Rooms, state.SelectedPropertyID) {
		view.Rooms = append(view.Rooms, newRoomRow(r))
	}
	return view
}
