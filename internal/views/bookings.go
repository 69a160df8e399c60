package views

import (
	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
)

type BookingsState struct {
	SelectedBookingID string
}

type BookingRow struct {
	models.Booking
	Property     *models.Property `json:"property,omitempty"`
	Room         *models.Room     `json:"room,omitempty"`
	Customer     *models.User     `json:"customer,omitempty"`
	Counterparty string           `json:"counterparty"`
	Dates        string           `json:"dates"`
	Tone         derive.Tone      `json:"tone"`
	CanApprove   bool             `json:"can_approve"`
}

type BookingsView struct {
	Title             string       `json:"title"`
	CounterpartyLabel string       `json:"counterparty_label"`
	CanCreate         bool         `json:"can_create"`
	Rows              []BookingRow `json:"rows"`
	Selected          *BookingRow  `json:"selected,omitempty"`
}

func newBookingRow(role models.Role, data models.Snapshot, b models.Booking) BookingRow {
	refs := derive.ResolveBooking(data, b)
	row := BookingRow{
		Booking:    b,
		Property:   refs.Property,
		Room:       refs.Room,
		Customer:   refs.Customer,
		Dates:      dateLabel(b.CheckIn) + " to " + dateLabel(b.CheckOut),
		Tone:       derive.ToneForBookingStatus(b.Status),
		CanApprove: role == models.RoleOwner && b.Status == models.BookingPending,
	}
	switch {
	case role == models.RoleOwner && refs.Customer != nil:
		row.Counterparty = refs.Customer.Name
	case role != models.RoleOwner && refs.Property != nil:
		row.Counterparty = refs.Property.Name
	}
	return row
}

// BuildBookings joins each booking to its property, room and customer.
// Owners see the customer column and may approve pending bookings.
func BuildBookings(role models.Role, data models.Snapshot, state BookingsState) BookingsView {
	view := BookingsView{
		Title:             "My Bookings",
		CounterpartyLabel: "Property",
		CanCreate:         role == models.RoleCustomer,
		Rows:              make([]BookingRow, 0, len(data.Bookings)),
	}
	if role == models.RoleOwner {
		view.Title = "Booking Management"
		view.CounterpartyLabel = "Customer"
	}

	for _, b := range data.Bookings {
		view.Rows = append(view.Rows, newBookingRow(role, data, b))
	}

	if state.SelectedBookingID != "" {
		if b, ok := derive.FindBooking(data.Bookings, state.SelectedBookingID); ok {
			row := newBookingRow(role, data, b)
			view.Selected = &row
		}
	}
	return view
}
