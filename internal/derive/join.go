// Package derive joins and aggregates records for display. Every function
// here is total: missing references come back as zero values and false.
package derive

import "pgmanager/server/internal/models"

// find returns the first item whose id matches, scanning in order
func find[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func FindUser(users []models.User, id string) (models.User, bool) {
	return find(users, id, func(u models.User) string { return u.ID })
}

func FindProperty(properties []models.Property, id string) (models.Property, bool) {
	return find(properties, id, func(p models.Property) string { return p.ID })
}

func FindRoom(rooms []models.Room, id string) (models.Room, bool) {
	return find(rooms, id, func(r models.Room) string { return r.ID })
}

func FindBooking(bookings []models.Booking, id string) (models.Booking, bool) {
	return find(bookings, id, func(b models.Booking) string { return b.ID })
}

func FindPayment(payments []models.Payment, id string) (models.Payment, bool) {
	return find(payments, id, func(p models.Payment) string { return p.ID })
}

func FindComplaint(complaints []models.Complaint, id string) (models.Complaint, bool) {
	return find(complaints, id, func(c models.Complaint) string { return c.ID })
}

// RoomsForProperty keeps rooms whose property id matches, in order
func RoomsForProperty(rooms []models.Room, propertyID string) []models.Room {
	return Filter(rooms, func(r models.Room) bool { return r.PropertyID == propertyID })
}

// BookingRefs is a booking with its references resolved. Nil pointers
// mark references that could not be found.
type BookingRefs struct {
	Property *models.Property
	Room     *models.Room
	Customer *models.User
}

func ResolveBooking(data models.Snapshot, b models.Booking) BookingRefs {
	var refs BookingRefs
	if p, ok := FindProperty(data.Properties, b.PropertyID); ok {
		refs.Property = &p
	}
	if r, ok := FindRoom(data.Rooms, b.RoomID); ok {
		refs.Room = &r
	}
	if u, ok := FindUser(data.Users, b.CustomerID); ok {
		refs.Customer = &u
	}
	return refs
}

type PaymentRefs struct {
	Booking  *models.Booking
	Property *models.Property
	Room     *models.Room
}

// ResolvePayment follows payment -> booking -> property/room. Without a
// booking neither property nor room can be found.
func ResolvePayment(data models.Snapshot, p models.Payment) PaymentRefs {
	var refs PaymentRefs
	b, ok := FindBooking(data.Bookings, p.BookingID)
	if !ok {
		return refs
	}
	refs.Booking = &b
	if prop, ok := FindProperty(data.Properties, b.PropertyID); ok {
		refs.Property = &prop
	}
	if r, ok := FindRoom(data.Rooms, b.RoomID); ok {
		refs.Room = &r
	}
	return refs
}

type ComplaintRefs struct {
	Property *models.Property
	Room     *models.Room
}

func ResolveComplaint(data models.Snapshot, c models.Complaint) ComplaintRefs {
	var refs ComplaintRefs
	if p, ok := FindProperty(data.Properties, c.PropertyID); ok {
		refs.Property = &p
	}
	if c.RoomID != "" {
		if r, ok := FindRoom(data.Rooms, c.RoomID); ok {
			refs.Room = &r
		}
	}
	return refs
}

func ResolveExpense(data models.Snapshot, e models.Expense) *models.Property {
	if p, ok := FindProperty(data.Properties, e.PropertyID); ok {
		return &p
	}
	return nil
}
