package models

import "time"

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func (n NearbyPlaces) Clone() NearbyPlaces {
	return NearbyPlaces{
		Colleges:      cloneStrings(n.Colleges),
		Companies:     cloneStrings(n.Companies),
		Transport:     cloneStrings(n.Transport),
		Entertainment: cloneStrings(n.Entertainment),
	}
}

// Clone returns a copy sharing no slices with p
func (p Property) Clone() Property {
	p.Amenities = cloneStrings(p.Amenities)
	p.Rules = cloneStrings(p.Rules)
	p.Images = cloneStrings(p.Images)
	p.NearbyPlaces = p.NearbyPlaces.Clone()
	return p
}

func (r Room) Clone() Room {
	r.Amenities = cloneStrings(r.Amenities)
	r.Images = cloneStrings(r.Images)
	return r
}

func (p Payment) Clone() Payment {
	p.PaidDate = cloneTime(p.PaidDate)
	return p
}

func (c Complaint) Clone() Complaint {
	c.Attachments = cloneStrings(c.Attachments)
	c.ResolvedAt = cloneTime(c.ResolvedAt)
	return c
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, clone(item))
	}
	return out
}

func CloneProperties(items []Property) []Property {
	return cloneAll(items, Property.Clone)
}

func CloneRooms(items []Room) []Room {
	return cloneAll(items, Room.Clone)
}

func ClonePayments(items []Payment) []Payment {
	return cloneAll(items, Payment.Clone)
}

func CloneComplaints(items []Complaint) []Complaint {
	return cloneAll(items, Complaint.Clone)
}

// Clone returns a deep copy. Users, bookings and expenses hold no
// shared references, so copying their slices is enough.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Users:      append([]User(nil), s.Users...),
		Properties: CloneProperties(s.Properties),
		Rooms:      CloneRooms(s.Rooms),
		Bookings:   append([]Booking(nil), s.Bookings...),
		Payments:   ClonePayments(s.Payments),
		Complaints: CloneComplaints(s.Complaints),
		Expenses:   append([]Expense(nil), s.Expenses...),
	}
}
