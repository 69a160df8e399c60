package models

// Snapshot is one consistent read of every collection
type Snapshot struct {
	Users      []User      `json:"users"`
	Properties []Property  `json:"properties"`
	Rooms      []Room      `json:"rooms"`
	Bookings   []Booking   `json:"bookings"`
	Payments   []Payment   `json:"payments"`
	Complaints []Complaint `json:"complaints"`
	Expenses   []Expense   `json:"expenses"`
}
